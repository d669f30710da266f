// Package tui renders the dream in a terminal: one raycast frame per
// keypress, drawn with block characters and ANSI colors.
package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"

	"somnium/pkg/engine/input"
	"somnium/pkg/engine/raycast"
	"somnium/pkg/engine/terminal"
	"somnium/pkg/engine/world"
	"somnium/pkg/game/devtools"
	"somnium/pkg/game/gameplay"
	"somnium/pkg/game/renderer"
	"somnium/pkg/game/state"
)

// Wall slab characters by brightness, darkest last.
var shadeRunes = []rune{'█', '▓', '▒', '░'}

const (
	IconCeiling = ' '
	IconFloor   = '.'
	IconPlayer  = '@'
	IconEntity  = 'Ω'
	IconMark    = '*'
	IconMapWall = '▒'
	IconMapOpen = '·'
)

// Per-keypress step counts. A single physics step is tuned for the
// graphical backend's 60 ticks per second; the terminal gets a bigger
// bite per key so movement does not feel glacial.
const (
	keyMoveSteps = 6
	keyTurnSteps = 8

	minimapRadius = 5

	// Lines outside the viewport: header (2), compass (1), messages
	// pane (header + messages + footer), actions line and prompt.
	viewportTopMargin = 14
	viewportMinRows   = 8
	viewportMinCols   = 20
)

// cell is one terminal character with its style. A nil style prints
// the rune unstyled.
type cell struct {
	r     rune
	style *color.Style
}

// TUIRenderer is the terminal-based renderer implementation.
type TUIRenderer struct {
	showMinimap bool
}

// New creates a new TUI renderer.
func New() *TUIRenderer {
	return &TUIRenderer{showMinimap: true}
}

// Name identifies the backend.
func (t *TUIRenderer) Name() string {
	return "tui"
}

// Init initializes the TUI renderer.
func (t *TUIRenderer) Init() error {
	renderer.InitColors()
	return nil
}

// Run drives the session: draw a frame, block for a key, apply it.
func (t *TUIRenderer) Run(s *gameplay.Session) error {
	for s.Game.Running {
		t.Clear()
		t.RenderFrame(s)

		key, err := input.ReadKey()
		if err != nil {
			return err
		}
		if err := t.handle(s, input.MapToIntent(key)); err != nil {
			return err
		}
	}

	fmt.Println(renderer.FormatString("GT{You wake up.}"))
	fmt.Println(s.Summary())
	return nil
}

func (t *TUIRenderer) handle(s *gameplay.Session, act input.Action) error {
	g := s.Game

	switch act {
	case input.ActionMoveForward:
		repeat(keyMoveSteps, func() { gameplay.MoveForward(g) })
	case input.ActionMoveBackward:
		repeat(keyMoveSteps, func() { gameplay.MoveBackward(g) })
	case input.ActionStrafeLeft:
		repeat(keyMoveSteps, func() { gameplay.StrafeLeft(g) })
	case input.ActionStrafeRight:
		repeat(keyMoveSteps, func() { gameplay.StrafeRight(g) })
	case input.ActionTurnLeft:
		repeat(keyTurnSteps, func() { gameplay.TurnLeft(g) })
	case input.ActionTurnRight:
		repeat(keyTurnSteps, func() { gameplay.TurnRight(g) })
	case input.ActionAnswerYes:
		return s.Answer(true)
	case input.ActionAnswerNo:
		return s.Answer(false)
	case input.ActionSummary:
		g.AddMessage(s.Summary())
	case input.ActionToggleMinimap:
		t.showMinimap = !t.showMinimap
	case input.ActionDumpMap:
		path, err := devtools.DumpMapToFile(g)
		if err != nil {
			g.AddMessage(fmt.Sprintf("Map dump failed: %v", err))
		} else {
			g.AddMessage(fmt.Sprintf("Map dumped to %v", path))
		}
	case input.ActionQuit:
		g.Running = false
	}

	s.Tick()
	return nil
}

func repeat(n int, fn func()) {
	for i := 0; i < n; i++ {
		fn()
	}
}

// Clear clears the terminal screen.
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// GetViewportSize returns the first-person viewport dimensions based on
// the terminal size.
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	termWidth, termHeight := terminal.GetSize()

	cols = termWidth
	rows = termHeight - viewportTopMargin

	if cols < viewportMinCols {
		cols = viewportMinCols
	}
	if rows < viewportMinRows {
		rows = viewportMinRows
	}
	return rows, cols
}

// RenderFrame renders a complete game frame.
func (t *TUIRenderer) RenderFrame(s *gameplay.Session) {
	g := s.Game

	renderer.ColorAction.Printf("Depth %d", g.Level)
	renderer.ColorSubtle.Printf("   facing %s\n\n", compass(g.Player))

	t.printScene(g)
	t.printMessagesPane(g)
	t.printActions(s)

	fmt.Printf("\n> ")
}

// compass names the nearest cardinal direction of the camera.
func compass(p *state.Player) string {
	switch {
	case p.DirX >= 0.7071:
		return "east"
	case p.DirX <= -0.7071:
		return "west"
	case p.DirY > 0:
		return "south"
	default:
		return "north"
	}
}

// printScene draws the first-person view with the entity sprite and the
// minimap overlaid.
func (t *TUIRenderer) printScene(g *state.Game) {
	rows, cols := t.GetViewportSize()
	buf := t.buildScene(g, rows, cols)

	if t.showMinimap {
		t.overlayMinimap(buf, g)
	}

	var sb strings.Builder
	for _, row := range buf {
		for _, c := range row {
			if c.style != nil {
				sb.WriteString(c.style.Sprint(string(c.r)))
			} else {
				sb.WriteRune(c.r)
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}

// buildScene fills a rows x cols cell buffer: ceiling, wall slabs and
// floor per column, then the entity sprite occluded against the walls.
func (t *TUIRenderer) buildScene(g *state.Game, rows, cols int) [][]cell {
	buf := make([][]cell, rows)
	for y := range buf {
		buf[y] = make([]cell, cols)
		for x := range buf[y] {
			buf[y][x] = cell{r: IconCeiling}
		}
	}

	columns := renderer.Sweep(g.Player, g.Grid, cols)
	for x, col := range columns {
		top, bottom := rows, rows/2
		if !col.Hit.NoHit {
			top, bottom = renderer.SlabBounds(col.Hit.Distance, rows)
			r, style := wallCell(col.Hit)
			for y := top; y <= bottom; y++ {
				buf[y][x] = cell{r: r, style: style}
			}
		}
		for y := bottom + 1; y < rows; y++ {
			buf[y][x] = cell{r: IconFloor, style: &renderer.ColorSubtle}
		}
	}

	t.overlaySprite(buf, g, columns)
	return buf
}

// wallCell picks the character and style for a wall hit.
func wallCell(hit raycast.Hit) (rune, *color.Style) {
	shade := renderer.Shade(hit)
	idx := int((1 - shade) * float64(len(shadeRunes)))
	if idx >= len(shadeRunes) {
		idx = len(shadeRunes) - 1
	}
	if idx < 0 {
		idx = 0
	}

	style := &renderer.ColorWall
	switch hit.Kind {
	case world.WallMoss:
		style = &renderer.ColorMoss
	case world.WallRune:
		style = &renderer.ColorRune
	}
	return shadeRunes[idx], style
}

// overlaySprite draws the entity into the buffer, column by column so
// walls in front of it stay in front.
func (t *TUIRenderer) overlaySprite(buf [][]cell, g *state.Game, columns []renderer.Column) {
	rows, cols := len(buf), len(buf[0])

	sprite := renderer.ProjectEntity(g.Player, g.Entity, cols, rows)
	if !sprite.Visible {
		return
	}

	// Terminal cells are about twice as tall as wide.
	halfWidth := sprite.Height / 4
	if halfWidth < 1 {
		halfWidth = 1
	}
	top := rows/2 - sprite.Height/2
	bottom := rows/2 + sprite.Height/2

	for x := sprite.ScreenX - halfWidth; x <= sprite.ScreenX+halfWidth; x++ {
		if x < 0 || x >= cols {
			continue
		}
		if !columns[x].Hit.NoHit && columns[x].Hit.Distance < sprite.Distance {
			continue
		}
		for y := max(top, 0); y <= min(bottom, rows-1); y++ {
			buf[y][x] = cell{r: IconEntity, style: &renderer.ColorEntity}
		}
	}
}

// overlayMinimap draws the minimap into the top-right corner.
func (t *TUIRenderer) overlayMinimap(buf [][]cell, g *state.Game) {
	mm := renderer.MinimapModel(g, minimapRadius)
	rows, cols := len(buf), len(buf[0])

	offsetX := cols - len(mm[0]) - 1
	if offsetX < 0 {
		offsetX = 0
	}

	for row := range mm {
		if row+1 >= rows {
			break
		}
		for col := range mm[row] {
			x := offsetX + col
			if x >= cols {
				break
			}
			buf[row+1][x] = minimapCell(mm[row][col])
		}
	}
}

func minimapCell(c renderer.MinimapCell) cell {
	switch c {
	case renderer.MinimapPlayer:
		return cell{r: IconPlayer, style: &renderer.ColorPlayer}
	case renderer.MinimapEntity:
		return cell{r: IconEntity, style: &renderer.ColorEntity}
	case renderer.MinimapWall:
		return cell{r: IconMapWall, style: &renderer.ColorWall}
	case renderer.MinimapMark:
		return cell{r: IconMark, style: &renderer.ColorMark}
	case renderer.MinimapFloor:
		return cell{r: IconMapOpen, style: &renderer.ColorSubtle}
	default:
		return cell{r: ' '}
	}
}

// printActions prints the key bindings relevant right now.
func (t *TUIRenderer) printActions(s *gameplay.Session) {
	fmt.Println(renderer.FormatString("%s", actionHints(s.Pending != nil)))
}

// actionHints builds the footer line from the live bindings, so a
// rebound key never leaves the hint stale.
func actionHints(pending bool) string {
	by := input.GetBindingsByAction()

	if pending {
		return fmt.Sprintf("ACTION{%s} / ACTION{%s}: answer the entity",
			primaryKey(by, input.ActionAnswerYes), primaryKey(by, input.ActionAnswerNo))
	}

	parts := []string{
		fmt.Sprintf("ACTION{%s}/ACTION{%s} move", primaryKey(by, input.ActionMoveForward), primaryKey(by, input.ActionMoveBackward)),
		fmt.Sprintf("ACTION{%s}/ACTION{%s} strafe", primaryKey(by, input.ActionStrafeLeft), primaryKey(by, input.ActionStrafeRight)),
		fmt.Sprintf("ACTION{%s}/ACTION{%s} turn", primaryKey(by, input.ActionTurnLeft), primaryKey(by, input.ActionTurnRight)),
	}
	for _, a := range []input.Action{input.ActionSummary, input.ActionToggleMinimap, input.ActionQuit} {
		parts = append(parts, fmt.Sprintf("ACTION{%s} %s", primaryKey(by, a), strings.ToLower(input.ActionName(a))))
	}
	return strings.Join(parts, "  ")
}

// primaryKey picks the shortest code bound to an action, single letters
// before arrow names.
func primaryKey(by map[input.Action][]string, a input.Action) string {
	codes := by[a]
	if len(codes) == 0 {
		return "?"
	}
	best := codes[0]
	for _, c := range codes[1:] {
		if len(c) < len(best) {
			best = c
		}
	}
	return best
}

// printMessagesPane renders the messages log pane.
func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	width := terminal.GetWidth()

	label := " Messages "
	sideLen := (width - len(label)) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", width-sideLen-len(label))

	fmt.Println()
	fmt.Println(renderer.ColorSubtle.Sprint(leftDashes + label + rightDashes))

	if len(g.Messages) == 0 {
		fmt.Println(renderer.ColorSubtle.Sprint("  (silence)"))
	} else {
		for _, msg := range g.Messages {
			fmt.Printf("  %s\n", renderer.ColorStory.Sprint(msg))
		}
	}

	fmt.Println(renderer.ColorSubtle.Sprint(strings.Repeat("─", width)))
}

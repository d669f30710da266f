// Package ebiten provides the Ebiten-based graphical renderer: textured
// raycast walls at 60 ticks per second, with continuous movement while
// a key is held. Ebiten is a 2D game library for Go: https://ebiten.org/
package ebiten

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"somnium/pkg/engine/world"
	"somnium/pkg/game/config"
	"somnium/pkg/game/devtools"
	"somnium/pkg/game/gameplay"
	"somnium/pkg/game/renderer"
	"somnium/pkg/game/story"
	"somnium/pkg/game/textures"
)

type texKey struct {
	theme   string
	surface textures.Surface
	kind    world.CellKind
}

// EbitenRenderer is the Ebiten-based graphical renderer.
type EbitenRenderer struct {
	windowWidth  int
	windowHeight int

	session *gameplay.Session
	atlas   *textures.Atlas

	// theme follows the current level; texture images are cached per
	// (theme, surface, kind) so revisiting a theme is free.
	theme      string
	themeLevel int
	texCache   map[texKey]*ebiten.Image

	// zbuffer holds the wall distance per screen column for sprite
	// occlusion, rebuilt every frame.
	zbuffer []float64

	showMinimap   bool
	texturedWalls bool
}

// New creates a new Ebiten renderer.
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:   config.ScreenWidth,
		windowHeight:  config.ScreenHeight,
		texCache:      make(map[texKey]*ebiten.Image),
		showMinimap:   true,
		texturedWalls: true,
	}
}

// SetTextured switches between textured wall slices and flat shading.
func (e *EbitenRenderer) SetTextured(enabled bool) {
	e.texturedWalls = enabled
}

// Name identifies the backend.
func (e *EbitenRenderer) Name() string {
	return "ebiten"
}

// Init initializes the Ebiten renderer.
func (e *EbitenRenderer) Init() error {
	e.zbuffer = make([]float64, e.windowWidth)
	return nil
}

// Run hands control to the Ebiten game loop until the player quits.
func (e *EbitenRenderer) Run(s *gameplay.Session) error {
	e.session = s
	e.atlas = textures.NewAtlas(s.Game.Seed)
	e.refreshTheme()

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle("Somnium")
	return ebiten.RunGame(e)
}

// refreshTheme re-derives the level theme when the level changes.
func (e *EbitenRenderer) refreshTheme() {
	g := e.session.Game
	if g.Level == e.themeLevel && e.theme != "" {
		return
	}
	e.theme = story.ThemeForLevel(g.Level, g.Grid)
	e.themeLevel = g.Level
}

// Update handles input and advances the session (Ebiten interface).
func (e *EbitenRenderer) Update() error {
	s := e.session
	g := s.Game

	if !g.Running {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.Running = false
		return ebiten.Termination
	}

	if s.Pending != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyY) {
			if err := s.Answer(true); err != nil {
				return err
			}
			e.refreshTheme()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyN) {
			if err := s.Answer(false); err != nil {
				return err
			}
			e.refreshTheme()
		}
		return nil
	}

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		gameplay.MoveForward(g)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		gameplay.MoveBackward(g)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		gameplay.StrafeLeft(g)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		gameplay.StrafeRight(g)
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		gameplay.TurnLeft(g)
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		gameplay.TurnRight(g)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyJ) {
		g.AddMessage(s.Summary())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		e.showMinimap = !e.showMinimap
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		devtools.DumpMapToFile(g)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.AddMessage(fmt.Sprintf("Saved %s", devtools.SaveSnapshotHTML(g)))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF8) {
		if err := devtools.SwitchToDevMap(g); err == nil {
			e.themeLevel = 0
			e.refreshTheme()
		}
	}

	s.Tick()
	return nil
}

// Draw renders one frame (Ebiten interface).
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	g := e.session.Game
	if g.Grid == nil {
		return
	}

	w, h := e.windowWidth, e.windowHeight

	e.drawBackdrop(screen, w, h)
	e.drawWalls(screen, w, h)
	e.drawEntity(screen, w, h)

	if e.showMinimap {
		e.drawMinimap(screen)
	}
	e.drawMessages(screen, h)
}

// Layout returns the game's logical screen size (Ebiten interface).
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.windowWidth, e.windowHeight
}

// drawBackdrop fills the ceiling and floor halves with the theme's
// surface tones.
func (e *EbitenRenderer) drawBackdrop(screen *ebiten.Image, w, h int) {
	ceiling := e.atlas.Get(e.theme, textures.SurfaceCeiling, world.Floor).Sample(0.5, 0.5)
	floor := e.atlas.Get(e.theme, textures.SurfaceFloor, world.Floor).Sample(0.5, 0.5)

	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h)/2, ceiling, false)
	vector.DrawFilledRect(screen, 0, float32(h)/2, float32(w), float32(h)/2, floor, false)
}

// drawWalls casts one ray per screen column and draws a textured,
// distance-shaded slab for each, filling the zbuffer as it goes.
func (e *EbitenRenderer) drawWalls(screen *ebiten.Image, w, h int) {
	g := e.session.Game
	columns := renderer.Sweep(g.Player, g.Grid, w)

	for x, col := range columns {
		if col.Hit.NoHit {
			e.zbuffer[x] = math.Inf(1)
			continue
		}
		e.zbuffer[x] = col.Hit.Distance

		lineHeight := float64(h) / col.Hit.Distance
		drawStart := float64(h)/2 - lineHeight/2
		shade := float32(renderer.Shade(col.Hit))

		if !e.texturedWalls {
			c := e.atlas.Get(e.theme, textures.SurfaceWall, col.Hit.Kind).Sample(0.5, 0.5)
			flat := color.RGBA{
				R: uint8(float32(c.R) * shade),
				G: uint8(float32(c.G) * shade),
				B: uint8(float32(c.B) * shade),
				A: 255,
			}
			vector.DrawFilledRect(screen, float32(x), float32(drawStart), 1, float32(lineHeight), flat, false)
			continue
		}

		tex := e.textureImage(textures.SurfaceWall, col.Hit.Kind)
		texX := int(col.Hit.WallX * textures.Size)
		if texX >= textures.Size {
			texX = textures.Size - 1
		}
		strip := tex.SubImage(image.Rect(texX, 0, texX+1, textures.Size)).(*ebiten.Image)

		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Scale(1, lineHeight/textures.Size)
		opts.GeoM.Translate(float64(x), drawStart)
		opts.ColorScale.Scale(shade, shade, shade, 1)

		screen.DrawImage(strip, opts)
	}
}

// drawEntity projects the dream entity and draws it strip by strip so
// nearer walls occlude it.
func (e *EbitenRenderer) drawEntity(screen *ebiten.Image, w, h int) {
	g := e.session.Game
	sprite := renderer.ProjectEntity(g.Player, g.Entity, w, h)
	if !sprite.Visible {
		return
	}

	halfWidth := sprite.Height / 4
	if halfWidth < 1 {
		halfWidth = 1
	}
	top := float32(h/2 - sprite.Height/2)

	fade := float32(1 - 0.6*sprite.Distance/config.RenderDistance)
	if fade < 0.25 {
		fade = 0.25
	}
	body := color.RGBA{R: uint8(60 * fade), G: uint8(20 * fade), B: uint8(80 * fade), A: 255}

	for x := sprite.ScreenX - halfWidth; x <= sprite.ScreenX+halfWidth; x++ {
		if x < 0 || x >= w {
			continue
		}
		if e.zbuffer[x] < sprite.Distance {
			continue
		}
		vector.DrawFilledRect(screen, float32(x), top, 1, float32(sprite.Height), body, false)
	}
}

// Minimap cell colors.
var minimapColors = map[renderer.MinimapCell]color.RGBA{
	renderer.MinimapWall:   {R: 90, G: 90, B: 100, A: 230},
	renderer.MinimapFloor:  {R: 30, G: 30, B: 40, A: 230},
	renderer.MinimapMark:   {R: 80, G: 200, B: 220, A: 230},
	renderer.MinimapPlayer: {R: 80, G: 220, B: 80, A: 255},
	renderer.MinimapEntity: {R: 220, G: 60, B: 200, A: 255},
}

// drawMinimap draws the player-centred map window in the top-right
// corner.
func (e *EbitenRenderer) drawMinimap(screen *ebiten.Image) {
	g := e.session.Game

	cellPx := config.MinimapMaxCell
	radius := config.MinimapSize / cellPx / 2
	mm := renderer.MinimapModel(g, radius)

	sizePx := len(mm) * cellPx
	originX := e.windowWidth - sizePx - config.MinimapMargin
	originY := config.MinimapMargin

	for row := range mm {
		for col := range mm[row] {
			c, ok := minimapColors[mm[row][col]]
			if !ok {
				continue
			}
			vector.DrawFilledRect(screen,
				float32(originX+col*cellPx), float32(originY+row*cellPx),
				float32(cellPx), float32(cellPx), c, false)
		}
	}

	// Heading marker: a short line from the player cell along the view
	// direction.
	cx := float32(originX + radius*cellPx + cellPx/2)
	cy := float32(originY + radius*cellPx + cellPx/2)
	length := float32(cellPx) * 1.5
	vector.StrokeLine(screen,
		cx, cy,
		cx+float32(g.Player.DirX)*length, cy+float32(g.Player.DirY)*length,
		2, minimapColors[renderer.MinimapPlayer], false)
}

// drawMessages prints the message log in the bottom-left corner, and
// the answer hint while a question is pending.
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, h int) {
	g := e.session.Game

	const lineHeight = 16
	y := h - (len(g.Messages)+1)*lineHeight
	for _, msg := range g.Messages {
		ebitenutil.DebugPrintAt(screen, msg, 8, y)
		y += lineHeight
	}

	if e.session.Pending != nil {
		ebitenutil.DebugPrintAt(screen, "[Y]es / [N]o", 8, y)
	}
}

// textureImage returns the GPU texture for a surface and wall kind,
// uploading it on first use.
func (e *EbitenRenderer) textureImage(surface textures.Surface, kind world.CellKind) *ebiten.Image {
	key := texKey{theme: e.theme, surface: surface, kind: kind}
	if img, ok := e.texCache[key]; ok {
		return img
	}

	img := ebiten.NewImageFromImage(e.atlas.Get(e.theme, surface, kind).Image())
	e.texCache[key] = img
	return img
}

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"somnium/pkg/engine/terminal"
	"somnium/pkg/game/gameplay"
	"somnium/pkg/game/renderer"
	ebitenrenderer "somnium/pkg/game/renderer/ebiten"
	"somnium/pkg/game/renderer/tui"
)

func initGettext() {
	gotext.Configure("mo/", "en_GB", "default")
}

// buildRenderer picks the rendering backend by name.
func buildRenderer(name string) (renderer.Renderer, error) {
	switch name {
	case "tui":
		return tui.New(), nil
	case "ebiten", "gui":
		return ebitenrenderer.New(), nil
	default:
		return nil, fmt.Errorf("unknown renderer %q (want tui or ebiten)", name)
	}
}

func main() {
	startLevel := flag.Int("level", 1, "starting level (for developer testing)")
	seed := flag.Int64("seed", 0, "world seed (0 = derive from clock)")
	backend := flag.String("renderer", "ebiten", "rendering backend: tui or ebiten")
	textured := flag.Bool("textures", true, "draw procedural wall textures (ebiten backend)")
	flag.Parse()

	initGettext()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	r, err := buildRenderer(*backend)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if r.Name() == "tui" && !terminal.IsInteractive() {
		fmt.Fprintln(os.Stderr, "the tui renderer needs an interactive terminal on stdout")
		os.Exit(1)
	}
	if er, ok := r.(*ebitenrenderer.EbitenRenderer); ok {
		er.SetTextured(*textured)
	}
	renderer.SetRenderer(r)

	if err := r.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "renderer init failed: %v\n", err)
		os.Exit(1)
	}

	session, err := gameplay.NewSession(*startLevel, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot start the dream: %v\n", err)
		os.Exit(1)
	}

	if err := r.Run(session); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package cli

import (
	"analogue-clock/internal/clock"
	"analogue-clock/internal/config"
	"analogue-clock/internal/render"
	"analogue-clock/internal/utils"

	"github.com/spf13/afero"
)

// variant identifies one of the render modes.
type variant int

const (
	variantLines variant = iota
	variantMesh
	variantSolid
)

func (v variant) fps() int32 {
	switch v {
	case variantMesh:
		return render.MeshFPS
	case variantSolid:
		return render.SolidFPS
	default:
		return render.LinesFPS
	}
}

// closer is implemented by scenes that hold GPU resources.
type closer interface {
	Close()
}

// runVariant loads the theme, opens the window, builds the requested
// scene, and drives the render loop until quit.
func runVariant(v variant) error {
	cfg, err := config.Load(afero.NewOsFs(), flagTheme)
	if err != nil {
		return err
	}
	fps := v.fps()
	if cfg.Clock.FPS > 0 {
		fps = int32(cfg.Clock.FPS)
	}

	window, err := render.OpenWindow(cfg, fps)
	if err != nil {
		return err
	}
	defer window.Close()

	var scene render.Scene
	switch v {
	case variantMesh:
		scene = render.NewMeshScene(cfg, window.Scale())
	case variantSolid:
		scene = render.NewSolidScene(cfg, window.Scale())
	default:
		scene = render.NewLinesScene(cfg, window.Scale())
	}
	if c, ok := scene.(closer); ok {
		defer c.Close()
	}

	var updates <-chan config.Config
	if flagTheme != "" {
		watcher, err := config.Watch(flagTheme)
		if err != nil {
			utils.Warn("Theme watching disabled: %v", err)
		} else {
			defer watcher.Close()
			updates = watcher.Updates
		}
	}

	return render.NewDriver(window, clock.SystemSampler{}, scene, updates).Run()
}

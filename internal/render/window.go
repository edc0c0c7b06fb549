package render

import (
	"errors"

	"analogue-clock/internal/config"
	"analogue-clock/internal/utils"
	"analogue-clock/internal/xdisplay"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window is the raylib-backed Surface. It owns the OS window and GL
// device for the process lifetime.
type Window struct {
	scale float32
}

// OpenWindow creates the application window and rendering device at the
// configured size and frame cadence. Creation failure is fatal for the
// process; there is no retry.
func OpenWindow(cfg config.Config, fps int32) (*Window, error) {
	rl.SetTraceLogCallback(utils.RaylibLogCallback)
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	if !rl.IsWindowReady() {
		return nil, errors.New("window or rendering device creation failed")
	}

	// Center on the primary display when X11 can tell us its size.
	if sw, sh, err := xdisplay.ScreenSize(); err == nil && sw > 0 && sh > 0 {
		rl.SetWindowPosition((sw-cfg.Window.Width)/2, (sh-cfg.Window.Height)/2)
	} else if err != nil {
		utils.Debug("X11 screen geometry unavailable: %v", err)
	}

	rl.SetExitKey(rl.KeyEscape)
	rl.SetTargetFPS(fps)

	scale := rl.GetWindowScaleDPI()
	w := &Window{scale: scale.X}
	utils.Debug("Window ready: %dx%d at scale %.2f, %d FPS",
		cfg.Window.Width, cfg.Window.Height, w.scale, fps)
	return w, nil
}

// Scale is the display density multiplier applied to all lengths and
// radii so proportions hold across displays.
func (w *Window) Scale() float32 {
	if w.scale <= 0 {
		return 1
	}
	return w.scale
}

func (w *Window) ShouldClose() bool { return rl.WindowShouldClose() }

func (w *Window) Begin() { rl.BeginDrawing() }

func (w *Window) End() { rl.EndDrawing() }

// Close tears down the window and device.
func (w *Window) Close() { rl.CloseWindow() }

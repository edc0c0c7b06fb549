// Package xdisplay answers small questions about the X11 display. It is
// best-effort: callers are expected to carry on without it when no X
// server is reachable (Wayland-only sessions, headless runs).
package xdisplay

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// ScreenSize returns the pixel dimensions of the default screen's root
// window.
func ScreenSize() (width, height int, err error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return 0, 0, err
	}
	defer conn.Close()

	screen := xproto.Setup(conn).DefaultScreen(conn)
	return int(screen.WidthInPixels), int(screen.HeightInPixels), nil
}

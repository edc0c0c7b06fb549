package render

import (
	"analogue-clock/internal/clock"
	"analogue-clock/internal/config"
	"analogue-clock/internal/geometry"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LinesFPS is the line variant's frame cadence: ten frames per second,
// enough for hands that tick whole units.
const LinesFPS = 10

// LinesScene is the 2D line-drawn clock: a point-plotted raster face
// outline, line-segment markers and hands, and a polyline hub.
type LinesScene struct {
	center  geometry.Vec2
	radius  float32
	scale   float32
	theme   theme
	outline []geometry.Vec2
	hub     []geometry.Vec2
}

// NewLinesScene precomputes the face outline and hub once; both are pure
// coordinates re-drawn every frame, never mutated.
func NewLinesScene(cfg config.Config, scale float32) *LinesScene {
	s := &LinesScene{
		center: geometry.Vec2{
			X: float32(cfg.Window.Width) / 2 * scale,
			Y: float32(cfg.Window.Height) / 2 * scale,
		},
		radius: float32(cfg.Clock.Radius) * scale,
		scale:  scale,
		theme:  themeFrom(cfg.Colors),
	}
	s.outline = geometry.RasterCircle(s.center, int(s.radius))
	s.hub = geometry.CircleOutline(s.center, hubRadius*scale, hubSegments2D)
	return s
}

// Options: both hands tick; no sub-unit interpolation at 10 FPS.
func (s *LinesScene) Options() clock.AngleOptions { return clock.AngleOptions{} }

func (s *LinesScene) Apply(cfg config.Config) { s.theme = themeFrom(cfg.Colors) }

func (s *LinesScene) Draw(a clock.HandAngles) {
	rl.ClearBackground(s.theme.background)

	for _, p := range s.outline {
		rl.DrawPixelV(rl.NewVector2(p.X, p.Y), s.theme.face)
	}

	markers := geometry.HourMarkers(s.center, s.radius)
	for _, m := range markers {
		rl.DrawLineV(rl.NewVector2(m.Inner.X, m.Inner.Y), rl.NewVector2(m.Outer.X, m.Outer.Y), s.theme.markers)
	}

	s.drawHand(float32(a.Hour), hourHandLength, s.theme.hourHand)
	s.drawHand(float32(a.Minute), minuteHandLength, s.theme.minuteHand)
	s.drawHand(float32(a.Second), secondHandLength, s.theme.secondHand)

	for i := 1; i < len(s.hub); i++ {
		rl.DrawLineV(rl.NewVector2(s.hub[i-1].X, s.hub[i-1].Y), rl.NewVector2(s.hub[i].X, s.hub[i].Y), s.theme.hub)
	}
}

func (s *LinesScene) drawHand(angle, length float32, col rl.Color) {
	base, tip := geometry.HandLine(s.center, angle, length*s.scale)
	rl.DrawLineV(rl.NewVector2(base.X, base.Y), rl.NewVector2(tip.X, tip.Y), col)
}

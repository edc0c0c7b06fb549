package render

import (
	"analogue-clock/internal/clock"
	"analogue-clock/internal/config"
	"analogue-clock/internal/geometry"
	"analogue-clock/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MeshFPS is the triangulated variant's frame cadence.
const MeshFPS = 60

// MeshScene is the 2D triangulated clock: the ring face, marker quads,
// and hand quads are triangle lists drawn through a vignette fragment
// shader. Hands regenerate every frame from fresh angles; the ring is
// precomputed once.
type MeshScene struct {
	center  geometry.Vec2
	radius  float32
	scale   float32
	theme   theme
	shader  rl.Shader
	resLoc  int32
	ring    []geometry.Vec2
	markers []geometry.Vec2
	hub     []geometry.Vec2
	width   float32
	height  float32
}

func NewMeshScene(cfg config.Config, scale float32) *MeshScene {
	s := &MeshScene{
		center: geometry.Vec2{
			X: float32(cfg.Window.Width) / 2 * scale,
			Y: float32(cfg.Window.Height) / 2 * scale,
		},
		radius: float32(cfg.Clock.Radius) * scale,
		scale:  scale,
		theme:  themeFrom(cfg.Colors),
		width:  float32(cfg.Window.Width) * scale,
		height: float32(cfg.Window.Height) * scale,
	}
	s.ring = geometry.Ring(s.center, s.radius, ringWidth*scale, faceSegments2D)
	s.markers = geometry.MarkerQuads(s.center, s.radius)
	s.hub = geometry.DiscFan(s.center, hubRadius*scale, hubSegments2D)

	// A failed compile is diagnosed but not fatal: raylib falls back to
	// its default program and the clock keeps rendering.
	s.shader = rl.LoadShaderFromMemory("", vignetteFS)
	if s.shader.ID == 0 {
		utils.Error("Vignette shader failed to compile; continuing without it")
	} else {
		s.resLoc = rl.GetShaderLocation(s.shader, "resolution")
	}
	return s
}

// Options: the minute hand is nudged along by the seconds.
func (s *MeshScene) Options() clock.AngleOptions {
	return clock.AngleOptions{SmoothMinute: true}
}

func (s *MeshScene) Apply(cfg config.Config) { s.theme = themeFrom(cfg.Colors) }

func (s *MeshScene) Draw(a clock.HandAngles) {
	rl.ClearBackground(s.theme.background)

	shaded := s.shader.ID != 0
	if shaded {
		rl.SetShaderValue(s.shader, s.resLoc, []float32{s.width, s.height}, rl.ShaderUniformVec2)
		rl.BeginShaderMode(s.shader)
	}

	drawTriangles(s.ring, s.theme.face)
	drawTriangles(s.markers, s.theme.markers)

	drawTriangles(geometry.HandQuad(s.center, float32(a.Hour), hourHandLength*s.scale, hourHandWidth*s.scale), s.theme.hourHand)
	drawTriangles(geometry.HandQuad(s.center, float32(a.Minute), minuteHandLength*s.scale, minuteHandWidth*s.scale), s.theme.minuteHand)
	drawTriangles(geometry.HandQuad(s.center, float32(a.Second), secondHandLength*s.scale, secondHandWidth*s.scale), s.theme.secondHand)

	fan := make([]rl.Vector2, len(s.hub))
	for i, p := range s.hub {
		fan[i] = rl.NewVector2(p.X, p.Y)
	}
	rl.DrawTriangleFan(fan, s.theme.hub)

	if shaded {
		rl.EndShaderMode()
	}
}

// Close releases the shader program.
func (s *MeshScene) Close() {
	if s.shader.ID != 0 {
		rl.UnloadShader(s.shader)
	}
}

func drawTriangles(verts []geometry.Vec2, col rl.Color) {
	for i := 0; i+2 < len(verts); i += 3 {
		rl.DrawTriangle(
			rl.NewVector2(verts[i].X, verts[i].Y),
			rl.NewVector2(verts[i+1].X, verts[i+1].Y),
			rl.NewVector2(verts[i+2].X, verts[i+2].Y),
			col,
		)
	}
}

package render

import (
	"unsafe"

	"analogue-clock/internal/clock"
	"analogue-clock/internal/config"
	"analogue-clock/internal/geometry"
	"analogue-clock/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SolidFPS is the 3D variant's frame cadence.
const SolidFPS = 60

// Light and camera placement for the lit variant.
var (
	lightPosition  = []float32{200, 200, 300}
	lightColor     = []float32{1, 1, 1}
	cameraPosition = rl.NewVector3(0, 0, 1300)
)

// Hand and marker extrusion depths in world units.
const (
	handDepth   = 2
	markerDepth = 3
)

// SolidScene is the 3D lit clock: flat ring face, double-sided extruded
// markers and hands, perspective camera, Phong lighting shader. All
// meshes are built once pointing at 12 o'clock; hands rotate via a model
// transform each frame.
type SolidScene struct {
	camera rl.Camera3D
	theme  theme
	shader rl.Shader

	face    rl.Model
	markers rl.Model
	hour    rl.Model
	minute  rl.Model
	second  rl.Model
	hub     rl.Model

	// Vertex storage backing the uploaded meshes; kept referenced for the
	// scene lifetime.
	buffers [][]float32
}

func NewSolidScene(cfg config.Config, scale float32) *SolidScene {
	radius := float32(cfg.Clock.Radius) * scale

	s := &SolidScene{
		camera: rl.Camera3D{
			Position:   cameraPosition,
			Target:     rl.NewVector3(0, 0, 0),
			Up:         rl.NewVector3(0, 1, 0),
			Fovy:       45,
			Projection: rl.CameraPerspective,
		},
		theme: themeFrom(cfg.Colors),
	}

	// Shader compile or link failure is logged, not fatal: raylib keeps
	// rendering with its default program.
	s.shader = rl.LoadShaderFromMemory(lightingVS, lightingFS)
	if s.shader.ID == 0 {
		utils.Error("Lighting shader failed to compile; continuing unlit")
	} else {
		rl.SetShaderValue(s.shader, rl.GetShaderLocation(s.shader, "lightPos"), lightPosition, rl.ShaderUniformVec3)
		rl.SetShaderValue(s.shader, rl.GetShaderLocation(s.shader, "lightColor"), lightColor, rl.ShaderUniformVec3)
		rl.SetShaderValue(s.shader, rl.GetShaderLocation(s.shader, "viewPos"),
			[]float32{cameraPosition.X, cameraPosition.Y, cameraPosition.Z}, rl.ShaderUniformVec3)
	}

	s.face = s.upload(geometry.Ring3D(radius, ringWidth*scale, faceSegments3D))
	s.markers = s.upload(geometry.MarkerQuads3D(radius, markerDepth))
	s.hour = s.upload(geometry.HandQuad3D(0, hourHandLength*scale, hourHandWidth*scale, handDepth))
	s.minute = s.upload(geometry.HandQuad3D(0, minuteHandLength*scale, minuteHandWidth*scale, handDepth))
	s.second = s.upload(geometry.HandQuad3D(0, secondHandLength*scale, secondHandWidth*scale, handDepth))
	s.hub = s.upload(geometry.Ring3D(hubRadius*scale, ringWidth*scale, hubSegments3D))

	return s
}

// Options: fully smooth motion, milliseconds included.
func (s *SolidScene) Options() clock.AngleOptions {
	return clock.AngleOptions{SmoothMinute: true, SmoothSecond: true}
}

func (s *SolidScene) Apply(cfg config.Config) { s.theme = themeFrom(cfg.Colors) }

func (s *SolidScene) Draw(a clock.HandAngles) {
	rl.ClearBackground(s.theme.background)

	origin := rl.NewVector3(0, 0, 0)
	zAxis := rl.NewVector3(0, 0, 1)
	one := rl.NewVector3(1, 1, 1)

	rl.BeginMode3D(s.camera)

	rl.DrawModel(s.face, origin, 1, s.theme.face)
	rl.DrawModel(s.markers, origin, 1, s.theme.markers)

	// Clockwise on screen is a negative rotation about +Z for the camera
	// looking down the axis.
	rl.DrawModelEx(s.hour, origin, zAxis, -float32(a.Hour), one, s.theme.hourHand)
	rl.DrawModelEx(s.minute, origin, zAxis, -float32(a.Minute), one, s.theme.minuteHand)
	rl.DrawModelEx(s.second, origin, zAxis, -float32(a.Second), one, s.theme.secondHand)

	rl.DrawModel(s.hub, origin, 1, s.theme.hub)

	rl.EndMode3D()
}

// Close releases the shader. Mesh buffers stay with the GL context and go
// down with the window at process exit.
func (s *SolidScene) Close() {
	if s.shader.ID != 0 {
		rl.UnloadShader(s.shader)
	}
}

// upload flattens a vertex list into position/normal buffers, uploads
// them as a static mesh, and binds the lighting shader to the resulting
// model's material.
func (s *SolidScene) upload(verts []geometry.Vertex) rl.Model {
	positions := make([]float32, 0, len(verts)*3)
	normals := make([]float32, 0, len(verts)*3)
	for _, v := range verts {
		positions = append(positions, v.Pos.X, v.Pos.Y, v.Pos.Z)
		normals = append(normals, v.Normal.X, v.Normal.Y, v.Normal.Z)
	}
	s.buffers = append(s.buffers, positions, normals)

	mesh := rl.Mesh{
		VertexCount:   int32(len(verts)),
		TriangleCount: int32(len(verts) / 3),
	}
	mesh.Vertices = unsafe.SliceData(positions)
	mesh.Normals = unsafe.SliceData(normals)
	rl.UploadMesh(&mesh, false)

	model := rl.LoadModelFromMesh(mesh)
	if s.shader.ID != 0 {
		model.GetMaterials()[0].Shader = s.shader
	}
	return model
}

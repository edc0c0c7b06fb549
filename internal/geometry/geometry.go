// Package geometry generates the vertex data for the clock face, hour
// markers, and hands. Every function is pure: callers pass the center,
// radius, and angles and get fresh coordinates back, so nothing here
// depends on the renderer or mutates shared buffers.
//
// 2D coordinates are screen-space (y grows downward) with triangles wound
// counter-clockwise as seen on screen. 3D coordinates are world-space
// (y grows upward) with front faces wound counter-clockwise when viewed
// from +Z. Hand angles are degrees clockwise from 12 o'clock in both.
package geometry

import "github.com/chewxy/math32"

// Deg converts degrees to radians.
const Deg = math32.Pi / 180

type Vec2 struct {
	X, Y float32
}

type Vec3 struct {
	X, Y, Z float32
}

// Vertex is a 3D position with its lighting normal.
type Vertex struct {
	Pos    Vec3
	Normal Vec3
}

// handVector returns the unit direction of a hand and its unit
// perpendicular in screen coordinates. One sign convention for the
// perpendicular is used everywhere, 2D and 3D alike.
func handVector(angleDeg float32) (dir, perp Vec2) {
	s, c := math32.Sincos(angleDeg * Deg)
	return Vec2{s, -c}, Vec2{c, s}
}

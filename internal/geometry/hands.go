package geometry

// HandLine returns the base and tip of a thin hand in screen coordinates:
// the tip sits at center + (sin θ, −cos θ)·length.
func HandLine(center Vec2, angleDeg, length float32) (base, tip Vec2) {
	d, _ := handVector(angleDeg)
	return center, Vec2{center.X + d.X*length, center.Y + d.Y*length}
}

// HandQuad thickens a hand into a screen-space quad, returned as a
// 6-vertex triangle list. Both long edges are offset from the center line
// by half the thickness along the hand's perpendicular; thickness 0 yields
// a degenerate quad, which renders as nothing and needs no special case.
func HandQuad(center Vec2, angleDeg, length, thickness float32) []Vec2 {
	d, p := handVector(angleDeg)
	half := thickness / 2
	tip := Vec2{center.X + d.X*length, center.Y + d.Y*length}

	baseL := Vec2{center.X - p.X*half, center.Y - p.Y*half}
	baseR := Vec2{center.X + p.X*half, center.Y + p.Y*half}
	tipL := Vec2{tip.X - p.X*half, tip.Y - p.Y*half}
	tipR := Vec2{tip.X + p.X*half, tip.Y + p.Y*half}

	return []Vec2{baseL, baseR, tipR, baseL, tipR, tipL}
}

// HandQuad3D extrudes a hand quad double-sided at ±depth in world space,
// rooted at the origin so the renderer can rotate it with a model
// transform. Same perpendicular sign convention as HandQuad.
func HandQuad3D(angleDeg, length, thickness, depth float32) []Vertex {
	d, p := handVector(angleDeg)
	// Screen-space direction to world space: flip Y.
	dx, dy := d.X, -d.Y
	px, py := p.X, -p.Y
	half := thickness / 2

	baseL := [2]float32{-px * half, -py * half}
	baseR := [2]float32{px * half, py * half}
	tipL := [2]float32{length*dx - px*half, length*dy - py*half}
	tipR := [2]float32{length*dx + px*half, length*dy + py*half}

	return extrudeQuad(baseL, baseR, tipR, tipL, depth)
}

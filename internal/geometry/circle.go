package geometry

import "github.com/chewxy/math32"

// CircleOutline samples segments+1 equally spaced points around a circle,
// starting at 12 o'clock and sweeping clockwise. The ring is closed: the
// first and last points coincide.
func CircleOutline(center Vec2, radius float32, segments int) []Vec2 {
	points := make([]Vec2, 0, segments+1)
	for i := 0; i <= segments; i++ {
		s, c := math32.Sincos(2 * math32.Pi * float32(i) / float32(segments))
		points = append(points, Vec2{center.X + radius*s, center.Y - radius*c})
	}
	return points
}

// RasterCircle plots an integer midpoint circle around center. Points come
// out in 8-way symmetric groups, so the ring is closed and symmetric by
// construction. Intended for the point-plotted face of the line variant.
func RasterCircle(center Vec2, radius int) []Vec2 {
	cx, cy := center.X, center.Y
	points := make([]Vec2, 0, radius*8)

	x, y := 0, radius
	d := 1 - radius
	for x <= y {
		fx, fy := float32(x), float32(y)
		points = append(points,
			Vec2{cx + fx, cy + fy}, Vec2{cx - fx, cy + fy},
			Vec2{cx + fx, cy - fy}, Vec2{cx - fx, cy - fy},
			Vec2{cx + fy, cy + fx}, Vec2{cx - fy, cy + fx},
			Vec2{cx + fy, cy - fx}, Vec2{cx - fy, cy - fx},
		)
		if d < 0 {
			d += 2*x + 3
		} else {
			d += 2*(x-y) + 5
			y--
		}
		x++
	}
	return points
}

// Ring triangulates an annulus of the given outer radius and radial width
// into a screen-space triangle list, two triangles per segment.
func Ring(center Vec2, radius, width float32, segments int) []Vec2 {
	inner := radius - width
	verts := make([]Vec2, 0, segments*6)
	for i := 0; i < segments; i++ {
		s1, c1 := math32.Sincos(2 * math32.Pi * float32(i) / float32(segments))
		s2, c2 := math32.Sincos(2 * math32.Pi * float32(i+1) / float32(segments))

		o1 := Vec2{center.X + radius*s1, center.Y - radius*c1}
		o2 := Vec2{center.X + radius*s2, center.Y - radius*c2}
		i1 := Vec2{center.X + inner*s1, center.Y - inner*c1}
		i2 := Vec2{center.X + inner*s2, center.Y - inner*c2}

		verts = append(verts, o1, i1, o2, o2, i1, i2)
	}
	return verts
}

// Ring3D triangulates the same annulus flat at z=0 with every normal fixed
// to +Z. A deliberate simplification: the face reads as a solid ring under
// lighting without modelling a true curved-normal cylinder.
func Ring3D(radius, width float32, segments int) []Vertex {
	inner := radius - width
	up := Vec3{0, 0, 1}
	verts := make([]Vertex, 0, segments*6)
	for i := 0; i < segments; i++ {
		s1, c1 := math32.Sincos(2 * math32.Pi * float32(i) / float32(segments))
		s2, c2 := math32.Sincos(2 * math32.Pi * float32(i+1) / float32(segments))

		o1 := Vec3{radius * c1, radius * s1, 0}
		o2 := Vec3{radius * c2, radius * s2, 0}
		i1 := Vec3{inner * c1, inner * s1, 0}
		i2 := Vec3{inner * c2, inner * s2, 0}

		verts = append(verts,
			Vertex{o1, up}, Vertex{o2, up}, Vertex{i1, up},
			Vertex{i1, up}, Vertex{o2, up}, Vertex{i2, up},
		)
	}
	return verts
}

// DiscFan returns a filled disc as a triangle fan: the center first, then
// a closed ring of segments+1 points wound counter-clockwise on screen.
// Used for the center hub.
func DiscFan(center Vec2, radius float32, segments int) []Vec2 {
	ring := CircleOutline(center, radius, segments)
	for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
		ring[i], ring[j] = ring[j], ring[i]
	}
	return append([]Vec2{center}, ring...)
}

package geometry

// Marker is one hour tick: a radial segment from Inner to Outer.
type Marker struct {
	Inner, Outer Vec2
}

// MarkerCount is the number of hour ticks around the face.
const MarkerCount = 12

// markerLength and markerThickness derive the tick proportions from the
// face radius so they hold across display densities.
func markerLength(radius float32) float32    { return radius / 12 }
func markerThickness(radius float32) float32 { return radius / 80 }

// HourMarkers returns the 12 tick segments at 30 degree intervals. Outer
// endpoints sit on the face radius, inner ones radius/12 closer in.
func HourMarkers(center Vec2, radius float32) [MarkerCount]Marker {
	inner := radius - markerLength(radius)
	var marks [MarkerCount]Marker
	for hour := 0; hour < MarkerCount; hour++ {
		d, _ := handVector(float32(hour) * 30)
		marks[hour] = Marker{
			Inner: Vec2{center.X + inner*d.X, center.Y + inner*d.Y},
			Outer: Vec2{center.X + radius*d.X, center.Y + radius*d.Y},
		}
	}
	return marks
}

// MarkerQuads thickens every hour tick into a screen-space quad, giving a
// triangle list of 6 vertices per marker.
func MarkerQuads(center Vec2, radius float32) []Vec2 {
	half := markerThickness(radius) / 2
	verts := make([]Vec2, 0, MarkerCount*6)
	for hour := 0; hour < MarkerCount; hour++ {
		d, p := handVector(float32(hour) * 30)
		inner := radius - markerLength(radius)

		innerL := Vec2{center.X + inner*d.X - p.X*half, center.Y + inner*d.Y - p.Y*half}
		innerR := Vec2{center.X + inner*d.X + p.X*half, center.Y + inner*d.Y + p.Y*half}
		outerL := Vec2{center.X + radius*d.X - p.X*half, center.Y + radius*d.Y - p.Y*half}
		outerR := Vec2{center.X + radius*d.X + p.X*half, center.Y + radius*d.Y + p.Y*half}

		verts = append(verts, innerL, innerR, outerR, innerL, outerR, outerL)
	}
	return verts
}

// MarkerQuads3D extrudes the thickened ticks double-sided at ±depth in
// world space, front faces with +Z normals and back faces with −Z.
func MarkerQuads3D(radius, depth float32) []Vertex {
	half := markerThickness(radius) / 2
	verts := make([]Vertex, 0, MarkerCount*12)
	for hour := 0; hour < MarkerCount; hour++ {
		d, p := handVector(float32(hour) * 30)
		// Screen-space direction to world space: flip Y.
		dx, dy := d.X, -d.Y
		px, py := p.X, -p.Y
		inner := radius - markerLength(radius)

		il := [2]float32{inner*dx - px*half, inner*dy - py*half}
		ir := [2]float32{inner*dx + px*half, inner*dy + py*half}
		ol := [2]float32{radius*dx - px*half, radius*dy - py*half}
		or := [2]float32{radius*dx + px*half, radius*dy + py*half}

		verts = append(verts, extrudeQuad(il, ir, or, ol, depth)...)
	}
	return verts
}

// extrudeQuad builds the double-sided triangle list for a quad given its
// corners in counter-clockwise order (viewed from +Z): front face at
// +depth wound as given, back face at −depth wound in reverse.
func extrudeQuad(a, b, c, d [2]float32, depth float32) []Vertex {
	front := Vec3{0, 0, 1}
	back := Vec3{0, 0, -1}
	fv := func(q [2]float32) Vertex { return Vertex{Vec3{q[0], q[1], depth}, front} }
	bv := func(q [2]float32) Vertex { return Vertex{Vec3{q[0], q[1], -depth}, back} }
	return []Vertex{
		fv(a), fv(b), fv(c), fv(a), fv(c), fv(d),
		bv(b), bv(a), bv(d), bv(b), bv(d), bv(c),
	}
}

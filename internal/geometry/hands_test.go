package geometry

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestHandLine_CardinalAngles(t *testing.T) {
	center := Vec2{300, 300}
	const length float32 = 120

	tests := []struct {
		name  string
		angle float32
		tip   Vec2
	}{
		{"twelve o'clock points up", 0, Vec2{300, 180}},
		{"three o'clock points east", 90, Vec2{420, 300}},
		{"six o'clock points down", 180, Vec2{300, 420}},
		{"nine o'clock points west", 270, Vec2{180, 300}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, tip := HandLine(center, tt.angle, length)
			if base != center {
				t.Errorf("base = %v, want %v", base, center)
			}
			if dist(tip, tt.tip) > 1e-3 {
				t.Errorf("tip = %v, want %v", tip, tt.tip)
			}
		})
	}
}

func TestHandQuad_LengthAndThickness(t *testing.T) {
	center := Vec2{0, 0}
	verts := HandQuad(center, 0, 100, 8)
	if len(verts) != 6 {
		t.Fatalf("len(verts) = %d, want 6", len(verts))
	}
	// At angle 0: base edge straddles the center along x, tip edge at y=-100.
	baseL, baseR, tipR := verts[0], verts[1], verts[2]
	if baseL.X != -4 || baseR.X != 4 {
		t.Errorf("base edge = %v..%v, want x ±4", baseL, baseR)
	}
	if tipR.Y != -100 {
		t.Errorf("tip y = %v, want -100", tipR.Y)
	}
}

func TestHandQuad_ZeroThicknessDegenerate(t *testing.T) {
	verts := HandQuad(Vec2{50, 50}, 123, 80, 0)
	if len(verts) != 6 {
		t.Fatalf("len(verts) = %d, want 6", len(verts))
	}
	// Both long edges collapse onto the center line.
	if verts[0] != verts[1] {
		t.Errorf("base corners differ for zero thickness: %v vs %v", verts[0], verts[1])
	}
	if verts[2] != verts[5] {
		t.Errorf("tip corners differ for zero thickness: %v vs %v", verts[2], verts[5])
	}
}

func TestHandQuad3D_Extrusion(t *testing.T) {
	const depth float32 = 2
	verts := HandQuad3D(90, 200, 3, depth)
	if len(verts) != 12 {
		t.Fatalf("len(verts) = %d, want 12", len(verts))
	}
	for i, v := range verts {
		wantZ := depth
		wantN := Vec3{0, 0, 1}
		if i >= 6 {
			wantZ = -depth
			wantN = Vec3{0, 0, -1}
		}
		if v.Pos.Z != wantZ {
			t.Fatalf("vertex %d z = %v, want %v", i, v.Pos.Z, wantZ)
		}
		if v.Normal != wantN {
			t.Fatalf("vertex %d normal = %v, want %v", i, v.Normal, wantN)
		}
	}
	// Three o'clock in world space points along +X.
	var maxX float32
	for _, v := range verts {
		maxX = math32.Max(maxX, v.Pos.X)
	}
	if math32.Abs(maxX-200) > 1e-3 {
		t.Errorf("tip reach = %v, want 200", maxX)
	}
}

func TestHandQuad3D_ZeroThicknessDegenerate(t *testing.T) {
	verts := HandQuad3D(45, 100, 0, 2)
	if verts[0].Pos != verts[1].Pos {
		t.Errorf("base corners differ for zero thickness: %v vs %v", verts[0].Pos, verts[1].Pos)
	}
}

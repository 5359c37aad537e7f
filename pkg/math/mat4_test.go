package math

import (
	"testing"
)

// apply multiplies (x, y, z, 1) by m, the way the vertex shader does.
func apply(m Mat4, p [3]float32) [3]float32 {
	var out [3]float32
	for row := 0; row < 3; row++ {
		out[row] = m[row]*p[0] + m[4+row]*p[1] + m[8+row]*p[2] + m[12+row]
	}
	return out
}

func TestMulTranslations(t *testing.T) {
	m := Translate(1, 2, 3).Mul(Translate(4, 5, 6))

	if m[12] != 5 || m[13] != 7 || m[14] != 9 {
		t.Errorf("combined translation: got (%f, %f, %f), want (5, 7, 9)", m[12], m[13], m[14])
	}
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Errorf("combined translation lost its diagonal: %v", m)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestScreenOrthoCorners(t *testing.T) {
	tests := []struct {
		name string
		in   [3]float32
		want [3]float32
	}{
		{"top-left", [3]float32{0, 0, 0}, [3]float32{-1, 1, 0}},
		{"bottom-right", [3]float32{800, 600, 0}, [3]float32{1, -1, 0}},
		{"center", [3]float32{400, 300, 0}, [3]float32{0, 0, 0}},
	}

	m := ScreenOrtho(800, 600)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := apply(m, tt.in)
			for i := range got {
				if abs(got[i]-tt.want[i]) > 1e-5 {
					t.Errorf("ScreenOrtho(%v) = %v, want %v", tt.in, got, tt.want)
					break
				}
			}
		})
	}
}

func TestScreenOrthoWithOrigin(t *testing.T) {
	// A centred origin maps (0,0) to the middle of the viewport.
	m := ScreenOrtho(800, 600).Mul(Translate(400, 300, 0))
	got := apply(m, [3]float32{0, 0, 0})
	if abs(got[0]) > 1e-5 || abs(got[1]) > 1e-5 {
		t.Errorf("centred origin: got %v, want (0, 0)", got)
	}
}

func TestPtr(t *testing.T) {
	m := Translate(1, 2, 3)
	if p := m.Ptr(); *p != 1 {
		t.Errorf("Ptr should address element 0, got %v", *p)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

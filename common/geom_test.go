package common

import (
	"image/color"
	"math"
	"testing"
)

func TestRotatedExtents(t *testing.T) {
	tests := []struct {
		name  string
		w, h  float64
		deg   float64
		wantW float64
		wantH float64
	}{
		{"zero", 100, 20, 0, 100, 20},
		{"quarter", 100, 20, 90, 20, 100},
		{"half", 100, 20, 180, 100, 20},
		{"diagonal", 100, 20, 45, 120 * math.Sqrt2 / 2, 120 * math.Sqrt2 / 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, h := RotatedExtents(tc.w, tc.h, DegToRad(tc.deg))
			if math.Abs(w-tc.wantW) > 1e-9 || math.Abs(h-tc.wantH) > 1e-9 {
				t.Fatalf("expected %vx%v, got %vx%v", tc.wantW, tc.wantH, w, h)
			}
		})
	}
}

func TestPointInRotatedRect(t *testing.T) {
	// 100x20 bar centered on the origin.
	tests := []struct {
		name   string
		deg    float64
		px, py float64
		want   bool
	}{
		{"near_zero_accepts_anything", 0.5, 500, 500, true},
		{"rotated_corner_inside_shape_outside_unrotated_box", 45, 30, 30, true},
		{"inside_enclosing_box_outside_shape", 45, 40, -40, false},
		{"center", 30, 0, 0, true},
		{"past_the_end", 30, 60, 0, false},
		{"small_rotation_is_tested", 5, 0, 15, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PointInRotatedRect(tc.px, tc.py, 0, 0, 100, 20, DegToRad(tc.deg))
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}

	// the rotated-corner case really is outside the unrotated box
	if AABBFromCenter(0, 0, 100, 20).Contains(30, 30) {
		t.Fatalf("test point should lie outside the unrotated box")
	}
	if !RotatedAABB(0, 0, 100, 20, DegToRad(45)).Contains(40, -40) {
		t.Fatalf("test point should lie inside the rotated enclosing box")
	}
}

func TestAABB(t *testing.T) {
	a := AABB{X: 0, Y: 0, W: 10, H: 10}
	if !a.Overlaps(AABB{X: 5, Y: 5, W: 10, H: 10}) {
		t.Fatalf("expected overlap")
	}
	if a.Overlaps(AABB{X: 10, Y: 0, W: 10, H: 10}) {
		t.Fatalf("touching edges must not overlap")
	}
	if !a.Contains(10, 10) {
		t.Fatalf("Contains is inclusive")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "#4a4a4a", want: color.RGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 0xff}},
		{in: "0xff000080", want: color.RGBA{R: 0xff, A: 0x80}},
		{in: "12345", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseHexColor(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("expected %v, got %v (err=%v)", tc.want, got, err)
			}
		})
	}
}

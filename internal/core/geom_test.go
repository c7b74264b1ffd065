package core

import (
	"math"
	"testing"
)

func TestVec2Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"unit x", Vec2{1, 0}, Vec2{1, 0}},
		{"unit y", Vec2{0, -1}, Vec2{0, -1}},
		{"diagonal", Vec2{3, 4}, Vec2{0.6, 0.8}},
		{"zero vector", Vec2{0, 0}, Vec2{0, 0}},
		{"near zero", Vec2{0.001, 0.001}, Vec2{0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
				t.Errorf("Normalize() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestVec2NormalizeLength(t *testing.T) {
	v := Vec2{-0.6, -1}.Normalize()
	if math.Abs(v.Length()-1.0) > 1e-9 {
		t.Errorf("normalized length = %f, expected 1", v.Length())
	}
}

func TestVec2Scale(t *testing.T) {
	v := Vec2{0.6, -0.8}.Scale(420)
	if math.Abs(v.X-252) > 1e-9 || math.Abs(v.Y+336) > 1e-9 {
		t.Errorf("Scale() = %+v, expected {252 -336}", v)
	}
}

func TestCircleOverlaps(t *testing.T) {
	r := NewRect(100, 100, 80, 28)

	tests := []struct {
		name     string
		center   Vec2
		radius   float64
		expected bool
	}{
		{"center inside", Vec2{140, 114}, 10, true},
		{"touching left edge", Vec2{90, 114}, 10, true},
		{"just off left edge", Vec2{89, 114}, 10, false},
		{"touching top edge", Vec2{140, 90}, 10, true},
		{"grazing corner", Vec2{93, 93}, 10, true},
		{"off corner diagonal", Vec2{90, 90}, 10, false},
		{"far away", Vec2{0, 0}, 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := r.CircleOverlaps(tc.center, tc.radius)
			if got != tc.expected {
				t.Errorf("CircleOverlaps(%+v, %v) = %v, expected %v", tc.center, tc.radius, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %f, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %f, expected 25", r.Bottom())
	}
	if r.CenterX() != 15 || r.CenterY() != 17.5 {
		t.Errorf("Center = (%f, %f), expected (15, 17.5)", r.CenterX(), r.CenterY())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min is wrong")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max is wrong")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs is wrong")
	}
}

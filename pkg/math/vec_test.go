package math

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}

	if z := (Vec2{}).Normalize(); z != (Vec2{}) {
		t.Errorf("Vec2{}.Normalize() = %v, want zero", z)
	}
}

func TestVec2Rotate(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec2
		angle float64
		want  Vec2
	}{
		{"quarter turn", Vec2{1, 0}, math.Pi / 2, Vec2{0, 1}},
		{"half turn", Vec2{0, 2}, math.Pi, Vec2{0, -2}},
		{"negative", Vec2{1, 0}, -math.Pi / 2, Vec2{0, -1}},
		{"zero angle", Vec2{3, -4}, 0, Vec2{3, -4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Rotate(tt.angle)
			if got.Distance(tt.want) > 1e-5 {
				t.Errorf("Rotate(%v) = %v, want %v", tt.angle, got, tt.want)
			}
		})
	}
}

func TestVec2RotatePreservesLength(t *testing.T) {
	v := Vec2{0, -4}
	for i := 0; i < 100; i++ {
		v = v.Rotate(0.37)
	}
	if l := v.Length(); l < 3.999 || l > 4.001 {
		t.Errorf("length after 100 rotations = %v, want ~4", l)
	}
}

func TestVec2WithLength(t *testing.T) {
	got := Vec2{3, 4}.WithLength(10)
	if got.Distance(Vec2{6, 8}) > 1e-5 {
		t.Errorf("WithLength(10) = %v, want {6 8}", got)
	}
	if z := (Vec2{}).WithLength(5); z != (Vec2{}) {
		t.Errorf("zero WithLength = %v, want zero", z)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3NormalizeDegenerate(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Vec3{}.Normalize() = %v, want zero vector", got)
	}

	inf := float32(math.Inf(1))
	if got := (Vec3{inf, 0, 0}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize(inf) = %v, want zero vector", got)
	}
}

func TestVec3Array(t *testing.T) {
	v := Vec3{1, 2, 3}
	if got := Vec3FromArray(v.Array()); got != v {
		t.Errorf("Vec3FromArray(Array()) = %v, want %v", got, v)
	}
}

package math

import (
	"math"
	"testing"
)

func TestVec3Add(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	got := a.Add(b)
	want := Vec3{5, 7, 9}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3Sub(t *testing.T) {
	got := Vec3{4, 5, 6}.Sub(Vec3{1, 2, 3})
	want := Vec3{3, 3, 3}
	if got != want {
		t.Errorf("Vec3.Sub() = %v, want %v", got, want)
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

func TestVec3Length(t *testing.T) {
	got := Vec3{2, 3, 6}.Length()
	if got != 7 {
		t.Errorf("Vec3.Length() = %v, want 7", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{-1, -1, -1}.Normalize()
	if l := n.Length(); math.Abs(l-1) > 1e-12 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero Vec3.Normalize() = %v, want zero vector", z)
	}
}

func TestVec3WithZ(t *testing.T) {
	got := Vec3{-25, 0, 0.7}.WithZ(0)
	want := Vec3{-25, 0, 0}
	if got != want {
		t.Errorf("Vec3.WithZ() = %v, want %v", got, want)
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, -2, 3}
	b := Vec3{-1, 2, 0}
	if got, want := a.Min(b), (Vec3{-1, -2, 0}); got != want {
		t.Errorf("Vec3.Min() = %v, want %v", got, want)
	}
	if got, want := a.Max(b), (Vec3{1, 2, 3}); got != want {
		t.Errorf("Vec3.Max() = %v, want %v", got, want)
	}
}

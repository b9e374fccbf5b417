package types

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestVectorOps(t *testing.T) {
	a := XYZ(1, 2, 3)
	b := XYZ(4, 5, 6)

	if got := a.Add(b); got != XYZ(5, 7, 9) {
		t.Fatalf("expected a+b to be (5, 7, 9); got %v", got)
	}
	if got := b.Sub(a); got != XYZ(3, 3, 3) {
		t.Fatalf("expected b-a to be (3, 3, 3); got %v", got)
	}
	if got := a.Mul(2); got != XYZ(2, 4, 6) {
		t.Fatalf("expected 2a to be (2, 4, 6); got %v", got)
	}
	if got := a.MulVec(b); got != XYZ(4, 10, 18) {
		t.Fatalf("expected a*b to be (4, 10, 18); got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Fatalf("expected a.b to be 32; got %f", got)
	}
}

func TestNormalize(t *testing.T) {
	type spec struct {
		in  Vec3
		exp Vec3
	}
	specs := []spec{
		{XYZ(3, 0, 0), XYZ(1, 0, 0)},
		{XYZ(0, -2, 0), XYZ(0, -1, 0)},
		{XYZ(0, 0, 0), XYZ(0, 0, 0)},
	}

	for index, s := range specs {
		if got := s.in.Normalize(); got != s.exp {
			t.Fatalf("[spec %d] expected %v; got %v", index, s.exp, got)
		}
	}

	if l := XYZ(1, 2, 3).Normalize().Len(); math32.Abs(l-1) > 1e-6 {
		t.Fatalf("expected normalized vector to have unit length; got %f", l)
	}
}

func TestNearZero(t *testing.T) {
	type spec struct {
		in  Vec3
		exp bool
	}
	specs := []spec{
		{XYZ(0, 0, 0), true},
		{XYZ(1e-9, -1e-9, 5e-9), true},
		{XYZ(1e-9, 1e-7, 0), false},
		{XYZ(0, 0, -1), false},
	}

	for index, s := range specs {
		if got := s.in.NearZero(); got != s.exp {
			t.Fatalf("[spec %d] expected NearZero(%v) to be %t; got %t", index, s.in, s.exp, got)
		}
	}
}

func TestReflect(t *testing.T) {
	n := XYZ(0, 1, 0)

	if got := XYZ(0, -1, 0).Reflect(n); got != XYZ(0, 1, 0) {
		t.Fatalf("expected head-on reflection to reverse direction; got %v", got)
	}
	if got := XYZ(1, -1, 0).Reflect(n); got != XYZ(1, 1, 0) {
		t.Fatalf("expected (1, 1, 0); got %v", got)
	}
}

package math

import (
	"errors"
	"math"
	"testing"
)

func TestVec3_Normalize_UnitLength(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"unit x", NewVec3(1, 0, 0)},
		{"diagonal", NewVec3(1, 1, 1)},
		{"negative components", NewVec3(-3, 4, -12)},
		{"tiny", NewVec3(1e-8, -2e-8, 3e-8)},
		{"large", NewVec3(1e12, 2e12, -5e11)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, err := tt.v.Normalize()
			if err != nil {
				t.Fatalf("Normalize returned error: %v", err)
			}
			if math.Abs(unit.Length()-1.0) > 1e-12 {
				t.Errorf("Expected unit length, got %v", unit.Length())
			}
		})
	}
}

func TestVec3_Normalize_ZeroVector(t *testing.T) {
	_, err := Vec3{}.Normalize()
	if err == nil {
		t.Fatal("Expected error for zero vector, got none")
	}
	if !errors.Is(err, ErrDegenerateVector) {
		t.Errorf("Expected ErrDegenerateVector, got %v", err)
	}
}

func TestVec3_DotAndCross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	z := NewVec3(0, 0, 1)

	if got := x.Dot(y); got != 0 {
		t.Errorf("Expected orthogonal dot product 0, got %v", got)
	}
	if got := x.Cross(y); got != z {
		t.Errorf("Expected x cross y = z, got %v", got)
	}
	if got := y.Cross(x); got != z.Multiply(-1) {
		t.Errorf("Expected y cross x = -z, got %v", got)
	}
}

func TestVec3_IsNaN(t *testing.T) {
	if NewVec3(1, 2, 3).IsNaN() {
		t.Error("Finite vector reported as NaN")
	}
	if !NaNVec3().IsNaN() {
		t.Error("NaN vector not reported as NaN")
	}
	if !NewVec3(0, math.NaN(), 0).IsNaN() {
		t.Error("Vector with one NaN component not reported as NaN")
	}
}

func TestAngleBetween(t *testing.T) {
	tests := []struct {
		name     string
		v0, v1   Vec3
		expected float64
	}{
		{"parallel", NewVec3(1, 0, 0), NewVec3(5, 0, 0), 0},
		{"orthogonal", NewVec3(1, 0, 0), NewVec3(0, 2, 0), math.Pi / 2},
		{"opposite", NewVec3(0, 0, 1), NewVec3(0, 0, -3), math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AngleBetween(tt.v0, tt.v1)
			if err != nil {
				t.Fatalf("AngleBetween returned error: %v", err)
			}
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected angle %v, got %v", tt.expected, got)
			}
		})
	}

	if _, err := AngleBetween(Vec3{}, NewVec3(1, 0, 0)); !errors.Is(err, ErrDegenerateVector) {
		t.Errorf("Expected ErrDegenerateVector for zero input, got %v", err)
	}
}

func TestLinspace(t *testing.T) {
	vals := Linspace(-2, 2, 5)
	expected := []float64{-2, -1, 0, 1, 2}
	if len(vals) != len(expected) {
		t.Fatalf("Expected %d values, got %d", len(expected), len(vals))
	}
	for i := range expected {
		if math.Abs(vals[i]-expected[i]) > 1e-12 {
			t.Errorf("Index %d: expected %v, got %v", i, expected[i], vals[i])
		}
	}
}

func TestLinspace_Endpoints(t *testing.T) {
	vals := Linspace(-1.5, 3.25, 77)
	if vals[0] != -1.5 {
		t.Errorf("Expected first value -1.5, got %v", vals[0])
	}
	if math.Abs(vals[len(vals)-1]-3.25) > 1e-12 {
		t.Errorf("Expected last value 3.25, got %v", vals[len(vals)-1])
	}
}

package math

import (
	"errors"
	"math"
)

// ErrDegenerateVector is returned when a zero-length vector is used where a
// direction is required.
var ErrDegenerateVector = errors.New("cannot normalize a zero-length vector")

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// NaNVec3 returns a vector with all components NaN, used to mark grid
// points that carry no data.
func NaNVec3() Vec3 {
	nan := math.NaN()
	return Vec3{X: nan, Y: nan, Z: nan}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction. A zero-length
// vector has no direction and yields ErrDegenerateVector rather than NaN
// components.
func (v Vec3) Normalize() (Vec3, error) {
	length := v.Length()
	if length == 0 {
		return Vec3{}, ErrDegenerateVector
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}, nil
}

// IsNaN reports whether any component of the vector is NaN.
func (v Vec3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// AngleBetween returns the angle in radians between two vectors.
func AngleBetween(v0, v1 Vec3) (float64, error) {
	u0, err := v0.Normalize()
	if err != nil {
		return 0, err
	}
	u1, err := v1.Normalize()
	if err != nil {
		return 0, err
	}
	return math.Acos(u0.Dot(u1)), nil
}

// Linspace returns n evenly spaced values covering [lo, hi] inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	vals := make([]float64, n)
	if n == 1 {
		vals[0] = lo
		return vals
	}
	step := (hi - lo) / float64(n-1)
	for i := range vals {
		vals[i] = lo + float64(i)*step
	}
	return vals
}

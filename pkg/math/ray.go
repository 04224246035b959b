package math

import "fmt"

// Ray represents a parametric line through an origin toward a target point.
// The target is kept as given; Unit holds the normalized direction.
type Ray struct {
	Origin Vec3
	Target Vec3
	Unit   Vec3
}

// NewRay creates a ray from origin toward target. The two points must be
// distinct.
func NewRay(origin, target Vec3) (Ray, error) {
	unit, err := target.Subtract(origin).Normalize()
	if err != nil {
		return Ray{}, fmt.Errorf("ray direction: %w", err)
	}
	return Ray{Origin: origin, Target: target, Unit: unit}, nil
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Unit.Multiply(t))
}

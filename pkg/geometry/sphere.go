package geometry

import (
	"math"

	mathpkg "github.com/rfield/go-starspot-raytracer/pkg/math"
)

// Sphere is a plain opaque body with no surface model of its own.
type Sphere struct {
	center mathpkg.Vec3
	radius float64
}

// NewSphere creates a new sphere
func NewSphere(center mathpkg.Vec3, radius float64) *Sphere {
	return &Sphere{center: center, radius: radius}
}

// Center returns the sphere's center point.
func (s *Sphere) Center() mathpkg.Vec3 { return s.center }

// Radius returns the sphere's radius.
func (s *Sphere) Radius() float64 { return s.radius }

// Intersect returns the ray parameter of the nearest intersection between
// the ray's line and the body's sphere. It solves a·t² + b·t + c = 0 for
// the two crossing points and returns +Inf when the line misses entirely.
// The smaller root is returned when it is non-negative, otherwise the
// larger root — even when that root is also negative. Sign filtering is
// left to the caller's depth test, so an intersection behind the ray
// origin can still register as the nearest hit.
func Intersect(ray mathpkg.Ray, body Body) float64 {
	oc := ray.Origin.Subtract(body.Center())
	a := ray.Unit.Dot(ray.Unit)
	b := 2 * ray.Unit.Dot(oc)
	c := oc.Dot(oc) - body.Radius()*body.Radius()

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return math.Inf(1)
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 >= 0 {
		return t1
	}
	return t2
}

package geometry

import mathpkg "github.com/rfield/go-starspot-raytracer/pkg/math"

// Body is anything a scene can trace against as an opaque sphere.
type Body interface {
	Center() mathpkg.Vec3
	Radius() float64
}

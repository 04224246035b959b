package scene

import (
	"github.com/rfield/go-starspot-raytracer/pkg/geometry"
	mathpkg "github.com/rfield/go-starspot-raytracer/pkg/math"
	"github.com/rfield/go-starspot-raytracer/pkg/renderer"
)

// NewSpottedStarScene creates a single solar-like star at the origin with
// two dark spots and solar quadratic limb-darkening coefficients.
func NewSpottedStarScene(res int) (*renderer.Scene, error) {
	star, err := geometry.NewStar(mathpkg.NewVec3(0, 0, 0), 1.0, mathpkg.NewVec3(0, 1, 0), res)
	if err != nil {
		return nil, err
	}
	star.U1 = 0.47
	star.U2 = 0.23
	star.AddSpots(
		geometry.NewSpot(-25, 40, 12, 0.7),
		geometry.NewSpot(-60, -55, 8, 0.55),
	)
	InitSurface(star)

	return renderer.NewScene(res, star), nil
}

// NewBinaryScene creates two stars of unequal size, offset in x and depth,
// so the smaller companion partially occults the primary.
func NewBinaryScene(res int) (*renderer.Scene, error) {
	primary, err := geometry.NewStar(mathpkg.NewVec3(0, 0, 0), 1.0, mathpkg.NewVec3(0, 1, 0), res)
	if err != nil {
		return nil, err
	}
	primary.U1 = 0.47
	primary.U2 = 0.23
	primary.AddSpots(geometry.NewSpot(-30, 20, 15, 0.6))
	InitSurface(primary)

	companion, err := geometry.NewStar(mathpkg.NewVec3(0.8, 0.3, 1.5), 0.4, mathpkg.NewVec3(0, 1, 0), res)
	if err != nil {
		return nil, err
	}
	companion.U1 = 0.35
	companion.U2 = 0.18
	InitSurface(companion)

	return renderer.NewScene(res, primary, companion), nil
}

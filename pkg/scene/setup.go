// Package scene builds ready-to-trace scenes: it populates star surface
// grids with their initial viewing geometry and assembles bodies into
// renderer scenes.
package scene

import (
	"math"

	"github.com/rfield/go-starspot-raytracer/pkg/geometry"
	mathpkg "github.com/rfield/go-starspot-raytracer/pkg/math"
)

// InitSurface populates a star's position grid with the orthographic
// sampling of its visible hemisphere and fills in the limb-angle cosines,
// then derives the coordinate grids and the initial flux map. The star
// allocates its grids zeroed; nothing else populates them, so a star must
// pass through here once before Rotate or SetInclination mean anything.
//
// On-disk points get P = (x, y, sqrt(R² - x² - y²)) in the star's own
// frame and mu = z/R. Off-disk points are marked NaN and never carry data
// through later recomputations.
func InitSurface(s *geometry.Star) {
	r := s.Radius()
	for j, y := range s.Y {
		for i, x := range s.X {
			zz := r*r - x*x - y*y
			if zz < 0 {
				s.P[j][i] = mathpkg.NaNVec3()
				s.Mu[j][i] = math.NaN()
				continue
			}
			z := math.Sqrt(zz)
			s.P[j][i] = mathpkg.NewVec3(x, y, z)
			s.Mu[j][i] = z / r
		}
	}
	s.SyncCoordinates()
	s.CalcFlux()
	s.LimbDarken()
}

package geometry

import (
	"fmt"
	"math"

	mathpkg "github.com/rfield/go-starspot-raytracer/pkg/math"
)

// Star models a rotating, spotted stellar surface discretized on a square
// grid. Orientation state (spin axis, inclination, meridian) lives on the
// star itself; every orientation change recomputes the full surface grid.
//
// The position grid P is allocated zeroed and must be populated with the
// initial spherical sampling by the owning setup code before any rotation
// is meaningful (see scene.InitSurface). The grids R, Theta, Phi, Lat and
// Lon are always derived from P and are only valid together; use
// SyncCoordinates after any direct update of P.
type Star struct {
	center mathpkg.Vec3
	radius float64

	Axis        mathpkg.Vec3 // spin axis, unit length
	Inclination float64      // degrees between spin axis and line of sight
	Meridian    float64      // degrees, kept in (-180, 180]
	Res         int

	// Quadratic limb-darkening coefficients.
	U1, U2 float64

	// X and Y span [-radius, radius] across the grid columns and rows.
	X, Y []float64

	P  [][]mathpkg.Vec3 // Cartesian surface positions, star-centered frame
	N  [][]mathpkg.Vec3 // surface normals; allocated but not yet populated
	Mu [][]float64      // limb-angle cosine, supplied by the viewing setup

	R     [][]float64
	Theta [][]float64
	Phi   [][]float64
	Lat   [][]float64
	Lon   [][]float64

	Flux [][]float64

	Spots []Spot
}

// NewStar creates a star of the given radius centered at center, spinning
// about axis, with a res×res surface grid. Inclination defaults to 90
// degrees and the meridian to 0.
func NewStar(center mathpkg.Vec3, radius float64, axis mathpkg.Vec3, res int) (*Star, error) {
	if res <= 0 {
		return nil, fmt.Errorf("star resolution must be positive, got %d", res)
	}
	unitAxis, err := axis.Normalize()
	if err != nil {
		return nil, fmt.Errorf("spin axis: %w", err)
	}
	return &Star{
		center:      center,
		radius:      radius,
		Axis:        unitAxis,
		Inclination: 90,
		Meridian:    0,
		Res:         res,
		X:           mathpkg.Linspace(-radius, radius, res),
		Y:           mathpkg.Linspace(-radius, radius, res),
		P:           newVecGrid(res),
		N:           newVecGrid(res),
		Mu:          newGrid(res),
		R:           newGrid(res),
		Theta:       newGrid(res),
		Phi:         newGrid(res),
		Lat:         newGrid(res),
		Lon:         newGrid(res),
		Flux:        newGrid(res),
	}, nil
}

func newGrid(res int) [][]float64 {
	grid := make([][]float64, res)
	for j := range grid {
		grid[j] = make([]float64, res)
	}
	return grid
}

func newVecGrid(res int) [][]mathpkg.Vec3 {
	grid := make([][]mathpkg.Vec3, res)
	for j := range grid {
		grid[j] = make([]mathpkg.Vec3, res)
	}
	return grid
}

// Center returns the star's center point.
func (s *Star) Center() mathpkg.Vec3 { return s.center }

// Radius returns the star's radius.
func (s *Star) Radius() float64 { return s.radius }

// AddSpots appends surface features to the star. Order matters: where
// spots overlap, the spot added last wins.
func (s *Star) AddSpots(spots ...Spot) {
	s.Spots = append(s.Spots, spots...)
}

// SetSpots replaces the star's feature list.
func (s *Star) SetSpots(spots ...Spot) {
	s.Spots = spots
}

// SyncCoordinates rederives the spherical and geographic grids from the
// position grid P. The five derived grids are only meaningful together, so
// they are always recomputed as a unit. Off-disk points (NaN positions)
// stay NaN throughout.
func (s *Star) SyncCoordinates() {
	for j := 0; j < s.Res; j++ {
		for i := 0; i < s.Res; i++ {
			p := s.P[j][i]
			r := p.Length()
			theta := math.Acos(p.Z / r)
			phi := math.Atan2(p.X, p.Y)
			s.R[j][i] = r
			s.Theta[j][i] = theta
			s.Phi[j][i] = phi
			s.Lat[j][i] = mathpkg.Degrees(theta - math.Pi/2)
			s.Lon[j][i] = mathpkg.Degrees(phi)
		}
	}
}

// CalcFlux rebuilds the flux grid: 1 at every on-disk point, then each
// spot in list order overwrites the points within its angular radius with
// its contrast. Later spots win on overlap; there is no blending. Off-disk
// points (NaN radius) stay NaN.
func (s *Star) CalcFlux() {
	for j := 0; j < s.Res; j++ {
		for i := 0; i < s.Res; i++ {
			if math.IsNaN(s.R[j][i]) {
				s.Flux[j][i] = math.NaN()
				continue
			}
			flux := 1.0
			for _, spot := range s.Spots {
				dist := mathpkg.Haversine(s.Lat[j][i], s.Lon[j][i], spot.Lat, spot.Lon)
				if dist <= spot.Radius {
					flux = spot.Contrast
				}
			}
			s.Flux[j][i] = flux
		}
	}
}

// LimbDarken applies the quadratic limb-darkening law elementwise:
//
//	flux' = flux - u1·(flux - mu) - u2·(flux - mu)²
//
// NaN flux or mu values pass through as NaN, so off-disk points keep
// carrying no data.
func (s *Star) LimbDarken() {
	for j := 0; j < s.Res; j++ {
		for i := 0; i < s.Res; i++ {
			d := s.Flux[j][i] - s.Mu[j][i]
			s.Flux[j][i] -= s.U1*d + s.U2*d*d
		}
	}
}

// Rotate spins the star about its axis by angle degrees, then recomputes
// the derived coordinate grids, the flux map and the limb darkening. The
// recomputation is full, never incremental. Increasing the observed
// rotation angle corresponds to a negative basis rotation.
func (s *Star) Rotate(angle float64) {
	s.Meridian = normalizeMeridian(s.Meridian + angle)
	gamma := -mathpkg.Radians(angle)
	for j := 0; j < s.Res; j++ {
		for i := 0; i < s.Res; i++ {
			s.P[j][i] = mathpkg.RotateBasis(s.P[j][i], 0, 0, gamma)
		}
	}
	s.SyncCoordinates()
	s.CalcFlux()
	s.LimbDarken()
}

// SetMeridian rotates the star so its meridian lands on the given
// longitude in degrees.
func (s *Star) SetMeridian(lon float64) {
	s.Rotate(lon - s.Meridian)
}

// SetInclination tilts the star to the given inclination in degrees,
// recomputing the surface grids the same way Rotate does.
func (s *Star) SetInclination(inc float64) {
	alpha := -mathpkg.Radians(inc - s.Inclination)
	for j := 0; j < s.Res; j++ {
		for i := 0; i < s.Res; i++ {
			s.P[j][i] = mathpkg.RotateBasis(s.P[j][i], alpha, 0, 0)
		}
	}
	s.SyncCoordinates()
	s.CalcFlux()
	s.LimbDarken()
	s.Inclination = inc
}

// normalizeMeridian reduces a longitude in degrees into (-180, 180].
func normalizeMeridian(m float64) float64 {
	m = math.Mod(m, 360)
	if m < 0 {
		m += 360
	}
	if m > 180 {
		m -= 360
	}
	return m
}

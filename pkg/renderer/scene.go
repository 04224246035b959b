package renderer

import (
	"math"
	"runtime"
	"sync"

	"github.com/rfield/go-starspot-raytracer/pkg/geometry"
	mathpkg "github.com/rfield/go-starspot-raytracer/pkg/math"
)

// Scene composites sphere-shaped bodies into shared pixel grids by casting
// one orthographic ray per pixel and depth-testing the intersections.
// Extent is the symmetric x/y interval covering all bodies and Zmax the
// farthest body's center-z plus radius, which is where the camera plane
// sits. The output grids are fully rebuilt on every Trace call.
type Scene struct {
	Bodies []geometry.Body
	Res    int

	Extent [2]float64
	X, Y   []float64
	Zmax   float64

	Flux [][]float64
	Mu   [][]float64
	T    [][]float64
	// Body holds, per pixel, a non-owning reference to whichever body won
	// the depth test, or nil where no body was hit.
	Body [][]geometry.Body
}

// NewScene creates a scene over the given bodies with a res×res pixel grid.
func NewScene(res int, bodies ...geometry.Body) *Scene {
	s := &Scene{
		Bodies: bodies,
		Res:    res,
		Flux:   make([][]float64, res),
		Mu:     make([][]float64, res),
		T:      make([][]float64, res),
		Body:   make([][]geometry.Body, res),
	}
	for j := 0; j < res; j++ {
		s.Flux[j] = make([]float64, res)
		s.Mu[j] = make([]float64, res)
		s.T[j] = make([]float64, res)
		s.Body[j] = make([]geometry.Body, res)
	}
	s.resetGrids()
	s.updateExtent()
	return s
}

// Add appends bodies to the scene and recomputes the extent and camera
// plane.
func (s *Scene) Add(bodies ...geometry.Body) {
	s.Bodies = append(s.Bodies, bodies...)
	s.updateExtent()
}

// updateExtent recomputes the symmetric bounding interval over x and y
// from center ± radius of every body, and Zmax from the farthest
// center-z + radius. With no bodies the extent is (-1, 1) and Zmax +Inf
// by definition.
func (s *Scene) updateExtent() {
	if len(s.Bodies) == 0 {
		s.Extent = [2]float64{-1, 1}
		s.Zmax = math.Inf(1)
	} else {
		lo := math.Inf(1)
		hi := math.Inf(-1)
		zmax := math.Inf(-1)
		for _, b := range s.Bodies {
			c, r := b.Center(), b.Radius()
			lo = min(lo, c.X-r, c.Y-r)
			hi = max(hi, c.X+r, c.Y+r)
			zmax = max(zmax, c.Z+r)
		}
		s.Extent = [2]float64{lo, hi}
		s.Zmax = zmax
	}
	s.X = mathpkg.Linspace(s.Extent[0], s.Extent[1], s.Res)
	s.Y = mathpkg.Linspace(s.Extent[0], s.Extent[1], s.Res)
}

// resetGrids restores every output grid to its no-hit state.
func (s *Scene) resetGrids() {
	nan := math.NaN()
	inf := math.Inf(1)
	for j := 0; j < s.Res; j++ {
		for i := 0; i < s.Res; i++ {
			s.Flux[j][i] = nan
			s.Mu[j][i] = nan
			s.T[j][i] = inf
			s.Body[j][i] = nil
		}
	}
}

// Trace casts one ray per pixel from the camera plane straight down the
// negative z axis and records the nearest intersection per pixel. Rows are
// independent, so they are traced in parallel; each worker writes only its
// own rows.
func (s *Scene) Trace() {
	s.resetGrids()

	rows := make(chan int, s.Res)
	var wg sync.WaitGroup
	for w := 0; w < runtime.NumCPU(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				s.traceRow(j)
			}
		}()
	}
	for j := 0; j < s.Res; j++ {
		rows <- j
	}
	close(rows)
	wg.Wait()
}

// traceRow depth-tests every body against the orthographic ray of each
// pixel in row j. Intersect can report a negative parameter when both
// crossings lie behind the camera plane; the running-minimum comparison
// deliberately does not filter by sign, so such a crossing still registers
// when no forward hit exists.
func (s *Scene) traceRow(j int) {
	for i := 0; i < s.Res; i++ {
		origin := mathpkg.NewVec3(s.X[i], s.Y[j], s.Zmax)
		ray, err := mathpkg.NewRay(origin, mathpkg.NewVec3(s.X[i], s.Y[j], 0))
		if err != nil {
			continue
		}

		tMin := math.Inf(1)
		for _, body := range s.Bodies {
			t := geometry.Intersect(ray, body)
			if t >= tMin {
				continue
			}
			tMin = t

			p := ray.At(t)
			toObserver := ray.Origin.Subtract(p)
			outward := p.Subtract(body.Center())
			mu := toObserver.Dot(outward) / (toObserver.Length() * outward.Length())

			s.Body[j][i] = body
			s.T[j][i] = t
			s.Mu[j][i] = mu
			// The hit body's own surface flux is not sampled here; every
			// hit records unit flux.
			s.Flux[j][i] = 1
		}
	}
}

// HitCount returns the number of pixels whose ray hit a body.
func (s *Scene) HitCount() int {
	count := 0
	for j := 0; j < s.Res; j++ {
		for i := 0; i < s.Res; i++ {
			if !math.IsInf(s.T[j][i], 1) {
				count++
			}
		}
	}
	return count
}

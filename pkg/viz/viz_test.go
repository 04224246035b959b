package viz

import (
	"bytes"
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/rfield/go-starspot-raytracer/pkg/geometry"
	mathpkg "github.com/rfield/go-starspot-raytracer/pkg/math"
	"github.com/rfield/go-starspot-raytracer/pkg/renderer"
)

func tracedScene(t *testing.T) *renderer.Scene {
	t.Helper()
	sc := renderer.NewScene(40, geometry.NewSphere(mathpkg.NewVec3(0, 0, 0), 1))
	sc.Trace()
	return sc
}

func TestRender_KnownArrays(t *testing.T) {
	sc := tracedScene(t)

	for _, name := range Arrays() {
		t.Run(name, func(t *testing.T) {
			img, err := Render(sc, name)
			if err != nil {
				t.Fatalf("Render(%q) returned error: %v", name, err)
			}
			bounds := img.Bounds()
			if bounds.Dx() <= sc.Res || bounds.Dy() <= sc.Res {
				t.Errorf("Image %v too small for map plus margins", bounds)
			}
		})
	}
}

func TestRender_UnknownArray(t *testing.T) {
	sc := tracedScene(t)

	_, err := Render(sc, "albedo")
	if err == nil {
		t.Fatal("Expected error for unknown array, got none")
	}
	if !errors.Is(err, ErrUnknownArray) {
		t.Errorf("Expected ErrUnknownArray, got %v", err)
	}
}

func TestMapColor(t *testing.T) {
	lo, hi := 0.0, 1.0

	if got := mapColor(lo, lo, hi); got != (color.RGBA{R: 68, G: 1, B: 84, A: 255}) {
		t.Errorf("Expected first viridis anchor at the minimum, got %v", got)
	}
	if got := mapColor(hi, lo, hi); got != (color.RGBA{R: 253, G: 231, B: 37, A: 255}) {
		t.Errorf("Expected last viridis anchor at the maximum, got %v", got)
	}
	if got := mapColor(math.NaN(), lo, hi); got != noData {
		t.Errorf("Expected no-data shade for NaN, got %v", got)
	}
}

func TestGridRange(t *testing.T) {
	grid := [][]float64{
		{1, 2, math.NaN()},
		{math.Inf(1), -3, 0.5},
	}
	lo, hi := gridRange(grid)
	if lo != -3 || hi != 2 {
		t.Errorf("Expected range [-3, 2], got [%v, %v]", lo, hi)
	}

	empty := [][]float64{{math.NaN(), math.Inf(1)}}
	lo, hi = gridRange(empty)
	if lo != 0 || hi != 1 {
		t.Errorf("Expected fallback range [0, 1], got [%v, %v]", lo, hi)
	}
}

func TestEncode(t *testing.T) {
	sc := tracedScene(t)
	img, err := Render(sc, ArrayFlux)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	for _, format := range []string{"png", "bmp"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, img, format); err != nil {
				t.Fatalf("Encode(%s) returned error: %v", format, err)
			}
			if buf.Len() == 0 {
				t.Error("Expected encoded bytes, got none")
			}
		})
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img, "gif"); err == nil {
		t.Error("Expected error for unsupported format, got none")
	}
}

// Package viz renders scene output grids as color-mapped images with axis
// labels and a labeled color bar.
package viz

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/rfield/go-starspot-raytracer/pkg/renderer"
)

// ErrUnknownArray is returned when a grid name is not one of the arrays a
// scene exposes.
var ErrUnknownArray = errors.New("unknown scene array")

// Names of the scene grids Render accepts.
const (
	ArrayFlux = "flux"
	ArrayMu   = "mu"
	ArrayT    = "t"
)

// Arrays lists every grid name Render accepts.
func Arrays() []string {
	return []string{ArrayFlux, ArrayMu, ArrayT}
}

// Layout constants in pixels.
const (
	marginLeft   = 52
	marginRight  = 78
	marginTop    = 24
	marginBottom = 36
	barWidth     = 14
	barGap       = 10
)

// Render draws the named grid of a traced scene as a viridis color-mapped
// image with pixel axis labels and a color bar labeled with the array
// name. The grid's row 0 is drawn at the bottom. Pixels carrying no data
// (NaN or infinite values) are drawn in light gray.
func Render(sc *renderer.Scene, array string) (*image.RGBA, error) {
	var grid [][]float64
	switch array {
	case ArrayFlux:
		grid = sc.Flux
	case ArrayMu:
		grid = sc.Mu
	case ArrayT:
		grid = sc.T
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownArray, array)
	}

	res := sc.Res
	scale := 1
	if res < 320 {
		scale = (319 + res) / res
	}
	mapSize := res * scale

	width := marginLeft + mapSize + marginRight
	height := marginTop + mapSize + marginBottom
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	lo, hi := gridRange(grid)

	// Heatmap with row 0 at the bottom.
	for j := 0; j < res; j++ {
		for i := 0; i < res; i++ {
			c := mapColor(grid[j][i], lo, hi)
			x0 := marginLeft + i*scale
			y0 := marginTop + (res-1-j)*scale
			cell := image.Rect(x0, y0, x0+scale, y0+scale)
			draw.Draw(img, cell, image.NewUniform(c), image.Point{}, draw.Src)
		}
	}

	drawAxes(img, res, mapSize)
	drawColorBar(img, array, lo, hi, mapSize)

	return img, nil
}

// gridRange returns the min and max over the finite values of the grid,
// falling back to [0, 1] when no value is finite.
func gridRange(grid [][]float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, row := range grid {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	if lo > hi {
		return 0, 1
	}
	return lo, hi
}

// viridis color map anchors, evenly spaced over [0, 1].
var viridis = [][3]uint8{
	{68, 1, 84},
	{71, 44, 122},
	{59, 81, 139},
	{44, 113, 142},
	{33, 144, 141},
	{39, 173, 129},
	{92, 200, 99},
	{170, 220, 50},
	{253, 231, 37},
}

// noData is the background shade for NaN and infinite values.
var noData = color.RGBA{R: 222, G: 222, B: 222, A: 255}

// mapColor maps a value in [lo, hi] onto the viridis ramp.
func mapColor(v, lo, hi float64) color.RGBA {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return noData
	}
	t := 0.0
	if hi > lo {
		t = (v - lo) / (hi - lo)
	}
	t = min(max(t, 0), 1)

	pos := t * float64(len(viridis)-1)
	k := int(pos)
	if k >= len(viridis)-1 {
		k = len(viridis) - 2
	}
	f := pos - float64(k)
	a, b := viridis[k], viridis[k+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + f*(float64(y)-float64(x)))
	}
	return color.RGBA{R: lerp(a[0], b[0]), G: lerp(a[1], b[1]), B: lerp(a[2], b[2]), A: 255}
}

func drawAxes(img *image.RGBA, res, mapSize int) {
	// Tick labels at the pixel-coordinate corners.
	drawString(img, "0", marginLeft, marginTop+mapSize+14)
	last := fmt.Sprintf("%d", res-1)
	drawString(img, last, marginLeft+mapSize-7*len(last), marginTop+mapSize+14)
	drawString(img, "0", marginLeft-7*2, marginTop+mapSize)
	drawString(img, last, marginLeft-7*(len(last)+1), marginTop+10)

	drawString(img, "x (pixel)", marginLeft+mapSize/2-7*9/2, marginTop+mapSize+30)
	drawString(img, "y (pixel)", marginLeft-7*2, marginTop-8)
}

func drawColorBar(img *image.RGBA, label string, lo, hi float64, mapSize int) {
	x0 := marginLeft + mapSize + barGap
	for y := 0; y < mapSize; y++ {
		t := 1 - float64(y)/float64(mapSize-1)
		c := mapColor(lo+t*(hi-lo), lo, hi)
		bar := image.Rect(x0, marginTop+y, x0+barWidth, marginTop+y+1)
		draw.Draw(img, bar, image.NewUniform(c), image.Point{}, draw.Src)
	}
	drawString(img, fmt.Sprintf("%.3g", hi), x0+barWidth+4, marginTop+10)
	drawString(img, fmt.Sprintf("%.3g", lo), x0+barWidth+4, marginTop+mapSize)
	drawString(img, label, x0, marginTop+mapSize+14)
}

func drawString(img *image.RGBA, s string, x, y int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

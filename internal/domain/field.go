package domain

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Grid holds the coordinate axes of a square sampling window.
// Both axes are strictly increasing and symmetric about zero.
type Grid struct {
	X []float64
	Y []float64
}

// NewSquareGrid samples gridSize evenly spaced points over [-extent, extent]
// on each axis, endpoints included. Callers validate the inputs first.
func NewSquareGrid(gridSize int, extent float64) Grid {
	x := floats.Span(make([]float64, gridSize), -extent, extent)
	y := floats.Span(make([]float64, gridSize), -extent, extent)
	return Grid{X: x, Y: y}
}

// Size returns the number of samples per axis.
func (g Grid) Size() int {
	return len(g.X)
}

// Bounds returns [xmin, xmax, ymin, ymax].
func (g Grid) Bounds() [4]float64 {
	if len(g.X) == 0 || len(g.Y) == 0 {
		return [4]float64{}
	}
	return [4]float64{g.X[0], g.X[len(g.X)-1], g.Y[0], g.Y[len(g.Y)-1]}
}

// Nearest returns the (row, col) indices of the sample closest to (x, y).
// Row indexes Y, column indexes X.
func (g Grid) Nearest(x, y float64) (row, col int) {
	return nearestIndex(g.Y, y), nearestIndex(g.X, x)
}

func nearestIndex(axis []float64, v float64) int {
	if len(axis) == 0 {
		return -1
	}
	i := sort.SearchFloat64s(axis, v)
	switch {
	case i == 0:
		return 0
	case i == len(axis):
		return len(axis) - 1
	}
	if math.Abs(axis[i-1]-v) <= math.Abs(axis[i]-v) {
		return i - 1
	}
	return i
}

// Field is one computed vortex beam. Phase and Intensity are GridSize x GridSize,
// row i at Grid.Y[i] and column j at Grid.X[j].
type Field struct {
	Params    Params
	Grid      Grid
	Phase     *mat.Dense // arg(E), in (-pi, pi]
	Intensity *mat.Dense // |E|^2, non-negative
}

// Waist returns the characteristic radius the field was computed with.
func (f Field) Waist() float64 {
	return f.Params.Waist()
}

// PeakIntensity returns the largest intensity sample.
func (f Field) PeakIntensity() float64 {
	if f.Intensity == nil {
		return 0
	}
	return floats.Max(f.Intensity.RawMatrix().Data)
}

// CoreIntensity returns the intensity at the sample nearest the beam axis.
func (f Field) CoreIntensity() float64 {
	if f.Intensity == nil {
		return 0
	}
	r, c := f.Grid.Nearest(0, 0)
	return f.Intensity.At(r, c)
}

// NormalizedIntensity returns a copy of Intensity scaled so its maximum is 1.
func (f Field) NormalizedIntensity() *mat.Dense {
	var out mat.Dense
	out.CloneFrom(f.Intensity)
	if peak := f.PeakIntensity(); peak > 0 {
		out.Scale(1/peak, &out)
	}
	return &out
}

// PhaseMap is the bare geometric phase atan2(y, x) over a grid.
type PhaseMap struct {
	GridSize int
	Extent   float64
	Grid     Grid
	Phase    *mat.Dense
}

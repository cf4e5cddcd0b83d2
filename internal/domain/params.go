package domain

import (
	"fmt"
	"math"
)

// Defaults for the vortex figure.
const (
	DefaultCharge   = 1
	DefaultGridSize = 512
	DefaultExtent   = 10.0
)

// Defaults for the basic phase map figure.
const (
	DefaultPhaseGridSize = 400
	DefaultPhaseExtent   = 5.0
)

// waistRatio fixes the characteristic radius relative to the window half-size.
const waistRatio = 2.5

// Params parameterizes one vortex field computation.
type Params struct {
	// Charge is the topological charge l. Any integer is valid.
	Charge int `json:"charge"`

	// GridSize is the number of samples along each axis.
	GridSize int `json:"grid_size"`

	// Extent is the half-size of the square window; axes span [-Extent, Extent].
	Extent float64 `json:"extent"`
}

// DefaultParams returns the parameters used when nothing is configured.
func DefaultParams() Params {
	return Params{
		Charge:   DefaultCharge,
		GridSize: DefaultGridSize,
		Extent:   DefaultExtent,
	}
}

// Validate rejects sampling parameters for which the grid is undefined.
//
// A single-sample grid is rejected too: one point cannot sit at both
// -Extent and +Extent.
func (p Params) Validate() error {
	return ValidateSampling("params.validate", p.GridSize, p.Extent)
}

// Waist returns the characteristic beam radius w0.
func (p Params) Waist() float64 {
	return BeamWaist(p.Extent)
}

// BeamWaist returns w0 = extent / 2.5.
func BeamWaist(extent float64) float64 {
	return extent / waistRatio
}

// ValidateSampling checks grid size and extent for any square sampling window.
func ValidateSampling(op string, gridSize int, extent float64) error {
	switch {
	case gridSize <= 0:
		return InvalidParameter(op, "grid_size", fmt.Sprintf("grid size must be positive, got %d", gridSize))
	case gridSize == 1:
		return InvalidParameter(op, "grid_size", "grid size must be at least 2 so both axis endpoints are sampled")
	case math.IsNaN(extent) || math.IsInf(extent, 0):
		return InvalidParameter(op, "extent", fmt.Sprintf("extent must be finite, got %v", extent))
	case extent <= 0:
		return InvalidParameter(op, "extent", fmt.Sprintf("extent must be positive, got %g", extent))
	}
	return nil
}

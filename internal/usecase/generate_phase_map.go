package usecase

import (
	"context"
	"math"
	"runtime"

	"gonum.org/v1/gonum/mat"

	"github.com/Calebjackson-photonics/structured-light-education/internal/domain"
)

// GeneratePhaseMap samples the bare azimuthal phase atan2(y, x): the single
// winding that every vortex of charge l repeats l times.
type GeneratePhaseMap struct {
	workers int
}

// NewGeneratePhaseMap uses runtime.NumCPU() workers when workers < 1.
func NewGeneratePhaseMap(workers int) *GeneratePhaseMap {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &GeneratePhaseMap{workers: workers}
}

func (uc *GeneratePhaseMap) Execute(ctx context.Context, gridSize int, extent float64) (domain.PhaseMap, error) {
	if err := domain.ValidateSampling("usecase.generate_phase_map", gridSize, extent); err != nil {
		return domain.PhaseMap{}, err
	}

	n := gridSize
	grid := domain.NewSquareGrid(n, extent)
	phase := make([]float64, n*n)

	err := forEachRow(ctx, n, uc.workers, func(i int) {
		row := phase[i*n : (i+1)*n]
		y := grid.Y[i]
		for j, x := range grid.X {
			row[j] = math.Atan2(y, x)
		}
	})
	if err != nil {
		return domain.PhaseMap{}, err
	}

	return domain.PhaseMap{
		GridSize: n,
		Extent:   extent,
		Grid:     grid,
		Phase:    mat.NewDense(n, n, phase),
	}, nil
}

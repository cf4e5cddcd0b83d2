package usecase

import (
	"context"
	"log/slog"
	"math"
	"math/cmplx"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/Calebjackson-photonics/structured-light-education/internal/domain"
)

// GenerateField computes the phase and intensity of a synthetic vortex beam.
//
// Every grid cell depends only on its own coordinates, so rows are computed
// concurrently; the output is identical for any worker count.
type GenerateField struct {
	workers int
	logger  *slog.Logger
}

type GenerateOption func(*GenerateField)

// WithWorkers bounds the number of rows computed concurrently.
// Values below 1 fall back to runtime.NumCPU().
func WithWorkers(n int) GenerateOption {
	return func(uc *GenerateField) {
		if n > 0 {
			uc.workers = n
		}
	}
}

func WithLogger(l *slog.Logger) GenerateOption {
	return func(uc *GenerateField) {
		if l != nil {
			uc.logger = l
		}
	}
}

func NewGenerateField(opts ...GenerateOption) *GenerateField {
	uc := &GenerateField{
		workers: runtime.NumCPU(),
		logger:  discardLogger(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Generate is the context-free form of GenerateField.Execute with default workers.
func Generate(p domain.Params) (domain.Field, error) {
	return NewGenerateField().Execute(context.Background(), p)
}

// Execute validates p and evaluates
//
//	E(x, y) = (r/w0)^|l| * exp(-(r/w0)^2) * exp(i*l*theta),  w0 = extent/2.5
//
// over the square grid, returning arg(E) and |E|^2. Invalid parameters fail
// before any allocation.
func (uc *GenerateField) Execute(ctx context.Context, p domain.Params) (domain.Field, error) {
	if err := domain.ValidateSampling("usecase.generate_field", p.GridSize, p.Extent); err != nil {
		return domain.Field{}, err
	}

	n := p.GridSize
	grid := domain.NewSquareGrid(n, p.Extent)
	phase := make([]float64, n*n)
	intensity := make([]float64, n*n)
	w0 := p.Waist()

	err := forEachRow(ctx, n, uc.workers, func(i int) {
		lo, hi := i*n, (i+1)*n
		vortexRow(p.Charge, w0, grid.X, grid.Y[i], phase[lo:hi], intensity[lo:hi])
	})
	if err != nil {
		return domain.Field{}, err
	}

	field := domain.Field{
		Params:    p,
		Grid:      grid,
		Phase:     mat.NewDense(n, n, phase),
		Intensity: mat.NewDense(n, n, intensity),
	}

	uc.logger.Debug("field.generated",
		"charge", p.Charge,
		"grid", n,
		"extent", p.Extent,
		"w0", w0,
		"peak_intensity", field.PeakIntensity(),
	)
	return field, nil
}

// vortexRow fills one row of the phase and intensity maps at height y.
func vortexRow(l int, w0 float64, xs []float64, y float64, phase, intensity []float64) {
	order := math.Abs(float64(l))
	charge := float64(l)
	for j, x := range xs {
		rho := math.Sqrt(x*x+y*y) / w0
		theta := math.Atan2(y, x)

		// math.Pow(0, 0) == 1, so l == 0 reduces to a plain Gaussian.
		amp := math.Pow(rho, order) * math.Exp(-rho*rho)
		e := complex(amp, 0) * cmplx.Exp(complex(0, charge*theta))

		phase[j] = principalPhase(cmplx.Phase(e))
		intensity[j] = real(e)*real(e) + imag(e)*imag(e)
	}
}

// principalPhase folds -pi onto pi so phases stay in (-pi, pi].
func principalPhase(a float64) float64 {
	if a == -math.Pi {
		return math.Pi
	}
	return a
}

// forEachRow runs fn for every row index in [0, rows) on at most workers goroutines.
func forEachRow(ctx context.Context, rows, workers int, fn func(i int)) error {
	if workers < 1 {
		workers = 1
	}
	if workers > rows {
		workers = rows
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < rows; i++ {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

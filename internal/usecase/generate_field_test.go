package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/Calebjackson-photonics/structured-light-education/internal/domain"
)

// wrapped returns a-b folded into [-pi, pi].
func wrapped(a, b float64) float64 {
	return math.Remainder(a-b, 2*math.Pi)
}

func mustGenerate(t *testing.T, p domain.Params, opts ...GenerateOption) domain.Field {
	t.Helper()
	f, err := NewGenerateField(opts...).Execute(context.Background(), p)
	if err != nil {
		t.Fatalf("generate %+v: %v", p, err)
	}
	return f
}

func TestGenerate_ExampleScenario(t *testing.T) {
	f, err := Generate(domain.Params{Charge: 2, GridSize: 5, Extent: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float64{-4, -2, 0, 2, 4}
	opt := cmpopts.EquateApprox(0, 1e-12)
	if diff := cmp.Diff(want, f.Grid.X, opt); diff != "" {
		t.Fatalf("x axis mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, f.Grid.Y, opt); diff != "" {
		t.Fatalf("y axis mismatch (-want +got):\n%s", diff)
	}

	if got := f.Intensity.At(2, 2); got != 0 {
		t.Fatalf("intensity at origin = %v, want 0", got)
	}
	if got := f.Phase.At(2, 4); got != 0 {
		t.Fatalf("phase at (4, 0) = %v, want 0", got)
	}
	if got := f.Waist(); got != 1.6 {
		t.Fatalf("w0 = %v, want 1.6", got)
	}
}

func TestGenerate_AxesSpanExtent(t *testing.T) {
	for _, n := range []int{2, 3, 10, 257} {
		f := mustGenerate(t, domain.Params{Charge: 1, GridSize: n, Extent: 7.5})

		for name, axis := range map[string][]float64{"x": f.Grid.X, "y": f.Grid.Y} {
			if len(axis) != n {
				t.Fatalf("n=%d %s: len %d", n, name, len(axis))
			}
			if math.Abs(axis[0]+7.5) > 1e-12 || math.Abs(axis[n-1]-7.5) > 1e-12 {
				t.Fatalf("n=%d %s: endpoints %v, %v", n, name, axis[0], axis[n-1])
			}
			for i := 1; i < n; i++ {
				if axis[i] <= axis[i-1] {
					t.Fatalf("n=%d %s: not strictly increasing at %d", n, name, i)
				}
			}
		}

		r, c := f.Phase.Dims()
		if r != n || c != n {
			t.Fatalf("n=%d: phase dims %dx%d", n, r, c)
		}
		r, c = f.Intensity.Dims()
		if r != n || c != n {
			t.Fatalf("n=%d: intensity dims %dx%d", n, r, c)
		}
	}
}

func TestGenerate_ZeroChargeIsGaussian(t *testing.T) {
	p := domain.Params{Charge: 0, GridSize: 41, Extent: 10}
	f := mustGenerate(t, p)
	w0 := p.Waist()

	for i, y := range f.Grid.Y {
		for j, x := range f.Grid.X {
			if ph := f.Phase.At(i, j); ph != 0 {
				t.Fatalf("phase(%d,%d) = %v, want 0", i, j, ph)
			}
			rr := (x*x + y*y) / (w0 * w0)
			want := math.Exp(-2 * rr)
			if got := f.Intensity.At(i, j); math.Abs(got-want) > 1e-12 {
				t.Fatalf("intensity(%d,%d) = %v, want %v", i, j, got, want)
			}
		}
	}

	if f.CoreIntensity() != 1 || f.PeakIntensity() != 1 {
		t.Fatalf("expected Gaussian peak 1 at the origin, core=%v peak=%v", f.CoreIntensity(), f.PeakIntensity())
	}
}

func TestGenerate_DarkCore(t *testing.T) {
	for _, l := range []int{1, -1, 2, 3, -5, 12} {
		f := mustGenerate(t, domain.Params{Charge: l, GridSize: 101, Extent: 10})
		if got := f.CoreIntensity(); got != 0 {
			t.Errorf("l=%d: core intensity %v, want 0", l, got)
		}
		if f.PeakIntensity() <= 0 {
			t.Errorf("l=%d: expected a bright ring", l)
		}
	}
}

func TestGenerate_PhaseRangeAndFiniteness(t *testing.T) {
	for _, l := range []int{-7, -1, 1, 4, 40} {
		f := mustGenerate(t, domain.Params{Charge: l, GridSize: 64, Extent: 3})
		for k, ph := range f.Phase.RawMatrix().Data {
			if !(ph > -math.Pi && ph <= math.Pi) {
				t.Fatalf("l=%d: phase[%d] = %v out of (-pi, pi]", l, k, ph)
			}
		}
		for k, v := range f.Intensity.RawMatrix().Data {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				t.Fatalf("l=%d: intensity[%d] = %v", l, k, v)
			}
		}
	}
}

func TestGenerate_PointSymmetry(t *testing.T) {
	const n = 64 // even: no sample sits on the singularity
	for _, l := range []int{1, 2, 3, -2} {
		f := mustGenerate(t, domain.Params{Charge: l, GridSize: n, Extent: 3})
		shift := float64(l) * math.Pi

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				a := f.Phase.At(i, j)
				b := f.Phase.At(n-1-i, n-1-j)
				if d := wrapped(b-a, shift); math.Abs(d) > 1e-9 {
					t.Fatalf("l=%d (%d,%d): phase(-x,-y)-phase(x,y) off by %v", l, i, j, d)
				}
			}
		}
	}
}

func TestGenerate_ChargeInversion(t *testing.T) {
	p := domain.Params{Charge: 3, GridSize: 80, Extent: 6}
	pos := mustGenerate(t, p)
	p.Charge = -3
	neg := mustGenerate(t, p)

	a := pos.Phase.RawMatrix().Data
	b := neg.Phase.RawMatrix().Data
	for k := range a {
		if d := wrapped(a[k], -b[k]); math.Abs(d) > 1e-12 {
			t.Fatalf("phase[%d]: %v vs %v", k, a[k], b[k])
		}
	}

	opt := cmpopts.EquateApprox(1e-12, 1e-15)
	if diff := cmp.Diff(pos.Intensity.RawMatrix().Data, neg.Intensity.RawMatrix().Data, opt); diff != "" {
		t.Fatalf("intensity differs between l and -l:\n%s", diff)
	}
}

func TestGenerate_DeterministicAcrossWorkers(t *testing.T) {
	p := domain.Params{Charge: -2, GridSize: 97, Extent: 2.5}
	serial := mustGenerate(t, p, WithWorkers(1))
	parallel := mustGenerate(t, p, WithWorkers(7))
	again := mustGenerate(t, p, WithWorkers(7))

	for _, other := range []domain.Field{parallel, again} {
		if diff := cmp.Diff(serial.Phase.RawMatrix().Data, other.Phase.RawMatrix().Data); diff != "" {
			t.Fatalf("phase not deterministic:\n%s", diff)
		}
		if diff := cmp.Diff(serial.Intensity.RawMatrix().Data, other.Intensity.RawMatrix().Data); diff != "" {
			t.Fatalf("intensity not deterministic:\n%s", diff)
		}
	}
}

func TestGenerate_RejectsInvalidParameters(t *testing.T) {
	cases := []struct {
		name   string
		params domain.Params
	}{
		{"zero grid", domain.Params{Charge: 1, GridSize: 0, Extent: 10}},
		{"negative grid", domain.Params{Charge: 1, GridSize: -3, Extent: 10}},
		{"single sample", domain.Params{Charge: 1, GridSize: 1, Extent: 10}},
		{"zero extent", domain.Params{Charge: 1, GridSize: 8, Extent: 0}},
		{"negative extent", domain.Params{Charge: 1, GridSize: 8, Extent: -1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := Generate(c.params)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !domain.IsKind(err, domain.KindInvalidParameter) {
				t.Fatalf("expected KindInvalidParameter, got %v", err)
			}
			if f.Phase != nil || f.Intensity != nil || f.Grid.X != nil {
				t.Fatalf("expected no partial output")
			}
		})
	}
}

func TestGenerate_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGenerateField(WithWorkers(2)).Execute(ctx, domain.Params{Charge: 1, GridSize: 32, Extent: 1})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

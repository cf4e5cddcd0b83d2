package render

import (
	"image"
	"image/color"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/Calebjackson-photonics/structured-light-education/internal/domain"
	"github.com/Calebjackson-photonics/structured-light-education/internal/usecase"
)

func newRenderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()
	r, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func near(a, b color.Color, tol int) bool {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	d := func(x, y uint32) int {
		v := int(x>>8) - int(y>>8)
		if v < 0 {
			return -v
		}
		return v
	}
	return d(ar, br) <= tol && d(ag, bg) <= tol && d(ab, bb) <= tol
}

func TestRenderVortexDimensions(t *testing.T) {
	field, err := usecase.Generate(domain.Params{Charge: 1, GridSize: 64, Extent: 10})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	img, err := newRenderer(t).RenderVortex(field)
	if err != nil {
		t.Fatalf("RenderVortex: %v", err)
	}
	if b := img.Bounds(); b.Dx() != vortexWidth || b.Dy() != vortexHeight {
		t.Fatalf("unexpected size %v", b)
	}

	hi, err := newRenderer(t, WithScale(2)).RenderVortex(field)
	if err != nil {
		t.Fatalf("RenderVortex scaled: %v", err)
	}
	if b := hi.Bounds(); b.Dx() != 2*vortexWidth || b.Dy() != 2*vortexHeight {
		t.Fatalf("unexpected scaled size %v", b)
	}
}

func TestRenderVortexPaintsDarkCorners(t *testing.T) {
	field, err := usecase.Generate(domain.Params{Charge: 1, GridSize: 64, Extent: 10})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	img, err := newRenderer(t).RenderVortex(field)
	if err != nil {
		t.Fatalf("RenderVortex: %v", err)
	}

	// Far from the ring the normalized intensity is ~0, the low end of viridis.
	x0 := vortexPanelLeft + vortexPanelPitch + 10
	y0 := vortexPanelTop + 10
	if got := img.At(x0, y0); !near(got, ViridisMap(0), 12) {
		t.Fatalf("intensity corner pixel %v, want ~%v", got, ViridisMap(0))
	}

	// Background stays white outside the panels.
	if got := img.At(5, vortexHeight-5); !near(got, color.White, 2) {
		t.Fatalf("background pixel %v, want white", got)
	}
}

func TestRenderPhaseMap(t *testing.T) {
	pm, err := usecase.NewGeneratePhaseMap(2).Execute(t.Context(), 40, 5)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	img, err := newRenderer(t).RenderPhaseMap(pm)
	if err != nil {
		t.Fatalf("RenderPhaseMap: %v", err)
	}
	if b := img.Bounds(); b.Dx() != phaseWidth || b.Dy() != phaseHeight {
		t.Fatalf("unexpected size %v", b)
	}

	// Just right of center along +x the phase is ~0: the middle of the cyclic map.
	x := phasePanelLeft + phasePanelSide*3/4
	y := phasePanelTop + phasePanelSide/2 - 2
	if got := img.At(x, y); !near(got, TwilightMap(0.5), 40) {
		t.Fatalf("phase pixel %v, want ~%v", got, TwilightMap(0.5))
	}
}

func TestRenderRejectsEmptyInput(t *testing.T) {
	r := newRenderer(t)
	if _, err := r.RenderVortex(domain.Field{}); !domain.IsKind(err, domain.KindRender) {
		t.Fatalf("expected render error, got %v", err)
	}
	if _, err := r.RenderPhaseMap(domain.PhaseMap{}); !domain.IsKind(err, domain.KindRender) {
		t.Fatalf("expected render error, got %v", err)
	}
}

func TestHeatmapOriginLower(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{
		0, 0, // row 0: lowest y
		1, 1,
	})
	img := heatmap(m, 0, 1, ViridisMap)

	if got := img.RGBAAt(0, 1); got != ViridisMap(0) {
		t.Fatalf("bottom row = %v, want %v", got, ViridisMap(0))
	}
	if got := img.RGBAAt(1, 0); got != ViridisMap(1) {
		t.Fatalf("top row = %v, want %v", got, ViridisMap(1))
	}
}

func TestColorbarRampsUpward(t *testing.T) {
	bar := colorbar(16, ViridisMap)
	if got := bar.RGBAAt(0, 15); got != ViridisMap(0) {
		t.Fatalf("bottom = %v, want %v", got, ViridisMap(0))
	}
	if got := bar.RGBAAt(0, 0); got != ViridisMap(1) {
		t.Fatalf("top = %v, want %v", got, ViridisMap(1))
	}
}

func TestRotateCCW(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	a := color.RGBA{R: 255, A: 255}
	b := color.RGBA{B: 255, A: 255}
	src.SetRGBA(0, 0, a)
	src.SetRGBA(1, 0, b)

	dst := rotateCCW(src)
	if dst.Bounds().Dx() != 1 || dst.Bounds().Dy() != 2 {
		t.Fatalf("unexpected bounds %v", dst.Bounds())
	}
	if dst.RGBAAt(0, 0) != b || dst.RGBAAt(0, 1) != a {
		t.Fatalf("expected text to read bottom-to-top")
	}
}

func TestTickLabel(t *testing.T) {
	cases := map[float64]string{
		-10:      "-10",
		0:        "0",
		1e-17:    "0",
		3.14159:  "3.14",
		-3.14159: "-3.14",
		0.5:      "0.5",
	}
	for in, want := range cases {
		if got := tickLabel(in); got != want {
			t.Errorf("tickLabel(%v) = %q, want %q", in, got, want)
		}
	}
}

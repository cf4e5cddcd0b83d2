// Package render draws phase and intensity maps into labeled PNG-ready figures
// using the gg 2D graphics library.
package render

import (
	"fmt"
	"image"
	"log/slog"
	"math"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"gonum.org/v1/gonum/mat"

	"github.com/Calebjackson-photonics/structured-light-education/internal/domain"
	"github.com/Calebjackson-photonics/structured-light-education/internal/ports"
)

// Figure titles and labels.
const (
	vortexTitle     = "Simple Optical Vortex (Textbook OAM Demo)"
	phaseBasicTitle = "Basic Optical Phase Map (arctan2(y, x))"
	axisLabelX      = "x (arb. units)"
	axisLabelY      = "y (arb. units)"
	phaseBarLabel   = "phase [rad]"
	intensityLabel  = "normalized intensity"
	phaseUnitsLabel = "Phase (radians)"
)

// Renderer draws figures. It is safe to reuse across figures but not for
// concurrent use.
type Renderer struct {
	fonts      *text.FontSource
	scale      float64
	phaseCmap  Colormap
	basicCmap  Colormap
	intensCmap Colormap
	logger     *slog.Logger
}

type Option func(*Renderer)

// WithScale multiplies every figure dimension, e.g. 2 for high-DPI output.
func WithScale(s float64) Option {
	return func(r *Renderer) {
		if s > 0 && !math.IsInf(s, 0) {
			r.scale = s
		}
	}
}

// WithPhaseColormap sets the colormap of the vortex phase panel.
func WithPhaseColormap(c Colormap) Option {
	return func(r *Renderer) {
		if c != nil {
			r.phaseCmap = c
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

var _ ports.FigureRenderer = (*Renderer)(nil)

// New loads the embedded Go Regular font and applies opts.
func New(opts ...Option) (*Renderer, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, &domain.OpError{Op: "render.load_font", Kind: domain.KindRender, Err: err}
	}

	r := &Renderer{
		fonts:      src,
		scale:      1,
		phaseCmap:  ViridisMap,
		basicCmap:  TwilightMap,
		intensCmap: ViridisMap,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// RenderVortex draws phase and normalized intensity side by side.
func (r *Renderer) RenderVortex(field domain.Field) (image.Image, error) {
	if field.Phase == nil || field.Intensity == nil || field.Grid.Size() < 2 {
		return nil, &domain.OpError{
			Op:   "render.vortex",
			Kind: domain.KindRender,
			Err:  fmt.Errorf("field has no samples: %w", domain.ErrRender),
		}
	}

	l := field.Params.Charge
	fig := r.newFigure(vortexWidth, vortexHeight)
	fig.title(vortexTitle)

	fig.panel(panelSpec{
		left:   vortexPanelLeft,
		top:    vortexPanelTop,
		side:   vortexPanelSide,
		title:  fmt.Sprintf("Phase, l = %d", l),
		data:   field.Phase,
		bounds: field.Grid.Bounds(),
		lo:     -math.Pi,
		hi:     math.Pi,
		cmap:   r.phaseCmap,
		bar:    phaseBarLabel,
		axes:   true,
	})
	fig.panel(panelSpec{
		left:   vortexPanelLeft + vortexPanelPitch,
		top:    vortexPanelTop,
		side:   vortexPanelSide,
		title:  fmt.Sprintf("Intensity, l = %d", l),
		data:   field.NormalizedIntensity(),
		bounds: field.Grid.Bounds(),
		lo:     0,
		hi:     1,
		cmap:   r.intensCmap,
		bar:    intensityLabel,
		axes:   true,
	})

	r.logger.Debug("render.vortex", "charge", l, "grid", field.Grid.Size(), "width", fig.dc.Width(), "height", fig.dc.Height())
	return fig.dc.Image(), nil
}

// RenderPhaseMap draws the bare atan2 phase with a cyclic colormap and no axes.
func (r *Renderer) RenderPhaseMap(pm domain.PhaseMap) (image.Image, error) {
	if pm.Phase == nil || pm.Grid.Size() < 2 {
		return nil, &domain.OpError{
			Op:   "render.phase_map",
			Kind: domain.KindRender,
			Err:  fmt.Errorf("phase map has no samples: %w", domain.ErrRender),
		}
	}

	fig := r.newFigure(phaseWidth, phaseHeight)
	fig.title(phaseBasicTitle)
	fig.panel(panelSpec{
		left:   phasePanelLeft,
		top:    phasePanelTop,
		side:   phasePanelSide,
		data:   pm.Phase,
		bounds: pm.Grid.Bounds(),
		lo:     -math.Pi,
		hi:     math.Pi,
		cmap:   r.basicCmap,
		bar:    phaseUnitsLabel,
	})

	r.logger.Debug("render.phase_map", "grid", pm.Grid.Size())
	return fig.dc.Image(), nil
}

// heatmap converts m into an image with row 0 at the bottom (origin lower).
func heatmap(m *mat.Dense, lo, hi float64, cmap Colormap) *image.RGBA {
	rows, cols := m.Dims()
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	span := hi - lo
	for i := 0; i < rows; i++ {
		y := rows - 1 - i
		for j := 0; j < cols; j++ {
			t := 0.0
			if span > 0 {
				t = (m.At(i, j) - lo) / span
			}
			img.SetRGBA(j, y, cmap(t))
		}
	}
	return img
}

// colorbar is a 1-pixel wide vertical ramp, low values at the bottom.
func colorbar(steps int, cmap Colormap) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, steps))
	for k := 0; k < steps; k++ {
		img.SetRGBA(0, steps-1-k, cmap(float64(k)/float64(steps-1)))
	}
	return img
}

// rotateCCW turns src a quarter turn counter-clockwise, for vertical labels.
func rotateCCW(src image.Image) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(y, w-1-x, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

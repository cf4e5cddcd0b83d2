package usecase

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/Calebjackson-photonics/structured-light-education/internal/domain"
	"github.com/Calebjackson-photonics/structured-light-education/internal/ports"
)

// RenderFigure generates a field, renders it and hands the figure to the
// configured store and viewer. Either collaborator may be nil.
type RenderFigure struct {
	fields   *GenerateField
	phases   *GeneratePhaseMap
	renderer ports.FigureRenderer
	store    ports.FigureStore
	viewer   ports.Viewer
	now      func() time.Time
}

type RenderOption func(*RenderFigure)

func WithStore(s ports.FigureStore) RenderOption {
	return func(uc *RenderFigure) { uc.store = s }
}

func WithViewer(v ports.Viewer) RenderOption {
	return func(uc *RenderFigure) { uc.viewer = v }
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) RenderOption {
	return func(uc *RenderFigure) {
		if now != nil {
			uc.now = now
		}
	}
}

func NewRenderFigure(fields *GenerateField, phases *GeneratePhaseMap, r ports.FigureRenderer, opts ...RenderOption) *RenderFigure {
	uc := &RenderFigure{
		fields:   fields,
		phases:   phases,
		renderer: r,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Vortex computes the OAM field for p and publishes its figure under name.
// Nothing is rendered when p is invalid.
func (uc *RenderFigure) Vortex(ctx context.Context, p domain.Params, name string) (domain.FigureReport, error) {
	report := domain.FigureReport{
		Kind:      domain.FigureVortex,
		Charge:    p.Charge,
		GridSize:  p.GridSize,
		Extent:    p.Extent,
		StartedAt: uc.now(),
	}

	field, err := uc.fields.Execute(ctx, p)
	if err != nil {
		return report, err
	}
	report.Waist = field.Waist()
	report.PeakIntensity = field.PeakIntensity()
	report.CoreIntensity = field.CoreIntensity()

	img, err := uc.renderer.RenderVortex(field)
	if err != nil {
		return report, err
	}

	title := fmt.Sprintf("Optical vortex, l = %d", p.Charge)
	err = uc.publish(&report, name, title, img)
	return report, err
}

// PhaseBasics computes atan2(y, x) and publishes its figure under name.
func (uc *RenderFigure) PhaseBasics(ctx context.Context, gridSize int, extent float64, name string) (domain.FigureReport, error) {
	report := domain.FigureReport{
		Kind:      domain.FigurePhaseBasic,
		GridSize:  gridSize,
		Extent:    extent,
		StartedAt: uc.now(),
	}

	pm, err := uc.phases.Execute(ctx, gridSize, extent)
	if err != nil {
		return report, err
	}

	img, err := uc.renderer.RenderPhaseMap(pm)
	if err != nil {
		return report, err
	}

	err = uc.publish(&report, name, "Basic optical phase map", img)
	return report, err
}

func (uc *RenderFigure) publish(report *domain.FigureReport, name, title string, img image.Image) error {
	defer func() { report.EndedAt = uc.now() }()

	if uc.store != nil {
		path, err := uc.store.SaveFigure(name, img)
		if err != nil {
			return err
		}
		report.OutputPath = path
	}

	if uc.viewer != nil {
		if err := uc.viewer.Show(title, img); err != nil {
			return err
		}
		report.Shown = true
	}
	return nil
}

package cli

import (
	"github.com/Calebjackson-photonics/structured-light-education/internal/domain"
	"github.com/Calebjackson-photonics/structured-light-education/internal/infra/display"
	"github.com/Calebjackson-photonics/structured-light-education/internal/infra/figurestore"
	"github.com/Calebjackson-photonics/structured-light-education/internal/infra/logger"
	"github.com/Calebjackson-photonics/structured-light-education/internal/infra/render"
	"github.com/Calebjackson-photonics/structured-light-education/internal/ports"
	"github.com/Calebjackson-photonics/structured-light-education/internal/usecase"
)

// newViewer opens figures in a window. Tests replace it.
var newViewer = func() ports.Viewer {
	return display.NewWindow(display.WithLogger(logger.L()))
}

func newFigureUseCase(cfg domain.Config, cmapName string, show bool) (*usecase.RenderFigure, error) {
	cmap, err := render.Lookup(cmapName)
	if err != nil {
		return nil, &domain.OpError{
			Op:    "cli.colormap",
			Kind:  domain.KindInvalidParameter,
			Field: "cmap",
			Err:   err,
		}
	}

	r, err := render.New(
		render.WithPhaseColormap(cmap),
		render.WithLogger(logger.L()),
	)
	if err != nil {
		return nil, err
	}

	fields := usecase.NewGenerateField(
		usecase.WithWorkers(cfg.Workers),
		usecase.WithLogger(logger.L()),
	)
	phases := usecase.NewGeneratePhaseMap(cfg.Workers)

	opts := []usecase.RenderOption{
		usecase.WithStore(figurestore.NewPNGStore(cfg.Output.Dir)),
	}
	if show {
		opts = append(opts, usecase.WithViewer(newViewer()))
	}

	return usecase.NewRenderFigure(fields, phases, r, opts...), nil
}

package ports

import (
	"image"

	"github.com/Calebjackson-photonics/structured-light-education/internal/domain"
)

// FigureRenderer turns computed maps into a labeled figure.
type FigureRenderer interface {
	RenderVortex(field domain.Field) (image.Image, error)
	RenderPhaseMap(pm domain.PhaseMap) (image.Image, error)
}

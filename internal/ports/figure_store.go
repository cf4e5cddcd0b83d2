package ports

import "image"

// FigureStore persists rendered figures and returns where they were written.
type FigureStore interface {
	SaveFigure(name string, img image.Image) (path string, err error)
}

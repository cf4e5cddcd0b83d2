package ports

import "image"

// Viewer shows a rendered figure in a window and blocks until it is closed.
type Viewer interface {
	Show(title string, img image.Image) error
}

// Package display shows rendered figures in a native window.
package display

import (
	"errors"
	"image"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/Calebjackson-photonics/structured-light-education/internal/domain"
	"github.com/Calebjackson-photonics/structured-light-education/internal/ports"
)

const appID = "io.github.calebjackson.vortex"

// Window opens one static window per figure and blocks until it is closed.
type Window struct {
	newApp func() fyne.App
	logger *slog.Logger
}

type Option func(*Window)

// WithApp replaces the fyne application factory.
func WithApp(f func() fyne.App) Option {
	return func(w *Window) {
		if f != nil {
			w.newApp = f
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(w *Window) {
		if l != nil {
			w.logger = l
		}
	}
}

func NewWindow(opts ...Option) *Window {
	w := &Window{
		newApp: func() fyne.App { return app.NewWithID(appID) },
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

var _ ports.Viewer = (*Window)(nil)

func (w *Window) Show(title string, img image.Image) error {
	if img == nil {
		return &domain.OpError{
			Op:   "display.show",
			Kind: domain.KindDisplay,
			Err:  errors.New("no image to display"),
		}
	}

	a := w.newApp()
	win := a.NewWindow(title)
	win.SetContent(content(img))
	win.Resize(windowSize(img))
	win.CenterOnScreen()

	w.logger.Info("display.opened", "title", title)
	win.ShowAndRun()
	w.logger.Info("display.closed", "title", title)

	return nil
}

func content(img image.Image) fyne.CanvasObject {
	picture := canvas.NewImageFromImage(img)
	picture.FillMode = canvas.ImageFillContain
	picture.ScaleMode = canvas.ImageScaleSmooth
	picture.SetMinSize(fyne.NewSize(320, 240))
	return container.NewStack(picture)
}

func windowSize(img image.Image) fyne.Size {
	b := img.Bounds()
	return fyne.NewSize(float32(b.Dx()), float32(b.Dy()))
}

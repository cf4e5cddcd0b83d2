package display

import (
	"image"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"

	"github.com/Calebjackson-photonics/structured-light-education/internal/domain"
)

func TestShow_NilImage(t *testing.T) {
	w := NewWindow(WithApp(func() fyne.App { return test.NewApp() }))

	err := w.Show("empty", nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindDisplay) {
		t.Fatalf("expected display kind, got %v", err)
	}
}

func TestContent_ContainsImage(t *testing.T) {
	test.NewApp()

	img := image.NewRGBA(image.Rect(0, 0, 1000, 440))
	obj := content(img)

	stack, ok := obj.(*fyne.Container)
	if !ok {
		t.Fatalf("expected container, got %T", obj)
	}
	if len(stack.Objects) != 1 {
		t.Fatalf("expected one object, got %d", len(stack.Objects))
	}

	picture, ok := stack.Objects[0].(*canvas.Image)
	if !ok {
		t.Fatalf("expected *canvas.Image, got %T", stack.Objects[0])
	}
	if picture.FillMode != canvas.ImageFillContain {
		t.Fatalf("unexpected fill mode %v", picture.FillMode)
	}
	if picture.Image != img {
		t.Fatalf("image not passed through")
	}
}

func TestWindowSize(t *testing.T) {
	got := windowSize(image.NewRGBA(image.Rect(0, 0, 600, 600)))
	if got.Width != 600 || got.Height != 600 {
		t.Fatalf("unexpected size %v", got)
	}
}

package render

import (
	"math"
	"strconv"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"gonum.org/v1/gonum/mat"
)

// Layout in unscaled pixels. The vortex figure mirrors a 10x4 inch plot at 100 dpi.
const (
	vortexWidth      = 1000
	vortexHeight     = 440
	vortexPanelLeft  = 90
	vortexPanelPitch = 490
	vortexPanelTop   = 80
	vortexPanelSide  = 300

	phaseWidth     = 600
	phaseHeight    = 600
	phasePanelLeft = 60
	phasePanelTop  = 80
	phasePanelSide = 440

	titlePt = 16
	panelPt = 13
	labelPt = 11
	tickPt  = 10

	barGap    = 14
	barWidth  = 16
	barSteps  = 256
	tickLen   = 4
	textColor = 0.1
)

type panelSpec struct {
	left, top, side float64
	title           string
	data            *mat.Dense
	bounds          [4]float64
	lo, hi          float64
	cmap            Colormap
	bar             string
	axes            bool
}

type figure struct {
	dc    *gg.Context
	fonts *text.FontSource
	s     float64
}

func (r *Renderer) newFigure(w, h float64) *figure {
	dc := gg.NewContext(int(math.Round(w*r.scale)), int(math.Round(h*r.scale)))
	dc.ClearWithColor(gg.White)
	return &figure{dc: dc, fonts: r.fonts, s: r.scale}
}

func (f *figure) face(pt float64) text.Face {
	return f.fonts.Face(pt * f.s)
}

func (f *figure) ink() {
	f.dc.SetRGB(textColor, textColor, textColor)
}

func (f *figure) title(s string) {
	f.dc.SetFont(f.face(titlePt))
	f.ink()
	f.dc.DrawStringAnchored(s, float64(f.dc.Width())/2, 34*f.s, 0.5, 0)
}

func (f *figure) panel(p panelSpec) {
	s := f.s
	x0, y0, w := p.left*s, p.top*s, p.side*s

	f.dc.DrawImageEx(gg.ImageBufFromImage(heatmap(p.data, p.lo, p.hi, p.cmap)), gg.DrawImageOptions{
		X:             x0,
		Y:             y0,
		DstWidth:      w,
		DstHeight:     w,
		Interpolation: gg.InterpNearest,
	})
	f.frame(x0, y0, w, w)

	if p.title != "" {
		f.dc.SetFont(f.face(panelPt))
		f.ink()
		f.dc.DrawStringAnchored(p.title, x0+w/2, y0-10*s, 0.5, 0)
	}
	if p.axes {
		f.axes(x0, y0, w, p.bounds)
	}
	f.colorbar(x0+w+barGap*s, y0, w, p)
}

func (f *figure) axes(x0, y0, w float64, b [4]float64) {
	s := f.s
	f.dc.SetFont(f.face(tickPt))
	f.ink()

	xs := []float64{b[0], (b[0] + b[1]) / 2, b[1]}
	for k, v := range xs {
		x := x0 + w*float64(k)/2
		f.line(x, y0+w, x, y0+w+tickLen*s)
		f.dc.DrawStringAnchored(tickLabel(v), x, y0+w+18*s, 0.5, 0)
	}

	ys := []float64{b[2], (b[2] + b[3]) / 2, b[3]}
	for k, v := range ys {
		y := y0 + w - w*float64(k)/2
		f.line(x0-tickLen*s, y, x0, y)
		f.dc.DrawStringAnchored(tickLabel(v), x0-7*s, y, 1, 0.35)
	}

	f.dc.SetFont(f.face(labelPt))
	f.dc.DrawStringAnchored(axisLabelX, x0+w/2, y0+w+38*s, 0.5, 0)
	f.verticalText(axisLabelY, labelPt, x0-52*s, y0+w/2)
}

func (f *figure) colorbar(bx, y0, h float64, p panelSpec) {
	s := f.s
	bw := barWidth * s

	f.dc.DrawImageEx(gg.ImageBufFromImage(colorbar(barSteps, p.cmap)), gg.DrawImageOptions{
		X:             bx,
		Y:             y0,
		DstWidth:      bw,
		DstHeight:     h,
		Interpolation: gg.InterpNearest,
	})
	f.frame(bx, y0, bw, h)

	f.dc.SetFont(f.face(tickPt))
	f.ink()
	for k, v := range []float64{p.lo, (p.lo + p.hi) / 2, p.hi} {
		y := y0 + h - h*float64(k)/2
		f.line(bx+bw, y, bx+bw+tickLen*s, y)
		f.dc.DrawStringAnchored(tickLabel(v), bx+bw+7*s, y, 0, 0.35)
	}

	if p.bar != "" {
		f.verticalText(p.bar, labelPt, bx+bw+52*s, y0+h/2)
	}
}

func (f *figure) frame(x, y, w, h float64) {
	f.ink()
	f.dc.SetLineWidth(f.s)
	f.dc.DrawRectangle(x, y, w, h)
	_ = f.dc.Stroke()
}

func (f *figure) line(x1, y1, x2, y2 float64) {
	f.dc.SetLineWidth(f.s)
	f.dc.DrawLine(x1, y1, x2, y2)
	_ = f.dc.Stroke()
}

// verticalText draws s rotated a quarter turn, centered on (cx, cy).
func (f *figure) verticalText(s string, pt, cx, cy float64) {
	face := f.face(pt)
	w, h := text.Measure(s, face)
	if w == 0 {
		return
	}

	tmp := gg.NewContext(int(math.Ceil(w))+2, int(math.Ceil(h))+2)
	tmp.SetFont(face)
	tmp.SetRGB(textColor, textColor, textColor)
	tmp.DrawString(s, 1, 1+face.Metrics().Ascent)

	rot := rotateCCW(tmp.Image())
	b := rot.Bounds()
	f.dc.DrawImageEx(gg.ImageBufFromImage(rot), gg.DrawImageOptions{
		X:             cx - float64(b.Dx())/2,
		Y:             cy - float64(b.Dy())/2,
		Interpolation: gg.InterpNearest,
	})
}

func tickLabel(v float64) string {
	if math.Abs(v) < 1e-12 {
		return "0"
	}
	return strconv.FormatFloat(v, 'g', 3, 64)
}

package render

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"
)

// Colormap maps a normalized value in [0, 1] to an opaque color.
// Values outside the range are clamped (cyclic maps wrap instead).
type Colormap func(t float64) color.RGBA

// Colormap names accepted by Lookup.
const (
	Viridis  = "viridis"
	Twilight = "twilight"
	HSV      = "hsv"
)

type anchor struct {
	at      float64
	r, g, b float64
}

// Sampled from the matplotlib tables at eighths.
var viridisAnchors = []anchor{
	{0.000, 68, 1, 84},
	{0.125, 71, 44, 122},
	{0.250, 59, 82, 139},
	{0.375, 44, 114, 142},
	{0.500, 33, 145, 140},
	{0.625, 40, 174, 128},
	{0.750, 94, 201, 98},
	{0.875, 173, 220, 48},
	{1.000, 253, 231, 37},
}

// Cyclic: both ends share the same light gray so -pi and pi meet seamlessly.
var twilightAnchors = []anchor{
	{0.000, 226, 217, 226},
	{0.125, 165, 186, 204},
	{0.250, 98, 129, 191},
	{0.375, 85, 65, 160},
	{0.500, 47, 20, 55},
	{0.625, 122, 40, 79},
	{0.750, 178, 86, 79},
	{0.875, 209, 156, 138},
	{1.000, 226, 217, 226},
}

// Lookup returns the named colormap.
func Lookup(name string) (Colormap, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Viridis, "":
		return ViridisMap, nil
	case Twilight:
		return TwilightMap, nil
	case HSV:
		return HSVMap, nil
	default:
		return nil, fmt.Errorf("unknown colormap %q (expected viridis|twilight|hsv)", name)
	}
}

func ViridisMap(t float64) color.RGBA {
	return interpolate(viridisAnchors, clamp01(t))
}

func TwilightMap(t float64) color.RGBA {
	return interpolate(twilightAnchors, wrap01(t))
}

// HSVMap walks the hue circle at full saturation and value.
func HSVMap(t float64) color.RGBA {
	h := wrap01(t)
	i := math.Floor(h * 6)
	f := h*6 - i
	q := 1 - f
	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = 1, f, 0
	case 1:
		r, g, b = q, 1, 0
	case 2:
		r, g, b = 0, 1, f
	case 3:
		r, g, b = 0, q, 1
	case 4:
		r, g, b = f, 0, 1
	case 5:
		r, g, b = 1, 0, q
	}
	return color.RGBA{R: to8(r * 255), G: to8(g * 255), B: to8(b * 255), A: 255}
}

func interpolate(table []anchor, t float64) color.RGBA {
	i := sort.Search(len(table), func(k int) bool { return table[k].at >= t })
	if i == 0 {
		a := table[0]
		return color.RGBA{R: to8(a.r), G: to8(a.g), B: to8(a.b), A: 255}
	}
	if i == len(table) {
		i = len(table) - 1
	}
	lo, hi := table[i-1], table[i]
	f := (t - lo.at) / (hi.at - lo.at)
	return color.RGBA{
		R: to8(lo.r + (hi.r-lo.r)*f),
		G: to8(lo.g + (hi.g-lo.g)*f),
		B: to8(lo.b + (hi.b-lo.b)*f),
		A: 255,
	}
}

func clamp01(t float64) float64 {
	switch {
	case math.IsNaN(t), t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}

func wrap01(t float64) float64 {
	if math.IsNaN(t) {
		return 0
	}
	if t == 1 {
		return 1
	}
	t = math.Mod(t, 1)
	if t < 0 {
		t++
	}
	return t
}

func to8(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}

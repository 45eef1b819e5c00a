package icon

import (
	"image"
	"log/slog"
)

// Geometry ratios, relative to the icon edge length.
const (
	marginRatio       = 0.06
	radiusRatio       = 0.22
	innerRatio        = 0.18
	waveWidthRatio    = 0.075
	outlineWidthRatio = 0.012

	minWaveWidth    = 2
	minOutlineWidth = 1
)

// waveformFractions positions the waveform vertices inside the inner box.
var waveformFractions = [...][2]float64{
	{0.00, 0.52},
	{0.12, 0.22},
	{0.24, 0.80},
	{0.36, 0.47},
	{0.48, 0.28},
	{0.62, 0.72},
	{0.76, 0.44},
	{0.88, 0.68},
	{1.00, 0.36},
}

// Layout is the geometry of an icon with a given edge length.
// All lengths are in pixels and truncated toward zero.
type Layout struct {
	Size         int
	Margin       int
	Radius       int
	Inner        int
	WaveWidth    int
	OutlineWidth int
}

// NewLayout derives the icon geometry for the given edge length.
func NewLayout(size int) Layout {
	return Layout{
		Size:         size,
		Margin:       scale(size, marginRatio),
		Radius:       scale(size, radiusRatio),
		Inner:        scale(size, innerRatio),
		WaveWidth:    max(minWaveWidth, scale(size, waveWidthRatio)),
		OutlineWidth: max(minOutlineWidth, scale(size, outlineWidthRatio)),
	}
}

func scale(size int, ratio float64) int {
	return int(float64(size) * ratio)
}

// Box is the bounding box of the rounded-square badge and its outline.
// The far edge is inclusive: the badge covers pixels Margin through Size-Margin.
func (l Layout) Box() image.Rectangle {
	return image.Rect(l.Margin, l.Margin, l.Size-l.Margin+1, l.Size-l.Margin+1)
}

// InnerBox is the region the waveform spans.
func (l Layout) InnerBox() image.Rectangle {
	return image.Rect(l.Inner, l.Inner, l.Size-l.Inner, l.Size-l.Inner)
}

// Waveform returns the vertices of the waveform polyline.
func (l Layout) Waveform() []Point {
	inner := l.InnerBox()
	x0, y0 := float64(inner.Min.X), float64(inner.Min.Y)
	w, h := float64(inner.Dx()), float64(inner.Dy())
	points := make([]Point, len(waveformFractions))
	for i, f := range waveformFractions {
		points[i] = Point{X: x0 + w*f[0], Y: y0 + h*f[1]}
	}
	return points
}

// LogValue implements slog.LogValuer.
func (l Layout) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("size", l.Size),
		slog.Int("margin", l.Margin),
		slog.Int("radius", l.Radius),
		slog.Int("inner", l.Inner),
		slog.Int("wave_width", l.WaveWidth),
		slog.Int("outline_width", l.OutlineWidth),
	)
}

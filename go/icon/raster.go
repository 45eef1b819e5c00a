package icon

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Point is a position on the canvas, in pixels.
type Point struct {
	X, Y float64
}

func (p Point) toFixed() fixed.Point26_6 {
	return rasterx.ToFixedP(p.X, p.Y)
}

// rect is a rectangle in continuous canvas coordinates.
type rect struct {
	minX, minY, maxX, maxY float64
}

func rectOf(r image.Rectangle) rect {
	return rect{float64(r.Min.X), float64(r.Min.Y), float64(r.Max.X), float64(r.Max.Y)}
}

func (r rect) inset(d float64) rect {
	return rect{r.minX + d, r.minY + d, r.maxX - d, r.maxY - d}
}

func (r rect) empty() bool {
	return r.maxX <= r.minX || r.maxY <= r.minY
}

// clampRadius limits a corner radius to half the shorter side of r.
func (r rect) clampRadius(radius float64) float64 {
	return max(0, min(radius, (r.maxX-r.minX)/2, (r.maxY-r.minY)/2))
}

func addRoundRect(r rect, radius float64, p rasterx.Adder) {
	radius = r.clampRadius(radius)
	if radius == 0 {
		rasterx.AddRect(r.minX, r.minY, r.maxX, r.maxY, 0, p)
		return
	}
	rasterx.AddRoundRect(r.minX, r.minY, r.maxX, r.maxY, radius, radius, 0, rasterx.RoundGap, p)
}

// canvas paints shapes onto an RGBA image.
type canvas struct {
	img           *image.RGBA
	width, height int
}

func newCanvas(img *image.RGBA) *canvas {
	bounds := img.Bounds()
	return &canvas{img: img, width: bounds.Dx(), height: bounds.Dy()}
}

func (c *canvas) scanner(dst draw.Image) *rasterx.ScannerGV {
	return rasterx.NewScannerGV(c.width, c.height, dst, dst.Bounds())
}

// newStroker returns a stroker with round joins and butt ends.
func (c *canvas) newStroker(dst draw.Image, width float64) *rasterx.Stroker {
	stroker := rasterx.NewStroker(c.width, c.height, c.scanner(dst))
	stroker.SetStroke(fixed.Int26_6(width*64), 0, rasterx.ButtCap, rasterx.ButtCap, rasterx.RoundGap, rasterx.Round)
	return stroker
}

// fillRoundRect draws clr over the rounded rectangle r.
func (c *canvas) fillRoundRect(clr color.Color, r rect, radius float64) {
	filler := rasterx.NewFiller(c.width, c.height, c.scanner(c.img))
	filler.SetColor(clr)
	addRoundRect(r, radius, filler)
	filler.Draw()
}

// strokePolyline draws clr over an open polyline.
func (c *canvas) strokePolyline(clr color.Color, points []Point, width float64) {
	if len(points) < 2 {
		return
	}
	stroker := c.newStroker(c.img, width)
	stroker.SetColor(clr)
	stroker.Start(points[0].toFixed())
	for _, p := range points[1:] {
		stroker.Line(p.toFixed())
	}
	stroker.Stop(false)
	stroker.Draw()
}

// replaceRoundRectBorder sets the pixels along the inside of the rounded rectangle r to clr.
// Covered pixels take clr as is instead of blending with what lies below.
func (c *canvas) replaceRoundRectBorder(clr color.Color, r rect, radius, width float64) {
	half := width / 2
	path := r.inset(half)
	if path.empty() {
		return
	}
	mask := image.NewAlpha(c.img.Bounds())
	stroker := c.newStroker(mask, width)
	stroker.SetColor(color.Opaque)
	addRoundRect(path, max(0, r.clampRadius(radius)-half), stroker)
	stroker.Draw()
	draw.DrawMask(c.img, c.img.Bounds(), image.NewUniform(clr), image.Point{}, mask, image.Point{}, draw.Src)
}

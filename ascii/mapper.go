package ascii

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Mapper converts frames to glyph grids.
// The zero value uses [DefaultRamp] and bilinear scaling.
type Mapper struct {
	// Scaler resizes frames to the grid size. Nil means
	// [draw.ApproxBiLinear].
	Scaler draw.Scaler
	// Ramp holds the glyphs, lightest first.
	Ramp Ramp
}

// GridHeight returns the number of rows for a frame of srcW x srcH pixels
// rendered at width columns: max(1, floor(srcH * width / srcW / 2)).
func GridHeight(srcW, srcH, width int) int {
	if srcW <= 0 || srcH <= 0 || width <= 0 {
		return 1
	}

	return max(1, srcH*width/srcW/2)
}

// Map resizes img to width columns and [GridHeight] rows and buckets each
// pixel's luminance into the mapper's ramp. Widths below 1 are treated as 1.
// An empty image yields a single row of the lightest glyph.
func (m Mapper) Map(img image.Image, width int) Grid {
	width = max(1, width)

	b := img.Bounds()
	height := GridHeight(b.Dx(), b.Dy(), width)

	g := Grid{
		Width:  width,
		Height: height,
		glyphs: make([]byte, width*height),
		colors: make([]color.RGBA, width*height),
	}

	if b.Empty() {
		for i := range g.glyphs {
			g.glyphs[i] = m.Ramp.Glyph(0)
			g.colors[i] = color.RGBA{A: 0xff}
		}

		return g
	}

	px := m.resize(img, width, height)

	for y := range height {
		for x := range width {
			c := px.RGBAAt(x, y)
			i := y*width + x
			g.colors[i] = c
			g.glyphs[i] = m.Ramp.Glyph(Luminance(c))
		}
	}

	return g
}

// Luminance returns the ITU-R BT.601 luma of c, rounded to 8 bits.
func Luminance(c color.RGBA) uint8 {
	y := (299*uint32(c.R) + 587*uint32(c.G) + 114*uint32(c.B) + 500) / 1000

	return uint8(min(y, 0xff))
}

// resize scales img to exactly w x h pixels. Frames that are already the
// target size are only converted.
func (m Mapper) resize(img image.Image, w, h int) *image.RGBA {
	b := img.Bounds()

	if b.Dx() == w && b.Dy() == h {
		if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) {
			return rgba
		}

		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)

		return dst
	}

	scaler := m.Scaler
	if scaler == nil {
		scaler = draw.ApproxBiLinear
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	scaler.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	return dst
}

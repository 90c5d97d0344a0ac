package ascii_test

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/asciiplay/ascii"
	"go.jacobcolvin.com/asciiplay/stringtest"
)

var (
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.RGBA{A: 0xff}
	red   = color.RGBA{R: 0xff, A: 0xff}
)

func uniform(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, c)
		}
	}

	return img
}

// pattern returns a deterministic non-uniform frame.
func pattern(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8((x * 7) % 256),
				G: uint8((y * 13) % 256),
				B: uint8((x*y + 31) % 256),
				A: 0xff,
			})
		}
	}

	return img
}

func TestGridHeight(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		srcW, srcH, width int
		want              int
	}{
		"16:9 at 80 columns": {srcW: 1920, srcH: 1080, width: 80, want: 22},
		"square":             {srcW: 100, srcH: 100, width: 40, want: 20},
		"portrait":           {srcW: 100, srcH: 300, width: 10, want: 15},
		"very wide clamps":   {srcW: 10000, srcH: 10, width: 80, want: 1},
		"single column":      {srcW: 640, srcH: 480, width: 1, want: 1},
		"zero width":         {srcW: 640, srcH: 480, width: 0, want: 1},
		"negative width":     {srcW: 640, srcH: 480, width: -5, want: 1},
		"empty source":       {srcW: 0, srcH: 0, width: 80, want: 1},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, ascii.GridHeight(tc.srcW, tc.srcH, tc.width))
		})
	}
}

func TestMapDimensions(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		srcW, srcH, width int
	}{
		"downscale landscape": {srcW: 320, srcH: 180, width: 80},
		"upscale tiny":        {srcW: 3, srcH: 2, width: 40},
		"portrait":            {srcW: 90, srcH: 160, width: 33},
		"one pixel":           {srcW: 1, srcH: 1, width: 7},
		"one column":          {srcW: 64, srcH: 64, width: 1},
	}

	m := ascii.Mapper{Ramp: ascii.DefaultRamp}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			grid := m.Map(pattern(tc.srcW, tc.srcH), tc.width)

			wantH := max(1, tc.srcH*tc.width/tc.srcW/2)
			assert.Equal(t, tc.width, grid.Width)
			assert.Equal(t, wantH, grid.Height)

			rows := grid.Rows()
			require.Len(t, rows, wantH)

			for i, row := range rows {
				assert.Len(t, row, tc.width, "row %d", i)
			}

			plain := strings.Split(grid.Render(false), "\n")
			assert.Equal(t, rows, plain)
		})
	}
}

func TestMapClampsWidth(t *testing.T) {
	t.Parallel()

	grid := ascii.Mapper{}.Map(pattern(10, 10), 0)

	assert.Equal(t, 1, grid.Width)
	assert.Equal(t, 1, grid.Height)
}

func TestMapEmptyFrame(t *testing.T) {
	t.Parallel()

	grid := ascii.Mapper{}.Map(image.NewRGBA(image.Rectangle{}), 5)

	assert.Equal(t, 1, grid.Height)
	assert.Equal(t, "     ", grid.Render(false))
}

func TestMapMonotonic(t *testing.T) {
	t.Parallel()

	m := ascii.Mapper{Ramp: ascii.DefaultRamp}
	prev := -1

	for v := 0; v <= 255; v++ {
		gray := uint8(v)
		grid := m.Map(uniform(16, 16, color.RGBA{R: gray, G: gray, B: gray, A: 0xff}), 8)

		row := grid.Row(0)
		assert.Equal(t, strings.Repeat(row[:1], len(row)), row, "uniform frame must map to one glyph")

		idx := strings.IndexByte(string(ascii.DefaultRamp), row[0])
		require.GreaterOrEqual(t, idx, 0)
		assert.GreaterOrEqual(t, idx, prev, "luminance %d selected a darker glyph", v)

		prev = idx
	}

	assert.Equal(t, len(ascii.DefaultRamp)-1, prev)
}

func TestMapExact(t *testing.T) {
	t.Parallel()

	// Rows 0-1 and 2-3 are identical so halving the height blends each pair
	// into a single row without changing any value.
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))

	top := []color.RGBA{white, black, white, black}
	bottom := []color.RGBA{red, red, black, white}

	for x := range 4 {
		src.SetRGBA(x, 0, top[x])
		src.SetRGBA(x, 1, top[x])
		src.SetRGBA(x, 2, bottom[x])
		src.SetRGBA(x, 3, bottom[x])
	}

	grid := ascii.Mapper{Ramp: ascii.DefaultRamp}.Map(src, 4)

	assert.Equal(t, stringtest.JoinLF(
		"@ @ ",
		":: @",
	), grid.Render(false))

	colored := grid.Render(true)
	assert.Contains(t, colored, "\033[38;2;255;0;0m:\033[0m")
	assert.Contains(t, colored, "\033[38;2;255;255;255m@\033[0m")
	assert.Contains(t, colored, "\033[38;2;0;0;0m \033[0m")
	assert.False(t, strings.HasSuffix(colored, "\n"))
}

func TestRenderColorMatchesPlain(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		srcW, srcH, width int
	}{
		"landscape": {srcW: 200, srcH: 100, width: 60},
		"portrait":  {srcW: 50, srcH: 120, width: 20},
		"tiny":      {srcW: 2, srcH: 2, width: 3},
	}

	m := ascii.Mapper{}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			grid := m.Map(pattern(tc.srcW, tc.srcH), tc.width)

			colored := grid.Render(true)
			assert.Contains(t, colored, "\033[38;2;")
			assert.Equal(t, grid.Render(false), stringtest.StripANSI(colored))
		})
	}
}

func TestRampGlyph(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		ramp ascii.Ramp
		lum  uint8
		want byte
	}{
		"black":            {ramp: ascii.DefaultRamp, lum: 0, want: ' '},
		"white":            {ramp: ascii.DefaultRamp, lum: 255, want: '@'},
		"mid gray":         {ramp: ascii.DefaultRamp, lum: 128, want: '='},
		"just below top":   {ramp: ascii.DefaultRamp, lum: 254, want: '%'},
		"empty is default": {ramp: "", lum: 255, want: '@'},
		"two glyphs low":   {ramp: "ab", lum: 254, want: 'a'},
		"two glyphs high":  {ramp: "ab", lum: 255, want: 'b'},
		"single glyph":     {ramp: "x", lum: 200, want: 'x'},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, string(tc.want), string(tc.ramp.Glyph(tc.lum)))
		})
	}
}

func TestLuminance(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		c    color.RGBA
		want uint8
	}{
		"black": {c: black, want: 0},
		"white": {c: white, want: 255},
		"gray":  {c: color.RGBA{R: 77, G: 77, B: 77, A: 0xff}, want: 77},
		"red":   {c: red, want: 76},
		"green": {c: color.RGBA{G: 0xff, A: 0xff}, want: 150},
		"blue":  {c: color.RGBA{B: 0xff, A: 0xff}, want: 29},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, ascii.Luminance(tc.c))
		})
	}
}

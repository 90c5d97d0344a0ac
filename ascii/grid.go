package ascii

import (
	"image/color"
	"strconv"
	"strings"
)

const (
	sgrForeground = "\033[38;2;"
	sgrReset      = "\033[0m"
)

// Grid is the glyph rendering of one frame.
// Each cell carries the glyph and the color of the resized source pixel it
// was derived from.
type Grid struct {
	glyphs []byte
	colors []color.RGBA
	Width  int
	Height int
}

// Row returns the plain glyphs of row y.
func (g Grid) Row(y int) string {
	return string(g.glyphs[y*g.Width : (y+1)*g.Width])
}

// Rows returns all rows as plain glyph strings.
func (g Grid) Rows() []string {
	rows := make([]string, g.Height)
	for y := range g.Height {
		rows[y] = g.Row(y)
	}

	return rows
}

// Render returns the grid with rows joined by "\n" and no trailing newline.
// When colored is true, every glyph is wrapped in a 24-bit foreground escape
// followed by a reset.
func (g Grid) Render(colored bool) string {
	var sb strings.Builder

	g.AppendTo(&sb, colored)

	return sb.String()
}

// AppendTo appends the rendering described by [Grid.Render] to sb.
func (g Grid) AppendTo(sb *strings.Builder, colored bool) {
	if !colored {
		sb.Grow(g.Height * (g.Width + 1))
	} else {
		sb.Grow(g.Height * (g.Width*len("\033[38;2;255;255;255m@\033[0m") + 1))
	}

	var num [3]byte

	for y := range g.Height {
		if y > 0 {
			sb.WriteByte('\n')
		}

		if !colored {
			sb.Write(g.glyphs[y*g.Width : (y+1)*g.Width])
			continue
		}

		for x := range g.Width {
			i := y*g.Width + x
			c := g.colors[i]

			sb.WriteString(sgrForeground)
			sb.Write(strconv.AppendUint(num[:0], uint64(c.R), 10))
			sb.WriteByte(';')
			sb.Write(strconv.AppendUint(num[:0], uint64(c.G), 10))
			sb.WriteByte(';')
			sb.Write(strconv.AppendUint(num[:0], uint64(c.B), 10))
			sb.WriteByte('m')
			sb.WriteByte(g.glyphs[i])
			sb.WriteString(sgrReset)
		}
	}
}

// Package ascii maps decoded frames to grids of luminance glyphs.
//
// A [Mapper] resizes a frame to a target column count, keeping the source
// aspect ratio halved vertically (terminal cells are roughly twice as tall as
// they are wide), and buckets each pixel's luminance into a [Ramp]:
//
//	m := ascii.Mapper{Ramp: ascii.DefaultRamp}
//	grid := m.Map(frame, 80)
//	fmt.Println(grid.Render(true))
//
// [Grid.Render] emits either plain glyphs or glyphs wrapped in 24-bit
// foreground escape sequences. Stripping the escapes from colored output
// yields the plain output byte for byte.
package ascii

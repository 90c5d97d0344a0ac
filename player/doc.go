// Package player runs playback sessions: it classifies the input, decodes
// frames, maps them to glyph grids, paces them against the wall clock, and
// drives a display and an optional side-channel audio player.
//
// Videos loop until end of stream or interruption; still images are drawn
// once and never start audio. Every exit path closes the media source and
// the display, so the terminal cursor is always restored.
//
// Stream decode has no timeout: a stalled decoder stalls the session.
package player

// Package media classifies media files and decodes them into frames.
//
// [Detect] guesses whether a path holds a video or a still image. [FFmpeg]
// decodes videos by piping raw RGBA frames out of an ffmpeg process, with
// stream metadata read through ffprobe, and decodes still images with the
// standard library's registered formats plus those of golang.org/x/image.
package media

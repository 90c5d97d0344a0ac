package media

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrUnsupported indicates a file that yields no decodable picture.
	ErrUnsupported = errors.New("unsupported or corrupt media")
	// ErrDecoderNotFound indicates ffmpeg or ffprobe is not installed.
	ErrDecoderNotFound = errors.New("decoder not found")
)

// Info is best-effort metadata about a video stream.
type Info struct {
	// Width and Height are the decoded picture size in pixels.
	Width  int
	Height int
	// FPS is the average frame rate, or 0 if unknown.
	FPS float64
	// Frames is the total frame count, or 0 if unknown.
	Frames int
}

type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecType    string `json:"codec_type"`
		AvgFrameRate string `json:"avg_frame_rate"`
		RFrameRate   string `json:"r_frame_rate"`
		NbFrames     string `json:"nb_frames"`
		Duration     string `json:"duration"`
		Width        int    `json:"width"`
		Height       int    `json:"height"`
	} `json:"streams"`
}

// ParseProbe extracts [Info] for the first video stream from ffprobe's JSON
// output (-show_format -show_streams -of json).
func ParseProbe(data []byte) (Info, error) {
	var out probeOutput

	err := json.Unmarshal(data, &out)
	if err != nil {
		return Info{}, fmt.Errorf("%w: parsing ffprobe output: %w", ErrUnsupported, err)
	}

	for _, s := range out.Streams {
		if s.CodecType != "video" || s.Width <= 0 || s.Height <= 0 {
			continue
		}

		info := Info{
			Width:  s.Width,
			Height: s.Height,
			FPS:    parseRate(s.AvgFrameRate),
		}
		if info.FPS == 0 {
			info.FPS = parseRate(s.RFrameRate)
		}

		info.Frames, _ = strconv.Atoi(s.NbFrames)
		if info.Frames <= 0 && info.FPS > 0 {
			duration := parseFloat(s.Duration)
			if duration == 0 {
				duration = parseFloat(out.Format.Duration)
			}

			info.Frames = int(math.Round(duration * info.FPS))
		}

		return info, nil
	}

	return Info{}, fmt.Errorf("%w: no video stream", ErrUnsupported)
}

// parseRate parses a rate such as "30000/1001" or "25". Malformed and
// zero-denominator rates are 0.
func parseRate(s string) float64 {
	num, den, found := strings.Cut(s, "/")
	if !found {
		return parseFloat(num)
	}

	n := parseFloat(num)
	d := parseFloat(den)

	if d == 0 {
		return 0
	}

	return n / d
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return f
}

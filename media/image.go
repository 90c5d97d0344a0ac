package media

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"

	// Registered still-image formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeImage decodes the still image at path. Formats without a registered
// Go decoder are decoded as the first frame ffmpeg produces for the file.
func (f FFmpeg) DecodeImage(ctx context.Context, path string) (image.Image, error) {
	img, err := decodeFile(path)
	if err == nil {
		return img, nil
	}

	if !errors.Is(err, image.ErrFormat) {
		return nil, fmt.Errorf("%w: %w", ErrUnsupported, err)
	}

	s, err := f.open(ctx, path, 1)
	if err != nil {
		return nil, err
	}

	defer s.Close() //nolint:errcheck // Decoder pipe, nothing to flush.

	img, err = s.Next()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: no picture in %s", ErrUnsupported, path)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupported, err)
	}

	return img, nil
}

func decodeFile(path string) (image.Image, error) {
	file, err := os.Open(path) //nolint:gosec // The media path is chosen by the local user.
	if err != nil {
		return nil, err
	}

	defer func() {
		closeErr := file.Close()
		if closeErr != nil {
			slog.Warn("closing image", slog.String("path", path), slog.Any("err", closeErr))
		}
	}()

	img, _, err := image.Decode(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return img, nil
}

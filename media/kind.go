package media

import (
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Kind is the broad category of a media file.
type Kind int

const (
	// KindUnknown is a file that is neither a video nor an image.
	KindUnknown Kind = iota
	// KindVideo is a file played frame by frame.
	KindVideo
	// KindImage is a file rendered once.
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindVideo:
		return "video"
	case KindImage:
		return "image"
	case KindUnknown:
	}

	return "unknown"
}

// extensions covers common containers that the platform MIME table may not
// know about.
var extensions = map[string]Kind{
	".3gp":  KindVideo,
	".avi":  KindVideo,
	".flv":  KindVideo,
	".m2ts": KindVideo,
	".m4v":  KindVideo,
	".mkv":  KindVideo,
	".mov":  KindVideo,
	".mp4":  KindVideo,
	".mpeg": KindVideo,
	".mpg":  KindVideo,
	".ogv":  KindVideo,
	".ts":   KindVideo,
	".webm": KindVideo,
	".wmv":  KindVideo,
	".avif": KindImage,
	".bmp":  KindImage,
	".gif":  KindImage,
	".jpeg": KindImage,
	".jpg":  KindImage,
	".png":  KindImage,
	".tif":  KindImage,
	".tiff": KindImage,
	".webp": KindImage,
}

// sniffLen is the number of leading bytes [http.DetectContentType] reads.
const sniffLen = 512

// Detect classifies path by its extension, then by the system MIME table,
// then by sniffing the file's leading bytes.
func Detect(path string) Kind {
	ext := strings.ToLower(filepath.Ext(path))

	if k, ok := extensions[ext]; ok {
		return k
	}

	if ext != "" {
		if k := kindOf(mime.TypeByExtension(ext)); k != KindUnknown {
			return k
		}
	}

	return kindOf(sniff(path))
}

// kindOf maps a content type such as "video/mp4; codecs=avc1" to a [Kind].
func kindOf(contentType string) Kind {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return KindUnknown
	}

	switch {
	case strings.HasPrefix(mediaType, "video/"):
		return KindVideo
	case strings.HasPrefix(mediaType, "image/"):
		return KindImage
	}

	return KindUnknown
}

func sniff(path string) string {
	f, err := os.Open(path) //nolint:gosec // The media path is chosen by the local user.
	if err != nil {
		return ""
	}

	defer f.Close() //nolint:errcheck // Read-only file.

	buf := make([]byte, sniffLen)

	n, err := io.ReadFull(f, buf)
	if err != nil && n == 0 {
		return ""
	}

	return http.DetectContentType(buf[:n])
}

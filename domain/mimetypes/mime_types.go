package mimetypes

import "mime"

type MIME string

const (
	Unknown MIME = "unknown"

	ImagePNG  MIME = "image/png"
	ImageJPEG MIME = "image/jpeg"
	ImageGIF  MIME = "image/gif"

	VideoMP4  MIME = "video/mp4"
	VideoWebM MIME = "video/webm"

	ApplicationOctetStream MIME = "application/octet-stream"
)

// Effective resolves the MIME type an assembled blob is stored under.
// A size-variant tag always denotes a server-side rendition, which is an
// image regardless of the declared type of the original file.
func Effective(declared string, sizeType string) MIME {
	if sizeType != "" {
		return ImageJPEG
	}
	if declared == "" {
		return Unknown
	}
	mt, _, err := mime.ParseMediaType(declared)
	if err != nil {
		return Unknown
	}
	return MIME(mt)
}

func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

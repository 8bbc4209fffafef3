package mimetypes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEffective(t *testing.T) {
	req := require.New(t)

	// A size variant always denotes a server-side image rendition.
	req.Equal(ImageJPEG, Effective("video/mp4", "m"))
	req.Equal(ImageJPEG, Effective("", "x"))

	req.Equal(VideoMP4, Effective("video/mp4", ""))
	req.Equal(MIME("image/png"), Effective("image/png; charset=binary", ""))

	req.Equal(Unknown, Effective("", ""))
	req.Equal(Unknown, Effective("not a mime", ""))
}

func TestMatches(t *testing.T) {
	req := require.New(t)

	mt, ok := Matches("image/png; charset=binary", ImagePNG)
	req.True(ok)
	req.Equal(ImagePNG, mt)

	_, ok = Matches("image/jpeg", ImagePNG)
	req.False(ok)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFileKey_Deterministic(t *testing.T) {
	req := require.New(t)

	// Given identical inputs
	// Then both requests converge on the same key
	req.Equal(NewFileKey(42, 1000, ""), NewFileKey(42, 1000, ""))
	req.Equal(NewFileKey(42, 1000, "m"), NewFileKey(42, 1000, "m"))
}

func TestNewFileKey_NoCollisions(t *testing.T) {
	req := require.New(t)

	base := NewFileKey(42, 1000, "")
	req.NotEqual(base, NewFileKey(42, 1001, ""))
	req.NotEqual(base, NewFileKey(43, 1000, ""))
	req.NotEqual(base, NewFileKey(42, 1000, "m"))
	req.NotEqual(NewFileKey(42, 1000, "m"), NewFileKey(42, 1000, "x"))
}

func TestPartsFor(t *testing.T) {
	req := require.New(t)

	req.Equal(4, PartsFor(2_000_000, 512_000))
	req.Equal(1, PartsFor(100, 512_000))
	req.Equal(2, PartsFor(2*512_000-1, 512_000))
	req.Equal(2, PartsFor(2*512_000, 512_000))
}

func TestProgressFor_MonotonicAndComplete(t *testing.T) {
	req := require.New(t)

	prev := 0
	for part := 0; part < 4; part++ {
		pct := ProgressFor(part, 4)
		req.Greater(pct, prev)
		prev = pct
	}
	req.Equal(100, ProgressFor(3, 4))
	req.Equal(25, ProgressFor(0, 4))
}

func TestInputFile_Classification(t *testing.T) {
	req := require.New(t)

	video := InputFile{Width: 1280, Height: 720, Duration: 12.5}
	req.True(video.IsVideo())
	req.False(video.IsImage())

	image := InputFile{Width: 800, Height: 600}
	req.True(image.IsImage())
	req.False(image.IsVideo())

	document := InputFile{}
	req.False(document.IsImage())
	req.False(document.IsVideo())
}

func TestMessage_FindMedia_ScansPrimaryThenExtras(t *testing.T) {
	req := require.New(t)

	msg := Message{
		Media:  &Media{ID: 1, FileReference: []byte{0x01}},
		Extras: []Media{{ID: 2, FileReference: []byte{0x02}}},
	}

	primary, ok := msg.FindMedia(1)
	req.True(ok)
	req.Equal([]byte{0x01}, primary.FileReference)

	extra, ok := msg.FindMedia(2)
	req.True(ok)
	req.Equal([]byte{0x02}, extra.FileReference)

	_, ok = msg.FindMedia(3)
	req.False(ok)
}

func TestDownloadingFile_Complete(t *testing.T) {
	req := require.New(t)

	file := DownloadingFile{ID: 1, Size: 100}
	req.False(file.Complete())

	file.BlobKey = "blob:1_100"
	req.True(file.Complete())
}

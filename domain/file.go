// Package domain contains core concepts of the media transfer engine.
// This file defines the transfer state records and the fileKey derivation
// that every transfer map is indexed by.
package domain

import (
	"fmt"
	"math"
)

type FileID int64

// FileKey is the deterministic identifier of one logical file. Two requests
// with the same id, size and size variant always converge on the same key.
type FileKey string

func NewFileKey(id FileID, size int64, sizeType string) FileKey {
	if sizeType == "" {
		return FileKey(fmt.Sprintf("%d_%d", id, size))
	}
	return FileKey(fmt.Sprintf("%d_%d_%s", id, size, sizeType))
}

const KB = 1024
const MB = KB * KB

// FileLocation carries the remote locators required for every part request.
// The file reference is opaque and time limited; the service rejects stale
// ones with FILE_REFERENCE_EXPIRED.
type FileLocation struct {
	DCID          int
	AccessHash    int64
	FileReference []byte
	SizeType      string
}

// DownloadingFile is one registry entry for a queued download. Entries are
// value snapshots: always re-read the latest from the registry before
// mutating, then replace the whole entry.
type DownloadingFile struct {
	ID       FileID
	Size     int64
	FileType string
	FileLocation

	PartSize   int
	PartsCount int
	// LastPart is the highest completed part index, -1 until the first part
	// lands. It never decreases and never exceeds PartsCount-1.
	LastPart int

	// Downloading is the cooperative cancel/pause flag, observed at part
	// boundaries only.
	Downloading bool
	Progress    int

	// BlobKey is the terminal artifact key. Once set the download is
	// complete and no further parts are fetched.
	BlobKey string

	// Owning message, when known. Used to refresh an expired file reference.
	Folder    FolderID
	MessageID string
}

func (f DownloadingFile) Key() FileKey {
	return NewFileKey(f.ID, f.Size, f.SizeType)
}

func (f DownloadingFile) Complete() bool {
	return f.BlobKey != ""
}

// PartsFor computes how many fixed-size parts cover size bytes.
func PartsFor(size int64, partSize int) int {
	return int(math.Ceil(float64(size) / float64(partSize)))
}

// ProgressFor is the percentage after part (zero-based) has completed.
func ProgressFor(part, partsCount int) int {
	return int(math.Round(float64(part+1) / float64(partsCount) * 100))
}

// StreamingFile backs on-demand range reads for progressive playback. It has
// no part count or progress; every read is independent and addressed by an
// arbitrary offset.
type StreamingFile struct {
	ID   FileID
	Size int64
	FileLocation

	// Owning message back-reference, lookup-only. Needed to recover the
	// current file reference after an expiry.
	Folder    FolderID
	MessageID string

	Streaming bool
}

func (f StreamingFile) Key() FileKey {
	return NewFileKey(f.ID, f.Size, "")
}

// InputFile is a file staged for upload, owned by the pending outgoing
// message and destroyed when the send completes or is cancelled.
type InputFile struct {
	Key      FileKey
	FileName string
	FileType string
	Size     int64

	// Optional thumbnail staged alongside the main content.
	ThumbKey  FileKey
	ThumbSize int64

	// Present on visual media; a duration classifies the file as video.
	Width    int
	Height   int
	Duration float64

	// Transient per-part progress of the main content, 0-100, monotonic.
	Progress int
}

func (f InputFile) IsVideo() bool {
	return f.Duration > 0
}

func (f InputFile) IsImage() bool {
	return f.Width > 0 && f.Height > 0 && f.Duration == 0
}

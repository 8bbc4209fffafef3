package domain

// DownloadRequest asks the scheduler to start or resume one file download.
type DownloadRequest struct {
	ID         FileID `validate:"required"`
	Size       int64  `validate:"required,gt=0"`
	PartSize   int    `validate:"required,gt=0"`
	DCID       int    `validate:"required"`
	AccessHash int64
	// FileReference may be stale; the scheduler pauses and asks for a
	// refresh when the service rejects it.
	FileReference []byte
	SizeType      string
	FileType      string

	// Owning message, optional. Enables reference refresh on expiry.
	Folder    FolderID
	MessageID string
}

func (r DownloadRequest) Key() FileKey {
	return NewFileKey(r.ID, r.Size, r.SizeType)
}

// StreamRequest asks for a single arbitrary byte range, independent of any
// sequential download progress.
type StreamRequest struct {
	ID         FileID `validate:"required"`
	Size       int64  `validate:"required,gt=0"`
	PartSize   int    `validate:"required,gt=0"`
	OffsetSize int64  `validate:"gte=0"`
	DCID       int
	AccessHash int64
	// FileReference, when set, is a fresh reference the caller already knows
	// about; it is merged into the streaming entry before the read.
	FileReference []byte

	Folder    FolderID
	MessageID string
}

func (r StreamRequest) Key() FileKey {
	return NewFileKey(r.ID, r.Size, "")
}

// UploadMeta describes a staged file to the transport before its parts are
// sent.
type UploadMeta struct {
	Key      FileKey
	FileName string
	FileType string
	Size     int64
}

// UploadParams is the part geometry the transport assigns to one upload.
type UploadParams struct {
	FileID       int64
	PartSize     int
	LastPartSize int
	PartsCount   int
	FileName     string
	FileType     string
	IsLarge      bool
}

// UploadPart is one part send: the assigned params plus the part index and
// its bytes.
type UploadPart struct {
	Params UploadParams
	Part   int
	Bytes  []byte
}

// PartRequest addresses one byte range of a remote file.
type PartRequest struct {
	ID               FileID
	PartSize         int
	OffsetSize       int64
	DCID             int
	AccessHash       int64
	FileReference    []byte
	SizeType         string
	OriginalSizeType string
	// Precise false lets the server round the range up to an aligned block.
	Precise bool
}

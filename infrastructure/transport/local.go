// Package transport provides a filesystem-backed transport for local
// development and end-to-end runs: downloads read ranges of files named by
// file id under a root directory, uploads land next to them.
package transport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"media-lab/domain"
	"media-lab/errors"
	"os"
	"path/filepath"
	"time"
)

type LocalTransport struct {
	root     string
	partSize int
	log      *slog.Logger
}

func NewLocalTransport(root string, partSize int, log *slog.Logger) *LocalTransport {
	return &LocalTransport{root: root, partSize: partSize, log: log}
}

func (t *LocalTransport) PrepareUploadingFile(ctx context.Context, meta domain.UploadMeta) (domain.UploadParams, error) {
	if meta.Size <= 0 {
		return domain.UploadParams{}, errors.ErrMissingMetadata
	}

	partsCount := domain.PartsFor(meta.Size, t.partSize)
	lastPartSize := int(meta.Size - int64(partsCount-1)*int64(t.partSize))

	return domain.UploadParams{
		FileID:       time.Now().UnixNano(),
		PartSize:     t.partSize,
		LastPartSize: lastPartSize,
		PartsCount:   partsCount,
		FileName:     meta.FileName,
		FileType:     meta.FileType,
		IsLarge:      meta.Size > 10*domain.MB,
	}, nil
}

func (t *LocalTransport) UploadFilePart(ctx context.Context, part domain.UploadPart) error {
	path := filepath.Join(t.root, fmt.Sprintf("up_%d", part.Params.FileID))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.NewTransportError(err.Error())
	}
	defer f.Close()

	offset := int64(part.Part) * int64(part.Params.PartSize)
	if _, err := f.WriteAt(part.Bytes, offset); err != nil {
		return errors.NewTransportError(err.Error())
	}
	return nil
}

func (t *LocalTransport) DownloadFilePart(ctx context.Context, req domain.PartRequest) ([]byte, error) {
	path := filepath.Join(t.root, fmt.Sprintf("%d", req.ID))
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewTransportError(err.Error())
	}
	defer f.Close()

	buf := make([]byte, req.PartSize)
	n, err := f.ReadAt(buf, req.OffsetSize)
	if err != nil && err != io.EOF {
		return nil, errors.NewTransportError(err.Error())
	}
	if n == 0 {
		return nil, errors.NewTransportError("empty range")
	}
	return buf[:n], nil
}

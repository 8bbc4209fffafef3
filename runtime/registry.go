// Package runtime drives part-by-part transfers: the shared registry, the
// lane scheduler, the upload pipeline and the stream accessor. It
// orchestrates the transport without owning the message domain.
package runtime

import (
	"media-lab/domain"
	"sync"
)

// TransferRegistry is the process-wide map of in-flight downloads and
// streams, keyed by the derived fileKey. Entries are value snapshots and
// are only ever replaced whole; components re-read the latest entry right
// before writing back so no update is built from a stale copy.
type TransferRegistry struct {
	mu          sync.RWMutex
	downloading map[domain.FileKey]domain.DownloadingFile
	streaming   map[domain.FileKey]domain.StreamingFile
}

func NewTransferRegistry() *TransferRegistry {
	return &TransferRegistry{
		downloading: make(map[domain.FileKey]domain.DownloadingFile),
		streaming:   make(map[domain.FileKey]domain.StreamingFile),
	}
}

func (r *TransferRegistry) GetDownloading(key domain.FileKey) (domain.DownloadingFile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	file, ok := r.downloading[key]
	return file, ok
}

func (r *TransferRegistry) PutDownloading(file domain.DownloadingFile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.downloading[file.Key()] = file
}

func (r *TransferRegistry) DeleteDownloading(key domain.FileKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.downloading, key)
}

// DownloadingFiles returns a copy of the downloading map so callers can
// render it without holding the registry lock.
func (r *TransferRegistry) DownloadingFiles() map[domain.FileKey]domain.DownloadingFile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshot := make(map[domain.FileKey]domain.DownloadingFile, len(r.downloading))
	for key, file := range r.downloading {
		snapshot[key] = file
	}
	return snapshot
}

func (r *TransferRegistry) GetStreaming(key domain.FileKey) (domain.StreamingFile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	file, ok := r.streaming[key]
	return file, ok
}

func (r *TransferRegistry) PutStreaming(file domain.StreamingFile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.streaming[file.Key()] = file
}

func (r *TransferRegistry) StreamingFiles() map[domain.FileKey]domain.StreamingFile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshot := make(map[domain.FileKey]domain.StreamingFile, len(r.streaming))
	for key, file := range r.streaming {
		snapshot[key] = file
	}
	return snapshot
}

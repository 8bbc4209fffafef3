package runtime

import (
	"context"
	"log/slog"
	"media-lab/contract"
	"media-lab/domain"
	"media-lab/domain/mimetypes"
	"media-lab/errors"
	"media-lab/runtime/workers"
	"sync"
	"time"
)

// DownloadScheduler accepts download requests without blocking the caller
// and spreads them over a fixed set of lanes. Each lane runs its tasks
// strictly sequentially, so at most laneCount part fetches are ever in
// flight system-wide. Lane assignment is round-robin by arrival order,
// independent of lane occupancy.
type DownloadScheduler struct {
	mu        sync.Mutex
	next      int
	lanes     []*workers.LaneWorker
	registry  contract.IRegistry
	transport contract.ITransport
	store     contract.IPartStore
	refresher contract.IReferenceRefresher
	log       *slog.Logger
}

func NewDownloadScheduler(
	registry contract.IRegistry,
	transport contract.ITransport,
	store contract.IPartStore,
	refresher contract.IReferenceRefresher,
	laneCount int,
	queueSize int,
	throttle time.Duration,
	log *slog.Logger,
) *DownloadScheduler {
	lanes := make([]*workers.LaneWorker, 0, laneCount)
	for i := 0; i < laneCount; i++ {
		lanes = append(lanes, workers.NewLaneWorker(i, queueSize, throttle, log))
	}
	return &DownloadScheduler{
		lanes:     lanes,
		registry:  registry,
		transport: transport,
		store:     store,
		refresher: refresher,
		log:       log,
	}
}

// Lanes exposes the lane workers so the orchestrator can run them under
// supervision.
func (s *DownloadScheduler) Lanes() []*workers.LaneWorker {
	return s.lanes
}

// Download registers (or resumes) a download and queues its part loop on the
// next lane. Calling it for a file that is already complete or already
// downloading is a no-op; a paused file naturally resumes from lastPart+1.
func (s *DownloadScheduler) Download(ctx context.Context, req domain.DownloadRequest) domain.FileKey {
	key := req.Key()

	entry, ok := s.registry.GetDownloading(key)
	if ok && (entry.Complete() || entry.Downloading) {
		return key
	}

	if !ok {
		entry = domain.DownloadingFile{
			ID:         req.ID,
			Size:       req.Size,
			FileType:   req.FileType,
			PartSize:   req.PartSize,
			PartsCount: domain.PartsFor(req.Size, req.PartSize),
			LastPart:   -1,
		}
	}

	// A re-request carries the freshest locators the caller knows about,
	// typically a reference obtained after an expiry pause.
	entry.FileLocation = domain.FileLocation{
		DCID:          req.DCID,
		AccessHash:    req.AccessHash,
		FileReference: req.FileReference,
		SizeType:      req.SizeType,
	}
	if req.Folder != 0 {
		entry.Folder = req.Folder
		entry.MessageID = req.MessageID
	}
	entry.Downloading = true
	s.registry.PutDownloading(entry)

	lane := s.nextLane()
	s.log.Debug("Download queued", "key", key, "lane", lane, "last_part", entry.LastPart)
	s.lanes[lane].Submit(ctx, func(taskCtx context.Context) {
		s.fetchParts(taskCtx, key)
	})
	return key
}

// Cancel pauses a download cooperatively. The in-flight part, if any,
// completes and is recorded; no further parts are fetched.
func (s *DownloadScheduler) Cancel(key domain.FileKey) {
	entry, ok := s.registry.GetDownloading(key)
	if !ok || entry.Complete() {
		return
	}
	entry.Downloading = false
	s.registry.PutDownloading(entry)
}

// Reset forgets a download entirely and drops its stored parts, so the next
// request starts from scratch.
func (s *DownloadScheduler) Reset(key domain.FileKey) {
	s.registry.DeleteDownloading(key)
	if err := s.store.Purge(key); err != nil {
		s.log.Error("Failed to purge parts", "key", key, "error", err)
	}
}

// nextLane increments the round-robin counter on every new request,
// regardless of lane occupancy. Deterministic fairness over load balancing.
func (s *DownloadScheduler) nextLane() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	lane := s.next % len(s.lanes)
	s.next++
	return lane
}

// fetchParts resumes the download from lastPart+1. Every iteration re-reads
// the registry so an external pause or reset is observed before the next
// part request goes out.
func (s *DownloadScheduler) fetchParts(ctx context.Context, key domain.FileKey) {
	for {
		entry, ok := s.registry.GetDownloading(key)
		if !ok || !entry.Downloading || entry.Complete() {
			return
		}

		part := entry.LastPart + 1
		if part >= entry.PartsCount {
			return
		}

		data, err := s.transport.DownloadFilePart(ctx, domain.PartRequest{
			ID:            entry.ID,
			PartSize:      entry.PartSize,
			OffsetSize:    int64(part) * int64(entry.PartSize),
			DCID:          entry.DCID,
			AccessHash:    entry.AccessHash,
			FileReference: entry.FileReference,
			SizeType:      entry.SizeType,
			Precise:       true,
		})
		if err != nil {
			s.abort(ctx, key, err)
			return
		}

		if err := s.store.AppendPart(key, part, data); err != nil {
			s.log.Error("Failed to store part", "key", key, "part", part, "error", err)
			s.abort(ctx, key, nil)
			return
		}
		// Drop the buffer reference before the next fetch so at most one
		// part per lane is retained in memory.
		data = nil

		if !s.recordPart(ctx, key, part) {
			return
		}
	}
}

// recordPart advances lastPart and progress on the freshest entry, and
// assembles the final blob after the last part. Returns false when the loop
// should stop.
func (s *DownloadScheduler) recordPart(ctx context.Context, key domain.FileKey, part int) bool {
	entry, ok := s.registry.GetDownloading(key)
	if !ok {
		return false
	}

	if part > entry.LastPart {
		entry.LastPart = part
	}
	if pct := domain.ProgressFor(part, entry.PartsCount); pct > entry.Progress {
		entry.Progress = pct
	}

	if entry.LastPart == entry.PartsCount-1 {
		mimeType := mimetypes.Effective(entry.FileType, entry.SizeType)
		declared := ""
		if mimeType != mimetypes.Unknown {
			declared = string(mimeType)
		}
		blobKey, err := s.store.AssembleBlob(key, entry.PartsCount, declared)
		if err != nil {
			s.log.Error("Failed to assemble blob", "key", key, "error", err)
			entry.Downloading = false
			s.registry.PutDownloading(entry)
			return false
		}
		entry.BlobKey = blobKey
		entry.Downloading = false
		s.registry.PutDownloading(entry)
		s.log.Info("Download complete", "key", key, "parts", entry.PartsCount, "blob", blobKey)
		return false
	}

	s.registry.PutDownloading(entry)
	// A pause flipped while this part was in flight stops the loop here,
	// with the completed part recorded for the next resume.
	return entry.Downloading
}

// abort pauses the download without advancing lastPart. An expired file
// reference additionally asks for the owning message to be refreshed; the
// download stays paused until a new explicit request arrives with the fresh
// reference.
func (s *DownloadScheduler) abort(ctx context.Context, key domain.FileKey, err error) {
	entry, ok := s.registry.GetDownloading(key)
	if !ok {
		return
	}
	entry.Downloading = false
	s.registry.PutDownloading(entry)

	if err == nil || !errors.IsFileReferenceExpired(err) {
		if err != nil {
			s.log.Debug("Download aborted", "key", key, "error", err)
		}
		return
	}

	s.log.Info("File reference expired, refreshing owner", "key", key, "message_id", entry.MessageID)
	if entry.MessageID == "" {
		return
	}
	if err := s.refresher.RefreshMessage(ctx, entry.Folder, entry.MessageID, nil); err != nil {
		s.log.Error("Failed to refresh message", "message_id", entry.MessageID, "error", err)
	}
}

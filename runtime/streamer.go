package runtime

import (
	"context"
	"log/slog"
	"media-lab/contract"
	"media-lab/domain"
	"media-lab/errors"
)

// StreamAccessor serves arbitrary byte ranges for seek-driven playback,
// bypassing the lane scheduler entirely. Unlike queued downloads, an
// expired file reference here is retried exactly once after a refresh, so a
// player seek does not need a second explicit call.
type StreamAccessor struct {
	registry  contract.IRegistry
	transport contract.ITransport
	source    contract.IMessageSource
	refresher contract.IReferenceRefresher
	log       *slog.Logger
}

func NewStreamAccessor(
	registry contract.IRegistry,
	transport contract.ITransport,
	source contract.IMessageSource,
	refresher contract.IReferenceRefresher,
	log *slog.Logger,
) *StreamAccessor {
	return &StreamAccessor{
		registry:  registry,
		transport: transport,
		source:    source,
		refresher: refresher,
		log:       log,
	}
}

// LoadPart reads [req.OffsetSize, req.OffsetSize+req.PartSize) for the file.
// It returns nil when the range cannot be served now; the caller treats that
// as a transient miss, not an error.
func (a *StreamAccessor) LoadPart(ctx context.Context, req domain.StreamRequest) []byte {
	entry := a.entryFor(req)

	data, err := a.fetch(ctx, entry, req)
	if err == nil {
		return data
	}
	if !errors.IsFileReferenceExpired(err) {
		a.log.Debug("Stream read failed", "key", entry.Key(), "offset", req.OffsetSize, "error", err)
		return nil
	}

	refreshed, ok := a.refreshReference(ctx, entry)
	if !ok {
		return nil
	}

	// Exactly one retry with the refreshed reference.
	data, err = a.fetch(ctx, refreshed, req)
	if err != nil {
		a.log.Debug("Stream retry failed", "key", entry.Key(), "offset", req.OffsetSize, "error", err)
		return nil
	}
	return data
}

// entryFor lazily creates the streaming entry, or merges a caller-supplied
// fresh reference into the existing one.
func (a *StreamAccessor) entryFor(req domain.StreamRequest) domain.StreamingFile {
	key := req.Key()
	entry, ok := a.registry.GetStreaming(key)
	if !ok {
		entry = domain.StreamingFile{
			ID:   req.ID,
			Size: req.Size,
			FileLocation: domain.FileLocation{
				DCID:          req.DCID,
				AccessHash:    req.AccessHash,
				FileReference: req.FileReference,
			},
			Folder:    req.Folder,
			MessageID: req.MessageID,
		}
	} else if len(req.FileReference) > 0 {
		entry.FileReference = req.FileReference
	}
	entry.Streaming = true
	a.registry.PutStreaming(entry)
	return entry
}

func (a *StreamAccessor) fetch(ctx context.Context, entry domain.StreamingFile, req domain.StreamRequest) ([]byte, error) {
	return a.transport.DownloadFilePart(ctx, domain.PartRequest{
		ID:            entry.ID,
		PartSize:      req.PartSize,
		OffsetSize:    req.OffsetSize,
		DCID:          entry.DCID,
		AccessHash:    entry.AccessHash,
		FileReference: entry.FileReference,
		// Non-precise: the server may serve a larger aligned range.
		Precise: false,
	})
}

// refreshReference locates the owning message's media, triggers a refresh,
// and returns the entry updated with the refreshed reference. When the
// owner or its media cannot be found the read fails with no retry.
func (a *StreamAccessor) refreshReference(ctx context.Context, entry domain.StreamingFile) (domain.StreamingFile, bool) {
	folder := entry.Folder
	if folder == 0 {
		folder = a.source.ActiveFolder()
	}

	msg, ok := a.source.GetMessage(folder, entry.MessageID)
	if !ok {
		a.log.Debug("Owning message not found", "key", entry.Key(), "message_id", entry.MessageID)
		return entry, false
	}
	if _, ok := msg.FindMedia(entry.ID); !ok {
		a.log.Debug("Owning media not found", "key", entry.Key(), "message_id", entry.MessageID)
		return entry, false
	}

	if err := a.refresher.RefreshMessage(ctx, folder, entry.MessageID, nil); err != nil {
		a.log.Error("Failed to refresh message", "message_id", entry.MessageID, "error", err)
		return entry, false
	}

	msg, ok = a.source.GetMessage(folder, entry.MessageID)
	if !ok {
		return entry, false
	}
	media, ok := msg.FindMedia(entry.ID)
	if !ok {
		return entry, false
	}

	latest, ok := a.registry.GetStreaming(entry.Key())
	if !ok {
		latest = entry
	}
	latest.FileReference = media.FileReference
	a.registry.PutStreaming(latest)
	return latest, true
}

package runtime

import (
	"context"
	"log/slog"
	"media-lab/contract"
	"media-lab/domain"
	"sync"

	"github.com/samber/lo"
)

// UploadPipeline drives the part-by-part upload of a folder's pending
// outgoing message, one file at a time. Main content and thumbnail of a
// single file are the only operations allowed to run concurrently; parts of
// each are strictly sequential to preserve ordering on the remote side.
type UploadPipeline struct {
	transport contract.ITransport
	store     contract.IPartStore
	outbox    contract.IOutbox
	log       *slog.Logger
}

func NewUploadPipeline(
	transport contract.ITransport,
	store contract.IPartStore,
	outbox contract.IOutbox,
	log *slog.Logger,
) *UploadPipeline {
	return &UploadPipeline{
		transport: transport,
		store:     store,
		outbox:    outbox,
		log:       log,
	}
}

// UploadPending uploads every file attached to the folder's sending
// message. A vanished or replaced sending message means the user cancelled:
// the pass stops silently, already-sent parts stay orphaned on the remote
// side. A finished file (other than the last) is dropped from the pending
// list so re-invoking the batch never resends it.
func (p *UploadPipeline) UploadPending(ctx context.Context, folder domain.FolderID) {
	msg, ok := p.outbox.GetSendingMessage(folder)
	if !ok {
		return
	}

	files := msg.Files
	for i, file := range files {
		current, ok := p.outbox.GetSendingMessage(folder)
		if !ok || current.ID != msg.ID {
			p.log.Debug("Sending message gone, aborting batch", "folder", folder)
			return
		}
		if !current.HasFile(file.Key) {
			// Already sent during a previous run of this batch.
			continue
		}

		if !p.uploadFile(ctx, folder, msg.ID, file) {
			// No automatic retry; the caller re-invokes the whole batch.
			return
		}

		p.purgeStaged(file)
		p.outbox.CreateMessage(folder, domain.Message{
			Folder:   folder,
			ParentID: msg.ID,
			Position: i,
		})
		p.log.Info("File uploaded", "folder", folder, "key", file.Key, "position", i)

		if i < len(files)-1 {
			p.dropFromPending(folder, msg.ID, file.Key)
		}
	}
}

// uploadFile sends the main content and the optional thumbnail in parallel.
// Only the main content emits progress.
func (p *UploadPipeline) uploadFile(ctx context.Context, folder domain.FolderID, msgID string, file domain.InputFile) bool {
	var wg sync.WaitGroup
	var mainOK bool

	wg.Add(1)
	go func() {
		defer wg.Done()
		mainOK = p.uploadParts(ctx, folder, msgID, file.Key, domain.UploadMeta{
			Key:      file.Key,
			FileName: file.FileName,
			FileType: file.FileType,
			Size:     file.Size,
		}, file.Key, true)
	}()

	if file.ThumbKey != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Thumbnail failures are not fatal and emit no progress.
			p.uploadParts(ctx, folder, msgID, file.ThumbKey, domain.UploadMeta{
				Key:      file.ThumbKey,
				FileName: file.FileName,
				FileType: file.FileType,
				Size:     file.ThumbSize,
			}, file.Key, false)
		}()
	}

	wg.Wait()
	return mainOK
}

// uploadParts loops over parts 0..partsCount-1. Before each part it
// re-checks that the sending message still references the owner file; a
// stale reference aborts silently with no rollback of sent parts.
func (p *UploadPipeline) uploadParts(
	ctx context.Context,
	folder domain.FolderID,
	msgID string,
	key domain.FileKey,
	meta domain.UploadMeta,
	ownerKey domain.FileKey,
	emitProgress bool,
) bool {
	params, err := p.transport.PrepareUploadingFile(ctx, meta)
	if err != nil {
		p.log.Debug("No upload parameters, skipping file", "key", key, "error", err)
		return false
	}

	for part := 0; part < params.PartsCount; part++ {
		current, ok := p.outbox.GetSendingMessage(folder)
		if !ok || current.ID != msgID || !current.HasFile(ownerKey) {
			p.log.Debug("Owner vanished mid-upload, aborting file", "key", key, "part", part)
			return false
		}

		size := params.PartSize
		if part == params.PartsCount-1 && params.LastPartSize > 0 {
			size = params.LastPartSize
		}

		data, err := p.store.ReadRange(key, int64(part)*int64(params.PartSize), size)
		if err != nil {
			p.log.Debug("Missing staged bytes, aborting file", "key", key, "part", part, "error", err)
			return false
		}

		if err := p.transport.UploadFilePart(ctx, domain.UploadPart{Params: params, Part: part, Bytes: data}); err != nil {
			p.log.Debug("Part upload failed, aborting file", "key", key, "part", part, "error", err)
			return false
		}
		data = nil

		if emitProgress {
			p.emitProgress(folder, msgID, ownerKey, part, params.PartsCount)
		}
	}
	return true
}

// emitProgress writes the recomputed percentage back onto the freshest
// sending message snapshot, never letting it decrease.
func (p *UploadPipeline) emitProgress(folder domain.FolderID, msgID string, key domain.FileKey, part, partsCount int) {
	current, ok := p.outbox.GetSendingMessage(folder)
	if !ok || current.ID != msgID {
		return
	}
	for i, f := range current.Files {
		if f.Key != key {
			continue
		}
		if pct := domain.ProgressFor(part, partsCount); pct > f.Progress {
			// Replace the file list rather than mutating the shared slice;
			// registry snapshots must stay immutable.
			files := make([]domain.InputFile, len(current.Files))
			copy(files, current.Files)
			files[i].Progress = pct
			current.Files = files
			p.outbox.SetSendingMessage(folder, current)
		}
		return
	}
}

func (p *UploadPipeline) purgeStaged(file domain.InputFile) {
	if err := p.store.Purge(file.Key); err != nil {
		p.log.Error("Failed to purge staged bytes", "key", file.Key, "error", err)
	}
	if file.ThumbKey != "" {
		if err := p.store.Purge(file.ThumbKey); err != nil {
			p.log.Error("Failed to purge staged thumbnail", "key", file.ThumbKey, "error", err)
		}
	}
}

func (p *UploadPipeline) dropFromPending(folder domain.FolderID, msgID string, key domain.FileKey) {
	current, ok := p.outbox.GetSendingMessage(folder)
	if !ok || current.ID != msgID {
		return
	}
	current.Files = lo.Filter(current.Files, func(f domain.InputFile, _ int) bool {
		return f.Key != key
	})
	p.outbox.SetSendingMessage(folder, current)
}

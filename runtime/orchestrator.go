package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"media-lab/contract"
	"media-lab/domain"
	"time"

	"github.com/go-playground/validator/v10"
)

// Orchestrator is the engine facade the application layer talks to. It owns
// the registry and the lane workers, runs them under the supervisor, and
// validates requests at the boundary. Its lifetime is the engine's lifetime;
// nothing here is ambient global state.
type Orchestrator struct {
	log        *slog.Logger
	supervisor contract.ISupervisor
	registry   contract.IRegistry
	outbox     contract.IOutbox
	scheduler  *DownloadScheduler
	uploader   *UploadPipeline
	streamer   *StreamAccessor
	validate   *validator.Validate
}

func NewOrchestrator(
	log *slog.Logger,
	supervisor contract.ISupervisor,
	registry contract.IRegistry,
	transport contract.ITransport,
	store contract.IPartStore,
	outbox contract.IOutbox,
	source contract.IMessageSource,
	refresher contract.IReferenceRefresher,
	laneCount int,
	queueSize int,
	throttle time.Duration,
) *Orchestrator {
	return &Orchestrator{
		log:        log,
		supervisor: supervisor,
		registry:   registry,
		outbox:     outbox,
		scheduler:  NewDownloadScheduler(registry, transport, store, refresher, laneCount, queueSize, throttle, log),
		uploader:   NewUploadPipeline(transport, store, outbox, log),
		streamer:   NewStreamAccessor(registry, transport, source, refresher, log),
		validate:   validator.New(),
	}
}

// Start places every lane under supervision and runs the supervisor until
// ctx is cancelled.
func (o *Orchestrator) Start(ctx context.Context) {
	for _, lane := range o.scheduler.Lanes() {
		o.supervisor.Add(lane)
	}
	go o.supervisor.Run(ctx)
	o.log.Info("Transfer engine started", "lanes", len(o.scheduler.Lanes()))
}

func (o *Orchestrator) Stop() {
	o.supervisor.Stop()
}

func (o *Orchestrator) Download(ctx context.Context, req domain.DownloadRequest) (domain.FileKey, error) {
	if err := o.validate.Struct(req); err != nil {
		return "", fmt.Errorf("invalid download request: %w", err)
	}
	return o.scheduler.Download(ctx, req), nil
}

func (o *Orchestrator) CancelDownload(key domain.FileKey) {
	o.scheduler.Cancel(key)
}

func (o *Orchestrator) ResetDownload(key domain.FileKey) {
	o.scheduler.Reset(key)
}

func (o *Orchestrator) UploadPending(ctx context.Context, folder domain.FolderID) {
	o.uploader.UploadPending(ctx, folder)
}

func (o *Orchestrator) LoadStreamPart(ctx context.Context, req domain.StreamRequest) ([]byte, error) {
	if err := o.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid stream request: %w", err)
	}
	return o.streamer.LoadPart(ctx, req), nil
}

// Snapshots of the three caller-visible maps.

func (o *Orchestrator) DownloadingFiles() map[domain.FileKey]domain.DownloadingFile {
	return o.registry.DownloadingFiles()
}

func (o *Orchestrator) StreamingFiles() map[domain.FileKey]domain.StreamingFile {
	return o.registry.StreamingFiles()
}

func (o *Orchestrator) SendingMessages() map[domain.FolderID]domain.Message {
	return o.outbox.SendingMessages()
}

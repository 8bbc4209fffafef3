//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"media-lab/domain"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// ITransport is the remote file API the engine consumes. The wire encoding
// is out of scope; failures surface as errors.TransportError values.
type ITransport interface {
	PrepareUploadingFile(ctx context.Context, meta domain.UploadMeta) (domain.UploadParams, error)
	UploadFilePart(ctx context.Context, part domain.UploadPart) error
	DownloadFilePart(ctx context.Context, req domain.PartRequest) ([]byte, error)
}

// IPartStore is the durable scratch storage for file parts and assembled
// blobs. The engine calls it, it does not own its internals.
type IPartStore interface {
	Stage(key domain.FileKey, data []byte) error
	ReadRange(key domain.FileKey, offset int64, size int) ([]byte, error)
	AppendPart(key domain.FileKey, part int, data []byte) error
	AssembleBlob(key domain.FileKey, partsCount int, mimeType string) (string, error)
	ReadBlob(blobKey string) ([]byte, string, error)
	Purge(key domain.FileKey) error
}

// IRegistry is the single source of truth for in-flight transfer state.
// Entries are value snapshots replaced whole; callers must re-read the
// latest entry immediately before mutating it.
type IRegistry interface {
	GetDownloading(key domain.FileKey) (domain.DownloadingFile, bool)
	PutDownloading(file domain.DownloadingFile)
	DeleteDownloading(key domain.FileKey)
	DownloadingFiles() map[domain.FileKey]domain.DownloadingFile

	GetStreaming(key domain.FileKey) (domain.StreamingFile, bool)
	PutStreaming(file domain.StreamingFile)
	StreamingFiles() map[domain.FileKey]domain.StreamingFile
}

// IOutbox is the outgoing message queue the upload pipeline reads and
// writes, one sending message per folder.
type IOutbox interface {
	CreateMessage(folder domain.FolderID, msg domain.Message) domain.Message
	GetSendingMessage(folder domain.FolderID) (domain.Message, bool)
	SetSendingMessage(folder domain.FolderID, msg domain.Message)
	DeleteSendingMessage(folder domain.FolderID)
	SendingMessages() map[domain.FolderID]domain.Message
}

// IMessageSource resolves messages for error recovery: the active folder
// supplies the lookup context when a streaming entry carries none.
type IMessageSource interface {
	ActiveFolder() domain.FolderID
	GetMessage(folder domain.FolderID, id string) (domain.Message, bool)
}

// IReferenceRefresher re-fetches a message's media so its file reference
// becomes valid again. The continuation, when non-nil, runs once the
// refreshed reference is available.
type IReferenceRefresher interface {
	RefreshMessage(ctx context.Context, folder domain.FolderID, id string, onRefreshed func()) error
}

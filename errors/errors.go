package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrWorkerPanic     = fmt.Errorf("worker panic")
	ErrMissingBytes    = fmt.Errorf("requested byte range is not staged")
	ErrMissingMetadata = fmt.Errorf("no upload metadata for file")
	ErrBlobNotFound    = fmt.Errorf("assembled blob not found")
	ErrPartNotFound    = fmt.Errorf("file part not found")
)

// FileReferenceExpired is the only transport failure message the engine
// inspects. Every other transport error is opaque and never retried.
const FileReferenceExpired = "FILE_REFERENCE_EXPIRED"

// TransportError carries the failure message returned by the remote service.
type TransportError struct {
	Message string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %s", e.Message)
}

func NewTransportError(message string) *TransportError {
	return &TransportError{Message: message}
}

// IsFileReferenceExpired reports whether err is the expired file reference
// signal that requires refreshing the owning message.
func IsFileReferenceExpired(err error) bool {
	var te *TransportError
	return stderrors.As(err, &te) && te.Message == FileReferenceExpired
}

package audit

import "errors"

var (
	// ErrEventValidation indicates event validation failed.
	ErrEventValidation = errors.New("event validation failed")

	// ErrStorageNotAvailable indicates the storage sink has been closed.
	ErrStorageNotAvailable = errors.New("storage sink is unavailable")

	// ErrBufferFull indicates the async buffer is full and the event was dropped.
	ErrBufferFull = errors.New("async buffer is full")
)

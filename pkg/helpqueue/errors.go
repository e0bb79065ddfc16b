package helpqueue

import "errors"

var (
	// ErrDuplicateRequest is returned by Enqueue when the group already has
	// a live request in the queue.
	ErrDuplicateRequest = errors.New("group already in queue")

	// ErrNotFound is returned by Dismiss when the group has no live request.
	ErrNotFound = errors.New("group not in queue")

	// ErrEmptyQueue is returned by Next when no requests are waiting.
	ErrEmptyQueue = errors.New("no group in queue")

	// ErrCorrupted is returned by every operation after a mutation panicked
	// mid-flight. Partial mutations cannot be trusted, so the queue refuses
	// to operate until Reset is called.
	ErrCorrupted = errors.New("queue state corrupted, reset required")
)

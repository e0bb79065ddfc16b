package audit

import (
	"context"
	"sync"
	"time"
)

// AsyncOptions configures the buffering behavior of the async writer.
type AsyncOptions struct {
	BufferSize   int                       // Max events queued in memory; further events are dropped with ErrBufferFull.
	StoreTimeout time.Duration             // Per-event storage timeout, decoupled from the request context.
	ErrorHandler func(event Event, err error) // Called for failed background writes; nil means failures are silent.
}

// AsyncWriter is a Storage decorator that hands events to a background
// worker, so slow sinks (the spreadsheet) never block request handling.
// Store never waits on the underlying sink.
type AsyncWriter struct {
	storage Storage
	events  chan Event
	done    chan struct{}
	wg      sync.WaitGroup
	options AsyncOptions
}

// NewAsyncWriter starts the background worker. Call Close during shutdown to
// drain buffered events.
func NewAsyncWriter(storage Storage, opts AsyncOptions) *AsyncWriter {
	if storage == nil {
		panic("audit: storage cannot be nil")
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = 256
	}
	if opts.StoreTimeout <= 0 {
		opts.StoreTimeout = 10 * time.Second
	}

	aw := &AsyncWriter{
		storage: storage,
		events:  make(chan Event, opts.BufferSize),
		done:    make(chan struct{}),
		options: opts,
	}

	aw.wg.Add(1)
	go aw.worker()

	return aw
}

// Store implements Storage. It enqueues the event and returns immediately;
// ErrBufferFull reports a dropped event, ErrStorageNotAvailable a closed
// writer. Auditing is best-effort, so callers treat both as log-and-continue.
func (aw *AsyncWriter) Store(ctx context.Context, event Event) error {
	select {
	case <-aw.done:
		return ErrStorageNotAvailable
	default:
	}

	// A Close racing the send below can finish the drain with this event
	// still buffered; best-effort delivery tolerates the loss.
	select {
	case aw.events <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrBufferFull
	}
}

func (aw *AsyncWriter) worker() {
	defer aw.wg.Done()

	for {
		select {
		case event := <-aw.events:
			aw.store(event)
		case <-aw.done:
			// Drain whatever is buffered before exiting.
			for {
				select {
				case event := <-aw.events:
					aw.store(event)
				default:
					return
				}
			}
		}
	}
}

// store isolates the sink from request contexts so a client timeout cannot
// cancel an in-flight audit write.
func (aw *AsyncWriter) store(event Event) {
	ctx, cancel := context.WithTimeout(context.Background(), aw.options.StoreTimeout)
	defer cancel()

	if err := aw.storage.Store(ctx, event); err != nil && aw.options.ErrorHandler != nil {
		aw.options.ErrorHandler(event, err)
	}
}

// Close stops intake and waits for the worker to drain the buffer. The
// context bounds the wait; on timeout some events may remain unflushed.
func (aw *AsyncWriter) Close(ctx context.Context) error {
	close(aw.done)

	finished := make(chan struct{})
	go func() {
		aw.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

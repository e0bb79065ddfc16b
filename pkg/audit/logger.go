package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// contextExtractor extracts string values from context.
// It returns (value, found) where found indicates if extraction succeeded.
type contextExtractor func(context.Context) (string, bool)

// Logger records audit events.
type Logger interface {
	Log(ctx context.Context, action Action, opts ...EventOption) error
}

type logger struct {
	storage            Storage
	requestIDExtractor contextExtractor
}

// Option configures the logger.
type Option func(*logger)

// WithRequestIDExtractor registers a function that pulls the request
// correlation ID out of the context for every logged event.
func WithRequestIDExtractor(fn func(context.Context) (string, bool)) Option {
	return func(l *logger) { l.requestIDExtractor = fn }
}

// New creates an audit logger writing to storage.
func New(storage Storage, opts ...Option) Logger {
	if storage == nil {
		panic("audit: storage cannot be nil")
	}
	l := &logger{storage: storage}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Log records a resolved help request.
func (l *logger) Log(ctx context.Context, action Action, opts ...EventOption) error {
	event := Event{
		ID:        uuid.New().String(),
		Action:    action,
		CreatedAt: time.Now(),
	}
	if l.requestIDExtractor != nil {
		if requestID, ok := l.requestIDExtractor(ctx); ok {
			event.RequestID = requestID
		}
	}
	for _, opt := range opts {
		opt(&event)
	}

	if err := event.Validate(); err != nil {
		return err
	}
	return l.storage.Store(ctx, event)
}

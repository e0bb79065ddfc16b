package audit

import (
	"context"
	"log/slog"

	hdlog "github.com/classlab/helpdesk/pkg/logger"
)

// SlogStorage writes audit events to a structured log. It is the fallback
// sink when no spreadsheet is configured, keeping the audit trail visible in
// process output.
type SlogStorage struct {
	log *slog.Logger
}

// NewSlogStorage creates a log-backed audit sink.
func NewSlogStorage(log *slog.Logger) *SlogStorage {
	if log == nil {
		panic("audit: logger cannot be nil")
	}
	return &SlogStorage{log: log}
}

// Store implements Storage. It never fails.
func (s *SlogStorage) Store(ctx context.Context, event Event) error {
	s.log.InfoContext(ctx, "audit event",
		slog.String("id", event.ID),
		hdlog.Action(string(event.Action)),
		hdlog.GroupNumber(event.Group),
		hdlog.Channel(event.Channel),
		hdlog.Helper(event.Helper),
		hdlog.RequestID(event.RequestID),
		slog.Time("created_at", event.CreatedAt),
	)
	return nil
}

package audit

import (
	"context"
	"fmt"
	"time"
)

// Action names the audited resolution of a help request.
type Action string

const (
	ActionServed    Action = "help.served"
	ActionDismissed Action = "help.dismissed"
	ActionCleared   Action = "help.cleared"
)

// Event is a single audit trail entry.
type Event struct {
	ID        string    `json:"id"`
	Action    Action    `json:"action"`
	Group     uint16    `json:"group"`
	Channel   uint64    `json:"voice_channel"`
	Helper    string    `json:"helper,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks that the event carries the required fields.
func (e *Event) Validate() error {
	if e.Action == "" {
		return fmt.Errorf("%w: action is required", ErrEventValidation)
	}
	return nil
}

// EventOption applies configuration to an Event during creation.
type EventOption func(*Event)

// WithGroup records the group whose request was resolved.
func WithGroup(group uint16) EventOption {
	return func(e *Event) { e.Group = group }
}

// WithChannel records the voice-channel handle of the resolved request.
func WithChannel(channel uint64) EventOption {
	return func(e *Event) { e.Channel = channel }
}

// WithHelper records the helper label supplied by the caller.
func WithHelper(name string) EventOption {
	return func(e *Event) { e.Helper = name }
}

// Storage persists audit events.
type Storage interface {
	Store(ctx context.Context, event Event) error
}

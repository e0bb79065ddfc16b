package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// GroupNumber records a requesting group under the key "group".
func GroupNumber(group uint16) slog.Attr {
	return slog.Int("group", int(group))
}

// Channel records a voice-channel handle under the key "voice_channel".
func Channel(channel uint64) slog.Attr {
	return slog.Uint64("voice_channel", channel)
}

// Helper records the helper label under the key "helper".
func Helper(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("helper", name)
}

// Action records the audited action name under the key "action".
func Action(name string) slog.Attr {
	return slog.String("action", name)
}

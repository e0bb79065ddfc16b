package requestid

import "context"

type contextKey struct{}

// WithContext stores the request ID in the context.
func WithContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKey{}, requestID)
}

// FromContext extracts the request ID, or "" when none is set.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, ok := ctx.Value(contextKey{}).(string)
	if !ok {
		return ""
	}
	return requestID
}

// Extractor adapts FromContext to the (value, found) shape used by the
// audit logger's context extractors.
func Extractor() func(ctx context.Context) (string, bool) {
	return func(ctx context.Context) (string, bool) {
		if requestID := FromContext(ctx); requestID != "" {
			return requestID, true
		}
		return "", false
	}
}

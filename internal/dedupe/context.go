package dedupe

import "context"

type contextKey string

const (
	sessionIDKey contextKey = "sessionID"
	rootKey      contextKey = "scanRoot"
)

// WithSessionID returns a context carrying the scan session identifier.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionIDFromContext extracts the scan session identifier, if present.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(sessionIDKey).(string)
	return id, ok && id != ""
}

// WithRoot returns a context carrying the scan root path.
func WithRoot(ctx context.Context, root string) context.Context {
	return context.WithValue(ctx, rootKey, root)
}

// RootFromContext extracts the scan root path, if present.
func RootFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	root, ok := ctx.Value(rootKey).(string)
	return root, ok && root != ""
}

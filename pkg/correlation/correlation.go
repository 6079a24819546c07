package correlation

import "context"

type contextKey struct{}

// Header is the request header the correlation ID is read from and echoed to.
const Header = "X-Correlation-ID"

// NewContext returns a context carrying the correlation ID.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the correlation ID or "" when none is set.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}

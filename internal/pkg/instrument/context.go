package instrument

import "context"

type correlationIDKey struct{}

// SetCorrelationID stores a correlation ID in the context so every log record
// produced downstream carries it.
func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, cid)
}

// GetCorrelationID returns the correlation ID from the context, or an empty
// string when none is set.
func GetCorrelationID(ctx context.Context) string {
	if cid, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return cid
	}
	return ""
}

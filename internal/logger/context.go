package logger

import (
	"context"

	"github.com/google/uuid"
)

// Correlation fields ride on the request context so every log line emitted
// while serving a request carries the same request_id and user_id. The
// request id middleware and the identity middleware are the only writers;
// everything downstream reads through Ctx.

type ctxKey int

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyUserID
)

// WithRequestID stores a correlation ID on the context. A blank id means the
// caller received none from upstream, so a fresh UUID is minted.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// RequestIDFromContext returns the correlation ID, or "" when none was set.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID).(string)
	return id
}

// WithUserID records the authenticated user on the context once the identity
// middleware has accepted the request.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyUserID, id)
}

// contextFields collects whichever correlation fields are present on ctx.
func contextFields(ctx context.Context) []Field {
	fields := make([]Field, 0, 2)
	if id := RequestIDFromContext(ctx); id != "" {
		fields = append(fields, String("request_id", id))
	}
	if id, _ := ctx.Value(ctxKeyUserID).(string); id != "" {
		fields = append(fields, String("user_id", id))
	}
	return fields
}

// Ctx returns the default logger enriched with ctx's correlation fields.
// This is the entry point for handlers, services and middleware.
func Ctx(ctx context.Context) Logger {
	return Default().WithContext(ctx)
}

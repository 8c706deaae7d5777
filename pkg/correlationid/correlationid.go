// Package correlationid carries a correlation id through a context so every log
// line of one logical operation can be grouped.
package correlationid

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

// New returns a fresh correlation id.
func New() string {
	return uuid.NewString()
}

// NewContext returns a copy of ctx carrying id.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the correlation id stored in ctx, if any.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

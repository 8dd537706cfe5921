package contexthelpers

import (
	"context"
	"net/http"
)

// WithSessionID stores the game session ID in the request context.
func WithSessionID(r *http.Request, sessionID string) *http.Request {
	ctx := r.Context()
	ctx = context.WithValue(ctx, sessionIDContextKey, sessionID)
	return r.WithContext(ctx)
}

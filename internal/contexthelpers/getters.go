package contexthelpers

import (
	"context"
)

// SessionID returns the game session ID set with WithSessionID or an empty string.
func SessionID(ctx context.Context) string {
	sessionID, ok := ctx.Value(sessionIDContextKey).(string)
	if !ok {
		return ""
	}

	return sessionID
}

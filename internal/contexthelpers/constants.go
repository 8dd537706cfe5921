package contexthelpers

type contextKey string

const sessionIDContextKey = contextKey("sessionID")

package main

import (
	"net/http"
	"time"
)

const timeoutBody = `{"detail":"The investigation took too long. Please try again."}`

// handlerTimeout is a little shorter than the server's write timeout so that the
// timeout handler has a chance to respond before the server closes the connection.
func handlerTimeout(writeTimeout time.Duration) time.Duration {
	return writeTimeout - 500*time.Millisecond //nolint:mnd // 500ms
}

// timeoutHandler responds with a 503 Service Unavailable error when the handler does not meet the deadline.
// A non-positive timeout disables the deadline.
func timeoutHandler(h http.Handler, timeout time.Duration) http.Handler {
	if timeout <= 0 {
		return h
	}
	return http.TimeoutHandler(h, timeout, timeoutBody)
}

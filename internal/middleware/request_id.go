package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
)

// RequestID tags every request with an id the telemetry log can correlate
// on. An id arriving on X-Request-Id or X-Correlation-Id is kept; otherwise
// a fresh one is minted. The id is echoed back on the response so clients
// can quote it when reporting a failed till operation.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := readRequestID(r)
			if id == "" {
				id = newRequestID()
			}
			r.Header.Set("X-Request-Id", id)
			w.Header().Set("X-Request-Id", id)
			next.ServeHTTP(w, r)
		})
	}
}

func newRequestID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// Never block a till request over an id; the log line will
		// carry the placeholder instead.
		return "untracked"
	}
	return hex.EncodeToString(buf)
}

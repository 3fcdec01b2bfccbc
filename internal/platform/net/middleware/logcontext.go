package middleware

import (
	"net/http"

	pnet "chefbot/internal/platform/net"
)

// LogContext copies the chi request id onto the logger context and echoes it back
// as X-Request-ID. Mount after RequestID.
func LogContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := pnet.RequestID(r.Context())
		if id != "" {
			w.Header().Set("X-Request-ID", id)
			r = r.WithContext(pnet.WithRequestID(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}

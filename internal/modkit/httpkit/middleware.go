package httpkit

import (
	"net/http"
	"time"

	"chefbot/internal/platform/net/middleware"
)

// StackOptions tunes the per-version middleware stack
type StackOptions struct {
	CORSOrigins []string
	SlowRequest time.Duration
}

// CommonStack is the middleware every versioned API scope runs
// the process-wide chain (request id, recovery, timeout) is middleware.Defaults
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	origins := o.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	slow := o.SlowRequest
	if slow <= 0 {
		slow = 10 * time.Second
	}
	return []func(http.Handler) http.Handler{
		middleware.AccessLog(middleware.AccessLogOptions{Slow: slow}),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: origins, MaxAge: 300}),
	}
}

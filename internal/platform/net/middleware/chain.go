// Package middleware holds the HTTP middleware chefbot mounts; chi types stay inside
package middleware

import (
	"compress/flate"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Heartbeat answers GET path with 200 before any other middleware runs
func Heartbeat(path string) func(http.Handler) http.Handler { return chimw.Heartbeat(path) }

// CORSOptions is the part of go-chi/cors chefbot configures
type CORSOptions struct {
	AllowedOrigins []string
	MaxAge         int
}

// CORS allows the browser front end to call the JSON API
func CORS(o CORSOptions) func(http.Handler) http.Handler {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: o.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         o.MaxAge,
	})
}

// Defaults is the process-wide chain every API mux starts with
// requestTimeout bounds a whole request including the transcript and model calls
func Defaults(requestTimeout time.Duration) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		chimw.RealIP,
		chimw.RequestID,
		LogContext,
		RecoverJSON,
		chimw.Timeout(requestTimeout),
		chimw.NewCompressor(flate.DefaultCompression).Handler,
		chimw.NoCache,
	}
}

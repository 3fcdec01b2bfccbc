package middleware

import (
	stdhttp "net/http"
	"runtime/debug"

	perr "chefbot/internal/platform/errors"
	"chefbot/internal/platform/logger"
	phttp "chefbot/internal/platform/net/http"
)

// RecoverJSON converts panics into a JSON 500 envelope and logs the stack with the request id
// http.ErrAbortHandler is re-panicked so the server can abort the connection
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}

			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("panic recovered")

			phttp.Write(w, r, phttp.Error(perr.PanicErrf("internal error")))
		}()
		next.ServeHTTP(w, r)
	})
}

package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "chefbot/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()
	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || len(b.Mw) != 0 {
		t.Fatalf("unexpected defaults: %+v", b)
	}
	var r phttp.Router
	if b.Subrouter(r) != r {
		t.Fatalf("default Subrouter should be identity")
	}
	b.Register(r)
}

func TestBuild_CopiesMiddlewares(t *testing.T) {
	t.Parallel()
	hits := 0
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hits++; next.ServeHTTP(w, r) })
	}
	src := []func(http.Handler) http.Handler{mw}
	b := Build(WithMiddlewares(src...))
	src[0] = nil

	if len(b.Mw) != 1 || b.Mw[0] == nil {
		t.Fatalf("Built.Mw must not alias the caller slice")
	}
}

func TestBuilt_MountUnderPrefixWithMiddleware(t *testing.T) {
	t.Parallel()

	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)

	b := Build(
		WithPrefix("/chef"),
		WithMiddlewares(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-Module", "chef")
				next.ServeHTTP(w, r)
			})
		}),
		WithRegister(func(r phttp.Router) {
			r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("pong")) })
		}),
	)
	b.Mount(r)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chef/ping", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
		t.Fatalf("status=%d body=%q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Module") != "chef" {
		t.Fatalf("module middleware not applied")
	}
}

func TestBuilt_MountWithoutPrefix(t *testing.T) {
	t.Parallel()

	mux := chi.NewRouter()
	Build(WithRegister(func(r phttp.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	})).Mount(phttp.AdaptChi(mux))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
}

// Package http provides the chef endpoints
package http

import (
	"net/http"

	"chefbot/internal/modkit/httpkit"
	"chefbot/internal/services/chef/domain"
)

// Deps are the handler dependencies
type Deps struct {
	Workflow domain.WorkflowPort
}

type handlers struct {
	deps Deps
}

// Register mounts the chef routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.PostJSON(r, "/summarize", h.summarize)
	httpkit.PostJSON(r, "/transcript", h.transcript)
}

// POST /chef/summarize
// 200 with Result (outcome ok or not_culinary), errors carry the workflow reason
func (h *handlers) summarize(r *http.Request, in domain.LinkRequest) (any, error) {
	res, err := h.deps.Workflow.Summarize(r.Context(), in.URL)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// POST /chef/transcript
func (h *handlers) transcript(r *http.Request, in domain.LinkRequest) (any, error) {
	res, err := h.deps.Workflow.ShowTranscript(r.Context(), in.URL)
	if err != nil {
		return nil, err
	}
	return res, nil
}

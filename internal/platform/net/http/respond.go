// Package http is the platform HTTP layer: the router seam, the server and the
// JSON envelope every endpoint answers with
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "chefbot/internal/platform/errors"
	pnet "chefbot/internal/platform/net"
)

// Envelope is the body of every response
// Reason is the stable machine tag of a failure (e.g. "transcripts_disabled")
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Reason     string         `json:"reason,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// Failure builds the envelope for err; the status comes from its code
func Failure(err error, reqID string) Envelope {
	status := perr.HTTPStatus(err)
	wr := perr.WireFrom(err)
	if wr.Reason == "" {
		wr.Reason = perr.ReasonOf(err)
	}
	return Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		Code:       wr.Code,
		Reason:     wr.Reason,
		Error:      wr.Message,
		RequestID:  reqID,
	}
}

// Response is the value return-style handlers produce
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// OK returns a 200 response carrying data
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error returns a response rendered from err
func Error(err error) Response { return Response{Body: err} }

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		Write(w, r, h(r))
	}
}

// Write renders resp as an envelope stamped with the request id
func Write(w stdhttp.ResponseWriter, r *stdhttp.Request, resp Response) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}

	reqID := pnet.RequestID(r.Context())
	if err, ok := resp.Body.(error); ok && err != nil {
		env := Failure(err, reqID)
		writeJSON(w, env.StatusCode, env)
		return
	}

	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	writeJSON(w, status, Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		RequestID:  reqID,
		Data:       resp.Body,
	})
}

func writeJSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package domain

// LinkRequest is the body of both chef endpoints
// a blank url is reported by the workflow as missing_input, so it is not required here
type LinkRequest struct {
	URL string `json:"url" validate:"max=2048"`
}

package models

// ErrorResponse is the JSON body shape used for every non-2xx response
// the service produces: auth rejections, validation failures, and both
// flavours of internal error.
type ErrorResponse struct {
	// Error is a human-readable description of what went wrong.
	Error string `json:"error"`
}

// Package apierror provides the canonical response envelope for the API.
// Every body that leaves the server — success or failure — goes through this
// package so clients always see {success, message, data?} and internal details
// (stack traces, DB errors) never leak.
package apierror

// Response is the envelope for all JSON responses.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// OK wraps a successful payload.
func OK(msg string, data interface{}) *Response {
	return &Response{Success: true, Message: msg, Data: data}
}

// Fail wraps a failure with no payload.
func Fail(msg string) *Response {
	return &Response{Success: false, Message: msg}
}

// ValidationResponse carries per-field validation failures.
type ValidationResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationResponse {
	return &ValidationResponse{Success: false, Message: "Validasi gagal", Fields: fields}
}

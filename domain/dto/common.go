package dto

// ErrorResponse is the uniform error body returned for every failed request.
type ErrorResponse struct {
	Message      string `json:"message"`
	StatusReason string `json:"status_reason"`
	StatusCode   int    `json:"status_code"`
	Timestamp    string `json:"timestamp"`
	RequestURI   string `json:"request_uri"`
}

// MessageResponse wraps a human-readable confirmation, e.g. after a delete.
type MessageResponse struct {
	Message string `json:"message"`
}

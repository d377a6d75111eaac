package models

// RequestInfo captures the context of one outbound API request for
// structured logging.
type RequestInfo struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Status int    `json:"status,omitempty"`
}

// ErrorInfo carries structured error details alongside a log entry.
type ErrorInfo struct {
	Message    string `json:"message"`
	Type       string `json:"type,omitempty"`        // failure category, e.g. "transport", "http_status"
	StatusCode int    `json:"status_code,omitempty"` // HTTP status, when one was received
}

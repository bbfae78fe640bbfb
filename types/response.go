package types

// SubmissionResponse is the success body returned by the intake endpoints.
// Data is only populated on the catalogue path.
type SubmissionResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the failure body produced by the error middleware.
type ErrorResponse struct {
	Type    string `json:"type"`
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// StatusResponse is a minimal body for health and status endpoints.
type StatusResponse struct {
	Status string `json:"status"`
}

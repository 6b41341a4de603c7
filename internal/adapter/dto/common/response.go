package common

// SuccessResponse is the envelope of every successful JSON response
type SuccessResponse struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope of every failed JSON response. Details lists
// per-field problems for validation failures.
type ErrorResponse struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status      string            `json:"status"`
	Environment string            `json:"environment"`
	Services    map[string]string `json:"services,omitempty"`
}

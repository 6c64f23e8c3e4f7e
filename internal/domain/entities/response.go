package entities

// Response status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope wraps every API response
type Envelope struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// HealthStatus is the payload of GET /api/health
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}

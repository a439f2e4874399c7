package dto

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time,omitempty"`
}

// DBHealthResponse is returned by GET /health/db
type DBHealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

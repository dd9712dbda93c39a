package model

import "time"

// SelectionRequest is the body for PUT /api/v1/sessions/{id}/filters.
// Keys are column query keys ("agency", "job_title"); missing keys mean All.
type SelectionRequest struct {
	Filters map[string]string `json:"filters"`
}

// SessionResponse describes a dashboard session.
type SessionResponse struct {
	ID        string            `json:"id"`
	Selection map[string]string `json:"selection"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// TableInfo describes the loaded source table.
type TableInfo struct {
	Source   string    `json:"source"`
	Type     string    `json:"type"`
	Rows     int       `json:"rows"`
	LoadedAt time.Time `json:"loaded_at"`
}

// HealthResponse is returned by GET /api/v1/health.
type HealthResponse struct {
	Status   string    `json:"status"`
	Table    TableInfo `json:"table"`
	Sessions int       `json:"sessions"`
}

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

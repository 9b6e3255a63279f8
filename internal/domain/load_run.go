package domain

import "time"

type LoadRunStatus string

const (
	LoadRunStatusSuccess LoadRunStatus = "success"
	LoadRunStatusFailure LoadRunStatus = "failure"
)

// LoadRun registra uma tentativa de carga de uma fonte de dados
type LoadRun struct {
	ID         string        `json:"id"`
	Source     string        `json:"source"`
	Status     LoadRunStatus `json:"status"`
	Format     string        `json:"format,omitempty"`
	Rows       int           `json:"rows"`
	Error      string        `json:"error,omitempty"`
	StartedAt  time.Time     `json:"started_at"`
	DurationMs int64         `json:"duration_ms"`
}

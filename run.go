package windfind

import (
	"context"
	"time"
)

// Run represents one completed pipeline run and its per-domain results.
type Run struct {
	ID        string         `json:"id"`
	Area      string         `json:"area"`
	CreatedAt time.Time      `json:"createdAt"`
	Records   []DomainRecord `json:"records"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.Area == "" {
		return Errorf(EINVALID, "run area required")
	}
	return nil
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	ID   *string `json:"id"`
	Area *string `json:"area"`

	Limit int `json:"limit"`
}

// RunService persists pipeline runs.
type RunService interface {
	// CreateRun stores a run and its records.
	CreateRun(ctx context.Context, run *Run) error

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)
}

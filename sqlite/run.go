package sqlite

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sailhq/windfind"
)

// Compile-time interface verification.
var _ windfind.RunService = (*RunService)(nil)

// RunService implements windfind.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun stores a run and its per-domain records.
func (s *RunService) CreateRun(ctx context.Context, run *windfind.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.CreatedAt = time.Now().UTC()

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, area, created_at)
		VALUES (?, ?, ?)
	`, run.ID, run.Area, run.CreatedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	for i, rec := range run.Records {
		data, err := json.Marshal(rec.Record)
		if err != nil {
			return err
		}
		if _, err := s.db.ExecContext(ctx, `
			INSERT INTO run_records (run_id, domain, record, position)
			VALUES (?, ?, ?, ?)
		`, run.ID, rec.Domain, string(data), i); err != nil {
			return err
		}
	}
	return nil
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter windfind.RunFilter) ([]*windfind.Run, error) {
	var query strings.Builder
	query.WriteString(`SELECT id, area, created_at FROM runs`)

	var where []string
	var args []any
	if filter.ID != nil {
		where = append(where, "id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Area != nil {
		where = append(where, "area = ?")
		args = append(args, *filter.Area)
	}
	if len(where) > 0 {
		query.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	query.WriteString(" ORDER BY created_at DESC, id")
	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*windfind.Run
	for rows.Next() {
		var run windfind.Run
		var createdAt string
		if err := rows.Scan(&run.ID, &run.Area, &createdAt); err != nil {
			return nil, err
		}
		run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, err
		}
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, run := range runs {
		if run.Records, err = s.findRecords(ctx, run.ID); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

func (s *RunService) findRecords(ctx context.Context, runID string) ([]windfind.DomainRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT domain, record FROM run_records
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []windfind.DomainRecord
	for rows.Next() {
		var rec windfind.DomainRecord
		var data string
		if err := rows.Scan(&rec.Domain, &data); err != nil {
			return nil, err
		}
		rec.Record = &windfind.Node{}
		if err := json.Unmarshal([]byte(data), rec.Record); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

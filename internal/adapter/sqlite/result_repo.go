package sqlite

import (
	"context"
	"fmt"

	"github.com/laupow/openshift-ansible/internal/domain"
	"github.com/laupow/openshift-ansible/internal/port"
)

// SaveResult records one check outcome for a host.
func (s *Store) SaveResult(ctx context.Context, host string, result domain.Result) error {
	query := `
		INSERT INTO check_results (host, check_name, status, message)
		VALUES (?, ?, ?, ?)
	`
	if _, err := s.db.ExecContext(ctx, query,
		host, result.Check, string(result.Status), result.Message); err != nil {
		return fmt.Errorf("failed to save check result: %w", err)
	}
	return nil
}

// ListResults returns the most recent outcomes for a host, newest first.
func (s *Store) ListResults(ctx context.Context, host string, limit int) ([]port.ResultRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, host, check_name, status, message, created_at
		FROM check_results
		WHERE host = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	rows, err := s.db.QueryContext(ctx, query, host, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query check results: %w", err)
	}
	defer rows.Close()

	var records []port.ResultRecord
	for rows.Next() {
		var rec port.ResultRecord
		var status string
		if err := rows.Scan(&rec.ID, &rec.Host, &rec.Check, &status, &rec.Message, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan check result: %w", err)
		}
		rec.Status = domain.Status(status)
		records = append(records, rec)
	}
	return records, rows.Err()
}

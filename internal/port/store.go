package port

import (
	"context"
	"time"

	"github.com/laupow/openshift-ansible/internal/domain"
)

// ResultRecord is a persisted check outcome.
type ResultRecord struct {
	ID        int64
	Host      string
	Check     string
	Status    domain.Status
	Message   string
	CreatedAt time.Time
}

// ResultStore persists check outcomes for later inspection.
type ResultStore interface {
	// SaveResult records one check outcome for a host.
	SaveResult(ctx context.Context, host string, result domain.Result) error

	// ListResults returns the most recent outcomes for a host, newest
	// first, up to limit.
	ListResults(ctx context.Context, host string, limit int) ([]ResultRecord, error)
}

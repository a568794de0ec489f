package port

import (
	"context"

	"github.com/laupow/openshift-ansible/internal/domain"
)

// FactSource supplies the pre-materialized facts for the host under check.
// Checks never gather data themselves; the hosting framework (or one of the
// adapters standing in for it) does that before any check runs.
type FactSource interface {
	// Gather returns the host facts. Implementations must return facts
	// that are complete for the duration of one preflight run; checks do
	// not re-fetch.
	Gather(ctx context.Context) (*domain.HostFacts, error)
}

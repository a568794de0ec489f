package check

import (
	"github.com/laupow/openshift-ansible/internal/domain"
)

// Environment is everything a check may look at for one host. It is built
// once per run from pre-materialized facts and never mutated by checks.
type Environment struct {
	// Host identifies the host under check, for logging and result history.
	Host string

	// Facts is the host's observed state.
	Facts *domain.HostFacts
}

// ActivationFunc is the base activation predicate inherited from the
// framework. It may impose skip conditions unrelated to any one check,
// e.g. a check disabled by configuration.
type ActivationFunc func(name string, env *Environment) (bool, error)

// AlwaysActive is the default base predicate.
func AlwaysActive(string, *Environment) (bool, error) { return true, nil }

// DisabledChecks returns a base predicate that skips any check whose name
// appears in the given list.
func DisabledChecks(names []string) ActivationFunc {
	disabled := make(map[string]struct{}, len(names))
	for _, n := range names {
		disabled[n] = struct{}{}
	}
	return func(name string, _ *Environment) (bool, error) {
		_, off := disabled[name]
		return !off, nil
	}
}

// Check is a single preflight validation rule. A check that is not active
// for a host is skipped entirely: it neither passes nor fails.
type Check interface {
	// Name is the stable identifier of the check.
	Name() string

	// Tags classify the check (e.g. "preflight").
	Tags() []string

	// IsActive decides whether the check applies to this host at all.
	IsActive(env *Environment) (bool, error)

	// Run evaluates the check. A failed validation is a normal Result
	// with StatusFail; a returned error means the check could not
	// produce a verdict at all.
	Run(env *Environment) (domain.Result, error)
}

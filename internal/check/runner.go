package check

import (
	"context"

	"go.uber.org/zap"

	"github.com/laupow/openshift-ansible/internal/domain"
	"github.com/laupow/openshift-ansible/internal/port"
)

// Runner executes registered checks against one host's environment.
// Each invocation is independent and touches no shared mutable state; the
// hosting framework may run many hosts in parallel with separate Runners.
type Runner struct {
	checks []Check
	store  port.ResultStore
	log    *zap.Logger
}

// NewRunner creates a Runner. store may be nil to disable result history.
func NewRunner(store port.ResultStore, log *zap.Logger) *Runner {
	return &Runner{store: store, log: log}
}

// Register adds a check. Checks run in registration order.
func (r *Runner) Register(c Check) {
	r.checks = append(r.checks, c)
}

// Run evaluates every registered check for the host and returns one result
// per check. Errors returned by a check become StatusError results rather
// than aborting the remaining checks; persistence failures are logged and
// do not alter verdicts.
func (r *Runner) Run(ctx context.Context, env *Environment) []domain.Result {
	results := make([]domain.Result, 0, len(r.checks))
	for _, c := range r.checks {
		res := r.runOne(c, env)
		results = append(results, res)

		switch res.Status {
		case domain.StatusSkipped:
			r.log.Info("check skipped", zap.String("check", c.Name()), zap.String("host", env.Host))
		case domain.StatusPass:
			r.log.Info("check passed", zap.String("check", c.Name()), zap.String("host", env.Host))
		case domain.StatusFail:
			r.log.Warn("check failed",
				zap.String("check", c.Name()),
				zap.String("host", env.Host),
				zap.String("msg", res.Message),
			)
		case domain.StatusError:
			r.log.Error("check errored",
				zap.String("check", c.Name()),
				zap.String("host", env.Host),
				zap.String("msg", res.Message),
			)
		}

		if r.store != nil {
			if err := r.store.SaveResult(ctx, env.Host, res); err != nil {
				r.log.Error("failed to record check result",
					zap.String("check", c.Name()),
					zap.Error(err),
				)
			}
		}
	}
	return results
}

func (r *Runner) runOne(c Check, env *Environment) domain.Result {
	active, err := c.IsActive(env)
	if err != nil {
		return domain.Result{Check: c.Name(), Status: domain.StatusError, Message: err.Error()}
	}
	if !active {
		return domain.Result{Check: c.Name(), Status: domain.StatusSkipped}
	}

	res, err := c.Run(env)
	if err != nil {
		return domain.Result{Check: c.Name(), Status: domain.StatusError, Message: err.Error()}
	}
	res.Check = c.Name()
	if res.Status == "" {
		res.Status = domain.StatusPass
	}
	return res
}

// AnyFailed reports whether any result should fail the host's preflight.
func AnyFailed(results []domain.Result) bool {
	for _, r := range results {
		if r.Failed() {
			return true
		}
	}
	return false
}

// Package disk implements the disk_availability preflight check: it
// verifies that a fixed set of filesystem paths has enough free space for
// the host's role groups before an install or an in-place upgrade.
package disk

import (
	"fmt"

	"github.com/laupow/openshift-ansible/internal/check"
	"github.com/laupow/openshift-ansible/internal/domain"
)

// Availability checks that recommended disk space is available on each
// monitored path. Evaluation is a pure function of the host facts; the
// check holds no per-run state and is safe to reuse across hosts.
type Availability struct {
	requirements []Requirement
	baseActive   check.ActivationFunc
}

var _ check.Check = (*Availability)(nil)

// NewAvailability creates the check with the default requirement table.
// base is the framework-level activation predicate; nil means always
// active.
func NewAvailability(base check.ActivationFunc) *Availability {
	if base == nil {
		base = check.AlwaysActive
	}
	return &Availability{
		requirements: DefaultRequirements(),
		baseActive:   base,
	}
}

// Name returns the check identifier.
func (c *Availability) Name() string { return "disk_availability" }

// Tags classifies this as a preflight check.
func (c *Availability) Tags() []string { return []string{"preflight"} }

// IsActive skips hosts whose role groups carry no disk space
// recommendation at all, then defers to the base predicate.
func (c *Availability) IsActive(env *check.Environment) (bool, error) {
	active := ActiveGroups(c.requirements)
	hasRecommendation := false
	for _, g := range env.Facts.GroupNames {
		if _, ok := active[g]; ok {
			hasRecommendation = true
			break
		}
	}
	if !hasRecommendation {
		return false, nil
	}
	return c.baseActive(c.Name(), env)
}

// Run evaluates each monitored path in table order and fails on the first
// path with insufficient free space. A mount table that does not resolve
// for a required path is returned as an error, not a failed verdict: it
// means availability could not be determined at all.
func (c *Availability) Run(env *check.Environment) (domain.Result, error) {
	facts := env.Facts
	if facts == nil {
		return domain.Result{}, domain.ErrNoFacts
	}

	mounts := facts.MountTable()
	deployCtx := facts.Context()

	override, err := ParseOverride(facts.MinHostDiskGB)
	if err != nil {
		return domain.Result{}, err
	}

	for _, req := range c.requirements {
		freeBytes, err := FreeBytes(req.Path, mounts)
		if err != nil {
			return domain.Result{}, err
		}

		requiredBytes := maxForGroups(req.Install, facts.GroupNames)
		overrideBytes := override.RequiredBytes(req, facts.GroupNames)
		if overrideBytes != 0 {
			requiredBytes = overrideBytes
		}

		// An in-place upgrade relaxes the requirement for paths the
		// upgrade table covers, but a user override still wins.
		if deployCtx == domain.ContextUpgrade && req.Upgrade != nil {
			requiredBytes = maxForGroups(req.Upgrade, facts.GroupNames)
			if overrideBytes != 0 {
				requiredBytes = overrideBytes
			}
		}

		if freeBytes < requiredBytes {
			msg := fmt.Sprintf(
				"Available disk space in %q (%.1f GB) is below minimum recommended (%.1f GB)",
				req.Path,
				float64(freeBytes)/float64(GB),
				float64(requiredBytes)/float64(GB),
			)

			// A failure under an upgrade context caused by the
			// user's own override deserves a pointer back to it.
			if overrideBytes != 0 && deployCtx == domain.ContextUpgrade {
				msg += fmt.Sprintf(
					"\n\nMake sure to account for decreased disk space during an upgrade\n"+
						"due to an existing deployment. Please check the value of\n"+
						"  openshift_check_min_host_disk_gb=%.1f\n"+
						"in your inventory, and lower the recommended disk space availability\n"+
						"if necessary for this upgrade.",
					float64(overrideBytes)/float64(GB),
				)
			}

			return domain.Result{
				Status:        domain.StatusFail,
				Message:       msg,
				Path:          req.Path,
				FreeBytes:     freeBytes,
				RequiredBytes: requiredBytes,
			}, nil
		}
	}

	return domain.Result{Status: domain.StatusPass}, nil
}

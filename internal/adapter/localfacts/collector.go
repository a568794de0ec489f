// Package localfacts gathers host facts from the machine the preflight
// runs on, for use when no orchestration framework has materialized them.
package localfacts

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"

	"github.com/laupow/openshift-ansible/internal/domain"
	"github.com/laupow/openshift-ansible/internal/port"
)

// Collector builds host facts from the live mount table. Role membership,
// override, and playbook context cannot be observed locally and are
// supplied by configuration.
type Collector struct {
	groupNames      []string
	minHostDiskGB   any
	playbookContext string
}

var _ port.FactSource = (*Collector)(nil)

// New creates a local fact collector.
func New(groupNames []string, minHostDiskGB any, playbookContext string) *Collector {
	return &Collector{
		groupNames:      groupNames,
		minHostDiskGB:   minHostDiskGB,
		playbookContext: playbookContext,
	}
}

// Gather reads the mount table and per-mount free space.
func (c *Collector) Gather(ctx context.Context) (*domain.HostFacts, error) {
	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list partitions: %w", err)
	}

	mounts := make([]domain.Mount, 0, len(partitions))
	for _, p := range partitions {
		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil {
			// Pseudo-filesystems and stale mounts are not useful
			// to the check; skip them.
			continue
		}
		free := int64(usage.Free)
		mounts = append(mounts, domain.Mount{
			Mount:         p.Mountpoint,
			SizeAvailable: &free,
		})
	}

	return &domain.HostFacts{
		GroupNames:      c.groupNames,
		Mounts:          mounts,
		MinHostDiskGB:   c.minHostDiskGB,
		PlaybookContext: c.playbookContext,
	}, nil
}

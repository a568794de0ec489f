// Package factfile loads host facts from a pre-materialized facts
// document, the way the hosting automation framework hands them to a
// check. The document is YAML (JSON being a subset) with the framework's
// conventional variable names.
package factfile

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/laupow/openshift-ansible/internal/domain"
	"github.com/laupow/openshift-ansible/internal/port"
)

// Source reads host facts from a file.
type Source struct {
	path string
}

var _ port.FactSource = (*Source)(nil)

// New creates a file-backed fact source.
func New(path string) *Source {
	return &Source{path: path}
}

// document mirrors the framework's variable names on the wire.
type document struct {
	GroupNames      []string      `yaml:"group_names"`
	AnsibleMounts   []mountRecord `yaml:"ansible_mounts"`
	MinHostDiskGB   any           `yaml:"openshift_check_min_host_disk_gb"`
	PlaybookContext string        `yaml:"r_openshift_health_checker_playbook_context"`
}

type mountRecord struct {
	Mount         string `yaml:"mount"`
	SizeAvailable *int64 `yaml:"size_available"`
}

// Gather parses the facts document.
func (s *Source) Gather(_ context.Context) (*domain.HostFacts, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read facts file: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse facts file %s: %w", s.path, err)
	}

	mounts := make([]domain.Mount, 0, len(doc.AnsibleMounts))
	for _, m := range doc.AnsibleMounts {
		mounts = append(mounts, domain.Mount{
			Mount:         m.Mount,
			SizeAvailable: m.SizeAvailable,
		})
	}

	return &domain.HostFacts{
		GroupNames:      doc.GroupNames,
		Mounts:          mounts,
		MinHostDiskGB:   doc.MinHostDiskGB,
		PlaybookContext: doc.PlaybookContext,
	}, nil
}

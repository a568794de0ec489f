package disk

import "os"

// GB is one decimal gigabyte. All thresholds and conversions use decimal
// gigabytes (10^9 bytes) for cross-implementation compatibility.
const GB int64 = 1_000_000_000

// Requirement is the minimum free space demanded for one path, per role
// group. Upgrade holds the relaxed values applied during an in-place
// upgrade; when nil, the Install values stand in both contexts.
type Requirement struct {
	Path    string
	Install map[string]int64
	Upgrade map[string]int64
}

// VarPath is the path the legacy uniform override applies to.
const VarPath = "/var"

// DefaultRequirements returns the recommended minimum disk space per path
// and role group, in table order. Values follow the official installation
// documentation's system requirements.
func DefaultRequirements() []Requirement {
	return []Requirement{
		{
			Path: VarPath,
			Install: map[string]int64{
				"masters": 40 * GB,
				"nodes":   15 * GB,
				"etcd":    20 * GB,
			},
			// An in-place upgrade needs headroom, not the full
			// footprint: part of the space is already occupied by
			// the existing deployment.
			Upgrade: map[string]int64{
				"masters": 10 * GB,
				"nodes":   5 * GB,
				"etcd":    5 * GB,
			},
		},
		{
			// Client binaries are copied here during install.
			Path: "/usr/local/bin",
			Install: map[string]int64{
				"masters": 1 * GB,
				"nodes":   1 * GB,
				"etcd":    1 * GB,
			},
		},
		{
			// Used as temporary storage in several cases.
			Path: os.TempDir(),
			Install: map[string]int64{
				"masters": 1 * GB,
				"nodes":   1 * GB,
				"etcd":    1 * GB,
			},
		},
	}
}

// ActiveGroups returns the union of all role groups named anywhere in the
// requirement table.
func ActiveGroups(reqs []Requirement) map[string]struct{} {
	groups := make(map[string]struct{})
	for _, req := range reqs {
		for g := range req.Install {
			groups[g] = struct{}{}
		}
		for g := range req.Upgrade {
			groups[g] = struct{}{}
		}
	}
	return groups
}

// maxForGroups returns the strictest requirement among the host's role
// groups, or 0 when the host has none of the listed roles.
func maxForGroups(byRole map[string]int64, groups []string) int64 {
	var max int64
	for _, g := range groups {
		if v, ok := byRole[g]; ok && v > max {
			max = v
		}
	}
	return max
}

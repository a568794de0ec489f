package domain

// DeploymentContext distinguishes a fresh install from an in-place upgrade.
type DeploymentContext string

const (
	ContextInstall DeploymentContext = "install"
	ContextUpgrade DeploymentContext = "upgrade"
)

// ContextFromPlaybook maps the playbook context variable to a deployment
// context. Only the literal string "upgrade" selects the upgrade context;
// anything else, including absence, means install.
func ContextFromPlaybook(value string) DeploymentContext {
	if value == "upgrade" {
		return ContextUpgrade
	}
	return ContextInstall
}

// Mount is one record of the observed mount table. SizeAvailable is a
// pointer because fact records are loosely typed and may omit the field.
type Mount struct {
	Mount         string
	SizeAvailable *int64
}

// MountTable indexes mount records by mount path. The table may be sparse:
// not every filesystem path is a literal key.
type MountTable map[string]Mount

// NewMountTable re-indexes a list of mount records by mount path.
func NewMountTable(mounts []Mount) MountTable {
	table := make(MountTable, len(mounts))
	for _, m := range mounts {
		table[m.Mount] = m
	}
	return table
}

// HostFacts is the pre-materialized view of a single host that checks
// evaluate against. Nothing here is collected by the checks themselves.
type HostFacts struct {
	// GroupNames lists the role groups the host belongs to.
	GroupNames []string

	// Mounts is the observed mount table.
	Mounts []Mount

	// MinHostDiskGB is the raw user override for minimum disk space. It is
	// either a bare number (legacy shorthand) or a nested mapping of
	// path to role to gigabytes; parsing happens at the check boundary.
	MinHostDiskGB any

	// PlaybookContext carries the raw playbook context variable.
	PlaybookContext string
}

// MountTable returns the facts' mount records indexed by mount path.
func (f *HostFacts) MountTable() MountTable {
	return NewMountTable(f.Mounts)
}

// Context returns the deployment context the facts describe.
func (f *HostFacts) Context() DeploymentContext {
	return ContextFromPlaybook(f.PlaybookContext)
}

// HasGroup reports whether the host belongs to the named role group.
func (f *HostFacts) HasGroup(name string) bool {
	for _, g := range f.GroupNames {
		if g == name {
			return true
		}
	}
	return false
}

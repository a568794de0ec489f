package disk

import (
	"fmt"
	"strconv"

	"github.com/laupow/openshift-ansible/internal/domain"
)

// OverrideKind tags the shape of a user-supplied minimum disk override.
type OverrideKind int

const (
	// OverrideNone means no override was supplied.
	OverrideNone OverrideKind = iota

	// OverrideUniform is the legacy shorthand: a bare number of
	// gigabytes applied to the /var requirement only.
	OverrideUniform

	// OverrideStructured maps path to role group to gigabytes.
	OverrideStructured
)

// Override is the parsed form of the min_host_disk_gb user variable. The
// raw variable is dynamically shaped; ParseOverride resolves the ambiguity
// once at ingestion so evaluation never type-probes.
type Override struct {
	Kind OverrideKind

	// GB holds the uniform value when Kind is OverrideUniform.
	GB float64

	// Paths holds path -> role group -> gigabytes when Kind is
	// OverrideStructured.
	Paths map[string]map[string]float64
}

// ParseOverride converts the raw override variable into its tagged form.
// A number (or numeric string, for backwards compatibility) is the uniform
// shorthand; a mapping is the structured form; anything else is invalid.
func ParseOverride(raw any) (Override, error) {
	if raw == nil {
		return Override{Kind: OverrideNone}, nil
	}

	if gb, ok := asNumber(raw); ok {
		return Override{Kind: OverrideUniform, GB: gb}, nil
	}

	mapping, ok := asMapping(raw)
	if !ok {
		return Override{}, fmt.Errorf("%w: expected a number or a path-to-role mapping, got %T", domain.ErrInvalidOverride, raw)
	}

	paths := make(map[string]map[string]float64, len(mapping))
	for path, rolesRaw := range mapping {
		roles, ok := asMapping(rolesRaw)
		if !ok {
			return Override{}, fmt.Errorf("%w: value for path %q is not a role mapping", domain.ErrInvalidOverride, path)
		}
		byRole := make(map[string]float64, len(roles))
		for role, gbRaw := range roles {
			gb, ok := asNumber(gbRaw)
			if !ok {
				return Override{}, fmt.Errorf("%w: value for %q/%q is not a number", domain.ErrInvalidOverride, path, role)
			}
			byRole[role] = gb
		}
		paths[path] = byRole
	}
	return Override{Kind: OverrideStructured, Paths: paths}, nil
}

// RequiredBytes returns the override's demand for the given requirement's
// path in bytes, taking the strictest value among the host's role groups.
// Zero means the override imposes nothing here. Gigabytes convert to bytes
// at exactly 10^9.
func (o Override) RequiredBytes(req Requirement, groups []string) int64 {
	switch o.Kind {
	case OverrideUniform:
		// The legacy shorthand covers /var only, and only for hosts
		// holding one of the roles the table lists for /var.
		if req.Path != VarPath {
			return 0
		}
		for _, g := range groups {
			if _, ok := req.Install[g]; ok {
				return int64(o.GB * float64(GB))
			}
		}
		return 0
	case OverrideStructured:
		byRole, ok := o.Paths[req.Path]
		if !ok {
			return 0
		}
		var maxGB float64
		for _, g := range groups {
			if v, ok := byRole[g]; ok && v > maxGB {
				maxGB = v
			}
		}
		return int64(maxGB * float64(GB))
	}
	return 0
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func asMapping(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		// Older YAML decoders produce interface keys.
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	}
	return nil, false
}

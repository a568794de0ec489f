package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common domain errors
var (
	ErrNoFacts         = errors.New("host facts not available")
	ErrInvalidOverride = errors.New("invalid disk space override")
)

// MountResolutionError indicates that no ancestor of a required path exists
// in the observed mount table, or that the matching mount record lacks an
// available-bytes field. It means disk availability cannot be determined at
// all, as opposed to being determined and found insufficient.
type MountResolutionError struct {
	// Path is the filesystem path whose mount could not be resolved.
	Path string

	// KnownMounts lists the mount points present in the table.
	KnownMounts []string
}

// Error returns the diagnostic message, listing known mount points sorted
// and comma-joined, or the literal "none" when the table is empty.
func (e *MountResolutionError) Error() string {
	known := "none"
	if len(e.KnownMounts) > 0 {
		sorted := make([]string, len(e.KnownMounts))
		copy(sorted, e.KnownMounts)
		sort.Strings(sorted)
		quoted := make([]string, len(sorted))
		for i, m := range sorted {
			quoted[i] = fmt.Sprintf("%q", m)
		}
		known = strings.Join(quoted, ", ")
	}
	return fmt.Sprintf("unable to determine disk availability for %q. Known mount points: %s.", e.Path, known)
}

// NewMountResolutionError creates a MountResolutionError for path against
// the given mount table.
func NewMountResolutionError(path string, mounts MountTable) *MountResolutionError {
	known := make([]string, 0, len(mounts))
	for m := range mounts {
		known = append(known, m)
	}
	return &MountResolutionError{Path: path, KnownMounts: known}
}

// IsMountResolution returns true if err is a mount resolution failure.
func IsMountResolution(err error) bool {
	var mre *MountResolutionError
	return errors.As(err, &mre)
}

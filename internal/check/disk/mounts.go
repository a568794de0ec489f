package disk

import (
	"path"

	"github.com/laupow/openshift-ansible/internal/domain"
)

// maxAscent bounds the walk up the path hierarchy. A safety bound against
// pathological or non-rooted inputs; real filesystem trees are far
// shallower.
const maxAscent = 32

// FreeBytes returns the available bytes for p based on the observed mount
// table, by resolving p to its enclosing mount point. It walks from p
// upward through its ancestors until one matches a table key. If no
// ancestor resolves within the ascent bound, or the matching record lacks
// an available-bytes field, it returns a MountResolutionError.
func FreeBytes(p string, mounts domain.MountTable) (int64, error) {
	mountPoint := p
	for depth := maxAscent; depth > 0; depth-- {
		if _, ok := mounts[mountPoint]; ok {
			break
		}
		mountPoint = path.Dir(mountPoint)
	}

	entry, ok := mounts[mountPoint]
	if !ok || entry.SizeAvailable == nil {
		return 0, domain.NewMountResolutionError(p, mounts)
	}
	return *entry.SizeAvailable, nil
}

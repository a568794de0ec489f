package disk

import (
	"strings"
	"testing"

	"github.com/laupow/openshift-ansible/internal/domain"
)

func mountTable(avail map[string]int64) domain.MountTable {
	mounts := make([]domain.Mount, 0, len(avail))
	for m, a := range avail {
		a := a
		mounts = append(mounts, domain.Mount{Mount: m, SizeAvailable: &a})
	}
	return domain.NewMountTable(mounts)
}

func TestFreeBytes(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		avail   map[string]int64
		want    int64
		wantErr bool
	}{
		{
			name:  "exact mount point",
			path:  "/var",
			avail: map[string]int64{"/": 50 * GB, "/var": 8 * GB},
			want:  8 * GB,
		},
		{
			name:  "nested path resolves to enclosing mount",
			path:  "/var/lib/origin",
			avail: map[string]int64{"/": 50 * GB, "/var": 8 * GB},
			want:  8 * GB,
		},
		{
			name:  "falls back to root",
			path:  "/usr/local/bin",
			avail: map[string]int64{"/": 50 * GB},
			want:  50 * GB,
		},
		{
			name:  "deepest matching mount wins",
			path:  "/var/lib/etcd",
			avail: map[string]int64{"/": 50 * GB, "/var": 8 * GB, "/var/lib/etcd": 3 * GB},
			want:  3 * GB,
		},
		{
			name:    "empty table",
			path:    "/usr/local/bin",
			avail:   nil,
			wantErr: true,
		},
		{
			name:    "no matching ancestor",
			path:    "/var",
			avail:   map[string]int64{"/srv": 50 * GB},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FreeBytes(tt.path, mountTable(tt.avail))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				if !domain.IsMountResolution(err) {
					t.Fatalf("expected MountResolutionError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FreeBytes returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FreeBytes = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFreeBytes_AscentBound(t *testing.T) {
	// A path nested deeper than the ascent bound must fail
	// deterministically even though "/" is in the table.
	deep := strings.Repeat("/d", maxAscent+8)

	_, err := FreeBytes(deep, mountTable(map[string]int64{"/": 50 * GB}))
	if err == nil {
		t.Fatal("expected resolution to give up within the ascent bound")
	}
	if !domain.IsMountResolution(err) {
		t.Fatalf("expected MountResolutionError, got %T", err)
	}
}

func TestFreeBytes_MissingSizeAvailable(t *testing.T) {
	table := domain.NewMountTable([]domain.Mount{{Mount: "/"}})

	_, err := FreeBytes("/var", table)
	if err == nil {
		t.Fatal("expected an error when the mount record lacks size_available")
	}
	if !domain.IsMountResolution(err) {
		t.Fatalf("expected MountResolutionError, got %T", err)
	}
}

func TestFreeBytes_ErrorListsKnownMounts(t *testing.T) {
	_, err := FreeBytes("/var", mountTable(map[string]int64{"/srv": GB, "/data": GB}))
	if err == nil {
		t.Fatal("expected an error")
	}
	msg := err.Error()
	if !strings.Contains(msg, `"/data", "/srv"`) {
		t.Errorf("known mounts should be sorted and quoted: %s", msg)
	}
	if !strings.Contains(msg, `"/var"`) {
		t.Errorf("error should name the unresolved path: %s", msg)
	}
}

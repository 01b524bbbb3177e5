//go:build unix

package testfs

import (
	"testing"
	"time"
)

// Harness creates a FileTree under t.TempDir() and remembers the
// reference time file ages were taken against.
type Harness struct {
	t    *testing.T
	root string
	ref  time.Time
}

// New builds the tree and returns the harness. The temporary directory
// is cleaned up by t.TempDir() mechanics.
func New(t *testing.T, tree FileTree) *Harness {
	t.Helper()

	h := &Harness{t: t, root: t.TempDir(), ref: time.Now()}
	if err := Sow(h.root, h.ref, tree); err != nil {
		t.Fatalf("failed to sow tree: %v", err)
	}
	return h
}

// Root returns the tree root path.
func (h *Harness) Root() string { return h.root }

// Ref returns the reference time ages were applied against.
func (h *Harness) Ref() time.Time { return h.ref }

// Package testfs builds throwaway directory trees for walker and CLI
// tests.
//
// Tests describe the tree declaratively and let the harness create it
// under t.TempDir():
//
//	tree := testfs.FileTree{
//	    Files: []testfs.File{
//	        {Path: "docs/report.txt", Size: "1KiB", Age: 36 * time.Hour},
//	        {Path: "data.bin", Size: "2MiB"},
//	    },
//	    Symlinks: []testfs.Symlink{{Path: "latest", Target: "docs"}},
//	}
//	h := testfs.New(t, tree)
//	// walk h.Root() ...
//
// Parent directories are created automatically (mkdir -p semantics);
// Dirs is only needed for directories that would otherwise be empty.
// Age backdates a file's modification time relative to the harness
// reference time, giving date-filter tests stable inputs.
package testfs

import "time"

// FileTree describes a directory tree to create.
type FileTree struct {
	// Dirs lists directories to create explicitly. Directories implied
	// by file paths need not be listed.
	Dirs []string

	// Files lists regular files.
	Files []File

	// Symlinks lists symbolic links.
	Symlinks []Symlink
}

// File defines one regular file.
type File struct {
	// Path is relative to the tree root.
	Path string

	// Size is the file size as a humanize literal ("100B", "1KiB",
	// "2MiB"). Empty means an empty file.
	Size string

	// Age backdates the modification time this far before the
	// reference time. Zero leaves the natural mtime.
	Age time.Duration
}

// Symlink defines a symbolic link.
type Symlink struct {
	// Path is relative to the tree root.
	Path string

	// Target is what the link points to: relative to the link's
	// directory, or absolute.
	Target string
}

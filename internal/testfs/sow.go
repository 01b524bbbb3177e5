package testfs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
)

// Sow creates the tree under root. File sizes are allocated with
// Truncate, so large fixtures stay cheap; the walker only ever reads
// metadata. Ages are applied with Chtimes relative to ref.
func Sow(root string, ref time.Time, tree FileTree) error {
	for _, dir := range tree.Dirs {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return fmt.Errorf("create dir %s: %w", dir, err)
		}
	}

	for _, f := range tree.Files {
		if err := sowFile(root, ref, f); err != nil {
			return err
		}
	}

	for _, sym := range tree.Symlinks {
		link := filepath.Join(root, sym.Path)
		if err := os.MkdirAll(filepath.Dir(link), 0o755); err != nil {
			return err
		}
		if err := os.Symlink(sym.Target, link); err != nil {
			return fmt.Errorf("symlink %s -> %s: %w", sym.Path, sym.Target, err)
		}
	}
	return nil
}

// sowFile creates a single file with its size and age.
func sowFile(root string, ref time.Time, f File) error {
	path := filepath.Join(root, f.Path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var size int64
	if f.Size != "" {
		n, err := humanize.ParseBytes(f.Size)
		if err != nil {
			return fmt.Errorf("parse size %q for %s: %w", f.Size, f.Path, err)
		}
		size = int64(n)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", f.Path, err)
	}
	if err := file.Truncate(size); err != nil {
		_ = file.Close()
		return fmt.Errorf("truncate %s: %w", f.Path, err)
	}
	if err := file.Close(); err != nil {
		return err
	}

	if f.Age != 0 {
		mtime := ref.Add(-f.Age)
		if err := os.Chtimes(path, mtime, mtime); err != nil {
			return fmt.Errorf("backdate %s: %w", f.Path, err)
		}
	}
	return nil
}

// Package walker implements recursive size aggregation over a directory
// tree.
//
// The walk is a single-threaded depth-first recursion. Each directory
// owns its accumulators and results combine by value on return, so
// entry order never changes the totals. Every regular file counts
// toward the subtree totals; files passing the filter criteria also
// count toward the matched figures.
//
// A directory's matched size lives on two axes that must not be mixed
// up: its OWN direct matches, reported through the OnDir observer, and
// the cumulative subtree figure carried in the returned Result. Any
// directory read or file stat failure aborts the whole walk; there is
// no partial recovery.
package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/tuoppis/sizeof/internal/filter"
	"github.com/tuoppis/sizeof/internal/progress"
)

// FS is the directory-tree capability the walker consumes: listing plus
// symlink-following stat. os.DirFS satisfies it.
type FS interface {
	fs.ReadDirFS
	fs.StatFS
}

// DirFS returns the tree rooted at dir as a walker FS.
func DirFS(dir string) FS {
	return os.DirFS(dir).(FS)
}

// Result aggregates one subtree. Matched figures cover the files that
// satisfied the criteria; Total figures cover every regular file seen.
// Matched never exceeds Total on either axis.
type Result struct {
	MatchedSize  int64
	MatchedCount int64
	TotalSize    int64
	TotalCount   int64
}

// Walker computes size statistics for one tree.
//
// The walker is designed for single-use: create with New(), call Run()
// once.
type Walker struct {
	// Config (immutable, set by New)
	fsys         FS
	crit         filter.Criteria
	followLinks  bool
	showProgress bool

	// OnFile, if set, fires for every matched file in enumeration
	// order, with the file's path relative to the FS root.
	OnFile func(path string, size int64)

	// OnDir, if set, fires for every directory after its entries are
	// processed, with the directory's OWN matched size: direct children
	// only, before descendant matches are folded in.
	OnDir func(path string, matchedSize int64)

	// Runtime (initialized in Run)
	bar   *progress.Bar
	stats *stats
}

// New creates a Walker over fsys applying crit to every file.
func New(fsys FS, crit filter.Criteria, followLinks, showProgress bool) *Walker {
	return &Walker{
		fsys:         fsys,
		crit:         crit,
		followLinks:  followLinks,
		showProgress: showProgress,
	}
}

// stats feeds the progress spinner.
type stats struct {
	scannedFiles int64
	scannedBytes int64
	matchedFiles int64
	matchedBytes int64
	startTime    time.Time
}

func (s *stats) String() string {
	return fmt.Sprintf("Scanned %d files (%s), matched %d (%s) in %.1fs",
		s.scannedFiles, humanize.IBytes(uint64(s.scannedBytes)),
		s.matchedFiles, humanize.IBytes(uint64(s.matchedBytes)),
		time.Since(s.startTime).Seconds())
}

// Run walks the tree from the FS root and returns the root Result.
func (w *Walker) Run() (Result, error) {
	w.bar = progress.New(w.showProgress)
	w.stats = &stats{startTime: time.Now()}

	res, err := w.walkDir(".")
	if err != nil {
		return Result{}, err
	}
	w.bar.Finish(w.stats)
	return res, nil
}

// walkDir processes one directory. The returned Result covers the whole
// subtree; OnDir sees only this level's own matches.
func (w *Walker) walkDir(dir string) (Result, error) {
	entries, err := w.fsys.ReadDir(dir)
	if err != nil {
		return Result{}, err
	}

	var res Result
	var subtreeMatched int64 // descendant matches, kept out of OnDir
	for _, entry := range entries {
		entryPath := path.Join(dir, entry.Name())

		if entry.Type()&fs.ModeSymlink != 0 {
			if !w.followLinks {
				continue
			}
			if err := w.walkLink(entryPath, &res, &subtreeMatched); err != nil {
				return Result{}, err
			}
			continue
		}

		if entry.IsDir() {
			child, err := w.walkDir(entryPath)
			if err != nil {
				return Result{}, err
			}
			subtreeMatched += child.MatchedSize
			res.MatchedCount += child.MatchedCount
			res.TotalSize += child.TotalSize
			res.TotalCount += child.TotalCount
			continue
		}

		// Devices, sockets, fifos are invisible to the totals.
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return Result{}, err
		}
		w.countFile(entryPath, info, &res)
	}
	w.bar.Describe(w.stats)

	if w.OnDir != nil {
		w.OnDir(dir, res.MatchedSize)
	}
	res.MatchedSize += subtreeMatched
	return res, nil
}

// walkLink resolves a symlink and counts its target: a directory
// recurses like any other, a regular file counts with the target's size
// and modification time under the link's name. A target that cannot be
// resolved is skipped.
func (w *Walker) walkLink(entryPath string, res *Result, subtreeMatched *int64) error {
	info, err := fs.Stat(w.fsys, entryPath)
	if err != nil {
		return nil // dangling link
	}

	if info.IsDir() {
		child, err := w.walkDir(entryPath)
		if err != nil {
			return err
		}
		*subtreeMatched += child.MatchedSize
		res.MatchedCount += child.MatchedCount
		res.TotalSize += child.TotalSize
		res.TotalCount += child.TotalCount
		return nil
	}

	if info.Mode().IsRegular() {
		w.countFile(entryPath, info, res)
	}
	return nil
}

// countFile folds one regular file into the totals and, when it passes
// the criteria, into this level's own matched figures.
func (w *Walker) countFile(entryPath string, info fs.FileInfo, res *Result) {
	size := info.Size()
	res.TotalSize += size
	res.TotalCount++
	w.stats.scannedFiles++
	w.stats.scannedBytes += size

	if !w.crit.Match(info.Name(), size, info.ModTime().Unix()) {
		return
	}
	res.MatchedSize += size
	res.MatchedCount++
	w.stats.matchedFiles++
	w.stats.matchedBytes += size
	if w.OnFile != nil {
		w.OnFile(entryPath, size)
	}
}

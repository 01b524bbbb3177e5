package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/tuoppis/sizeof/internal/filter"
	"github.com/tuoppis/sizeof/internal/format"
	"github.com/tuoppis/sizeof/internal/parse"
	"github.com/tuoppis/sizeof/internal/walker"
)

// options holds CLI flags for the root command.
type options struct {
	orAny       []string
	andAll      []string
	notAny      []string
	notAll      []string
	insensitive bool

	minSizeStr string
	maxSizeStr string
	newerStr   string
	olderStr   string

	files       bool
	directories bool
	summary     bool
	verbose     bool
	quiet       bool

	path        string
	binary      bool
	followLinks bool
	noProgress  bool
}

// newRootCmd creates the sizeof command.
func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "sizeof [patterns...]",
		Short: "Report the total size of files matching patterns",
		Long: `Reports the aggregate size of files under a directory tree that match a
boolean combination of name patterns, size limits, and date limits.

Pattern flags form groups that are evaluated separately and joined with
an 'and'. For example
  sizeof a b -a d -a e -o c -n w -n x --not-all y --not-all z
is evaluated as
  (a or b or c) and (d and e) and not (w or x) and not (y and z)
where a..z are glob patterns. Unmarked patterns join the 'or' group,
except that a first pattern naming an existing directory is taken as
the start path. Custom nestings of groups are not expressible.`,
		Args:    cobra.ArbitraryArgs,
		Version: version + " (" + commit + ")",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSizeof(cmd.OutOrStdout(), args, opts, time.Now())
		},
	}

	// Bind flags to options
	cmd.Flags().StringArrayVarP(&opts.orAny, "or", "o", nil, "(P1 | ... | Pn), select if any match")
	cmd.Flags().StringArrayVarP(&opts.andAll, "and", "a", nil, "(P1 & ... & Pn), select if all match")
	cmd.Flags().StringArrayVarP(&opts.notAny, "not", "n", nil, "~(P1 | ... | Pn), reject if any match")
	cmd.Flags().StringArrayVar(&opts.notAll, "not-all", nil, "~(P1 & ... & Pn), reject if all match")
	cmd.Flags().BoolVarP(&opts.insensitive, "insensitive", "i", false, "case insensitive matching")
	cmd.Flags().StringVarP(&opts.minSizeStr, "min-size", "m", "", "minimum size (e.g. 100, 1K, 2Ki, 1.5M)")
	cmd.Flags().StringVarP(&opts.maxSizeStr, "max-size", "M", "", "maximum size (e.g. 100, 1K, 2Ki, 1.5M)")
	cmd.Flags().StringVarP(&opts.newerStr, "newer", "t", "", "minimum date (YYYY-MM-DD) or maximum age (#y#M#w#d#h#m#s)")
	cmd.Flags().StringVarP(&opts.olderStr, "older", "T", "", "reverse of --newer")
	cmd.Flags().BoolVarP(&opts.files, "files", "f", false, "print the matched files")
	cmd.Flags().BoolVarP(&opts.directories, "directories", "d", false, "print total matched size in each directory")
	cmd.Flags().BoolVarP(&opts.summary, "summary", "s", false, "print a summary of the search")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "same as -fs")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "output only the total matched byte count")
	cmd.Flags().StringVarP(&opts.path, "path", "p", "", "starting directory, default is the current one")
	cmd.Flags().BoolVarP(&opts.binary, "binary", "b", false, "use binary instead of SI units")
	cmd.Flags().BoolVar(&opts.followLinks, "follow-links", false, "follow symlinks pointing outside the path")
	cmd.Flags().BoolVar(&opts.noProgress, "no-progress", false, "disable progress output")

	return cmd
}

// runSizeof parses the literals, builds the criteria, and runs the walk.
// All literal parsing happens here, before any traversal begins.
func runSizeof(out io.Writer, patterns []string, opts *options, now time.Time) error {
	if opts.quiet && (opts.verbose || opts.files || opts.directories || opts.summary) {
		return fmt.Errorf("cannot use --verbose, --files, --directories, or --summary with --quiet")
	}
	if opts.verbose {
		opts.files = true
		opts.summary = true
	}

	sizes, err := sizeRange(opts.minSizeStr, opts.maxSizeStr)
	if err != nil {
		return err
	}
	dates, err := dateRange(opts.newerStr, opts.olderStr, now)
	if err != nil {
		return err
	}

	start := opts.path
	if start == "" {
		start = "."
		if len(patterns) > 0 && isDir(patterns[0]) {
			start = patterns[0]
			patterns = patterns[1:]
		}
	}

	orAny := append(opts.orAny, patterns...)
	andAll, notAny, notAll := opts.andAll, opts.notAny, opts.notAll
	if opts.insensitive {
		orAny = lowerAll(orAny)
		andAll = lowerAll(andAll)
		notAny = lowerAll(notAny)
		notAll = lowerAll(notAll)
	}

	query, err := filter.NewQuery(orAny, andAll, notAny, notAll, opts.insensitive)
	if err != nil {
		return err
	}
	crit := filter.Criteria{Names: query, Sizes: sizes, Dates: dates}

	scale := 1000
	if opts.binary {
		scale = 1024
	}

	if !opts.quiet {
		fmt.Fprintf(out, "IN %s NAME %s\n", start,
			describeSearch(orAny, andAll, notAny, notAll, sizes, dates, scale, now))
	}

	showProgress := !opts.noProgress && !opts.quiet && !opts.files && !opts.directories
	w := walker.New(walker.DirFS(start), crit, opts.followLinks, showProgress)
	if opts.files {
		w.OnFile = func(p string, size int64) {
			fmt.Fprintf(out, "%s %s\n", format.Size(float64(size), scale), filepath.Join(start, p))
		}
	}
	if opts.directories {
		w.OnDir = func(p string, matched int64) {
			fmt.Fprintf(out, "%s %s\n", format.Size(float64(matched), scale), filepath.Join(start, p))
		}
	}

	res, err := w.Run()
	if err != nil {
		return err
	}

	if opts.quiet {
		fmt.Fprintln(out, res.MatchedSize)
		return nil
	}

	matched := strings.TrimSpace(format.Size(float64(res.MatchedSize), scale))
	if opts.summary {
		if res.MatchedCount > 0 {
			total := strings.TrimSpace(format.Size(float64(res.TotalSize), scale))
			fmt.Fprintf(out, "Matched %s / %s bytes in %d / %d files.\n",
				matched, total, res.MatchedCount, res.TotalCount)
		} else {
			fmt.Fprintf(out, "No matches in %d files.\n", res.TotalCount)
		}
	} else {
		fmt.Fprintln(out, matched)
	}
	return nil
}

// sizeRange parses the optional size limit literals into a bound pair.
func sizeRange(minStr, maxStr string) (filter.Range[float64], error) {
	var r filter.Range[float64]
	if minStr != "" {
		v, err := parse.Size(minStr)
		if err != nil {
			return r, sizeUsage(err)
		}
		r.Min = &v
	}
	if maxStr != "" {
		v, err := parse.Size(maxStr)
		if err != nil {
			return r, sizeUsage(err)
		}
		r.Max = &v
	}
	return r, nil
}

// dateRange parses the optional date limit literals. "Newer than" maps
// to a minimum timestamp, "older than" to a maximum.
func dateRange(newerStr, olderStr string, now time.Time) (filter.Range[int64], error) {
	var r filter.Range[int64]
	if newerStr != "" {
		t, err := parse.Date(newerStr, now)
		if err != nil {
			return r, dateUsage(err)
		}
		v := t.Unix()
		r.Min = &v
	}
	if olderStr != "" {
		t, err := parse.Date(olderStr, now)
		if err != nil {
			return r, dateUsage(err)
		}
		v := t.Unix()
		r.Max = &v
	}
	return r, nil
}

// sizeUsage appends the accepted size grammar to a literal parse error.
func sizeUsage(err error) error {
	return fmt.Errorf("%w\nUse a number followed by an optional size prefix K, M, G, T, or P (factor 1000), "+
		"plus 'i' for the corresponding binary unit (factor 1024). Lower case is also accepted.", err)
}

// dateUsage appends the accepted date grammar to a literal parse error.
func dateUsage(err error) error {
	return fmt.Errorf("%w\nUse either an ISO date (YYYY-MM-DD or YYYY-MM-DDThh:mm:ss) or a duration such as '1week_5min'.\n"+
		"Durations accept y, year, M, month, w, week, d, day, h, hour, m, min, minute, s, sec, second, or their plurals. "+
		"A bare number counts as seconds; an omitted number means 1. E.g. '-t minute' equals '-t 1min' and '-t 60'.", err)
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

func lowerAll(patterns []string) []string {
	out := make([]string, len(patterns))
	for i, p := range patterns {
		out[i] = strings.ToLower(p)
	}
	return out
}

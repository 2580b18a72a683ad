package listing

import (
	"fmt"
	"regexp"

	"github.com/gobwas/glob"

	"github.com/michaelscutari/fspath/internal/entry"
)

// Options configures which entries a Listing yields. All filters must match
// for an entry to be yielded.
type Options struct {
	// Kinds restricts entries to any of the given kinds. Zero means any kind.
	Kinds entry.Kind

	// Dots includes the "." and ".." pseudo entries.
	Dots bool

	// Glob is a shell pattern matched against the entry name, e.g. "f?o".
	// Empty disables the filter.
	Glob string

	// Pattern is a regular expression matched against the entry name.
	// Empty disables the filter.
	Pattern string
}

// filter is the compiled form of Options.
type filter struct {
	kinds entry.Kind
	dots  bool
	glob  glob.Glob
	re    *regexp.Regexp
}

func newFilter(opts Options) (filter, error) {
	f := filter{
		kinds: opts.Kinds,
		dots:  opts.Dots,
	}

	if opts.Glob != "" {
		g, err := glob.Compile(opts.Glob)
		if err != nil {
			return filter{}, fmt.Errorf("%w: glob %q: %w", ErrInvalidPattern, opts.Glob, err)
		}
		f.glob = g
	}

	if opts.Pattern != "" {
		re, err := regexp.Compile(opts.Pattern)
		if err != nil {
			return filter{}, fmt.Errorf("%w: regex %q: %w", ErrInvalidPattern, opts.Pattern, err)
		}
		f.re = re
	}

	return f, nil
}

// accept checks an entry against every configured filter.
func (f filter) accept(e entry.Entry) bool {
	if !e.Kind.In(f.kinds) {
		return false
	}
	if !f.dots && e.IsDot() {
		return false
	}
	if f.glob != nil && !f.glob.Match(e.Name) {
		return false
	}
	if f.re != nil && !f.re.MatchString(e.Name) {
		return false
	}
	return true
}

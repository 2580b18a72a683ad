package listing

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/michaelscutari/fspath/internal/entry"
	"github.com/michaelscutari/fspath/internal/pathutil"
)

var (
	ErrInvalidPath    = errors.New("invalid path")
	ErrInvalidPattern = errors.New("invalid pattern")
)

// Listing is a filtered view of a single directory. Entries are read lazily;
// every call to All starts a fresh read.
type Listing struct {
	fs     afero.Fs
	path   string
	filter filter
	err    error
}

// List prepares a listing of the directory at path. It fails with
// ErrInvalidPath if path cannot be opened as a directory, and with
// ErrInvalidPattern if a name filter does not compile.
func List(fs afero.Fs, dir pathutil.Arg, opts Options) (*Listing, error) {
	p := pathutil.Normalize(dir)

	f, err := newFilter(opts)
	if err != nil {
		return nil, err
	}

	d, err := fs.Open(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPath, p, err)
	}
	defer d.Close()

	info, err := d.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPath, p, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s: not a directory", ErrInvalidPath, p)
	}

	return &Listing{
		fs:     fs,
		path:   p,
		filter: f,
	}, nil
}

// Path returns the normalized directory path.
func (l *Listing) Path() string {
	return l.path
}

// Err returns the error that ended the most recent iteration early, if any.
func (l *Listing) Err() error {
	return l.err
}

// All yields the accepted entries in name order. When dot entries are
// enabled, "." and ".." come first.
func (l *Listing) All() iter.Seq[entry.Entry] {
	return func(yield func(entry.Entry) bool) {
		l.err = nil

		names, err := l.readNames()
		if err != nil {
			l.err = err
			return
		}

		if l.filter.dots {
			for _, name := range []string{".", ".."} {
				e := l.dotEntry(name)
				if l.filter.accept(e) && !yield(e) {
					return
				}
			}
		}

		for _, name := range names {
			e := l.entry(name)
			if !l.filter.accept(e) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Collect drains All into a slice.
func (l *Listing) Collect() ([]entry.Entry, error) {
	var entries []entry.Entry
	for e := range l.All() {
		entries = append(entries, e)
	}
	return entries, l.Err()
}

func (l *Listing) readNames() ([]string, error) {
	d, err := l.fs.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPath, l.path, err)
	}
	defer d.Close()

	names, err := d.Readdirnames(-1)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", l.path, err)
	}
	sort.Strings(names)
	return names, nil
}

func (l *Listing) childPath(name string) string {
	return strings.TrimSuffix(l.path, "/") + "/" + name
}

func (l *Listing) entry(name string) entry.Entry {
	e := entry.Entry{
		Name: name,
		Path: l.childPath(name),
		Kind: entry.KindOther,
	}

	info, err := Lstat(l.fs, e.Path)
	if err != nil {
		slog.Debug("failed to lstat entry", "path", e.Path, "err", err)
		return e
	}

	e.Kind = entry.KindFromMode(info.Mode())
	e.Size = info.Size()
	e.ModTime = info.ModTime()
	return e
}

// dotEntry describes "." or ".."; both always refer to directories, so they
// are resolved with Stat rather than Lstat.
func (l *Listing) dotEntry(name string) entry.Entry {
	e := entry.Entry{
		Name: name,
		Path: l.childPath(name),
		Kind: entry.KindDir,
	}

	info, err := l.fs.Stat(path.Join(l.path, name))
	if err != nil {
		return e
	}
	e.Size = info.Size()
	e.ModTime = info.ModTime()
	return e
}

// Lstat describes name without following a final symbolic link when fs
// supports it, and falls back to Stat otherwise.
func Lstat(fs afero.Fs, name string) (os.FileInfo, error) {
	if lst, ok := fs.(afero.Lstater); ok {
		info, _, err := lst.LstatIfPossible(name)
		return info, err
	}
	return fs.Stat(name)
}

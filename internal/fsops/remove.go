// Package fsops removes files, symbolic links and directory trees through an
// afero.Fs.
//
// Paths are normalized with pathutil before they reach the filesystem.
// Removing something that does not exist is not an error.
package fsops

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/michaelscutari/fspath/internal/entry"
	"github.com/michaelscutari/fspath/internal/listing"
	"github.com/michaelscutari/fspath/internal/pathutil"
)

var (
	ErrNotRemoved = errors.New("path still exists after removal")

	// ErrNoLstat marks a directory that was not descended into because the
	// filesystem cannot tell it apart from a symbolic link to one.
	ErrNoLstat = errors.New("filesystem does not support lstat")
)

// Remove deletes a file, a symbolic link or a directory including its
// contents. Symbolic links are removed themselves, never their targets.
//
// Directories are only descended into when fs can lstat them. Otherwise a
// directory is removed with a single fs.Remove, which unlinks a link or an
// empty directory and fails with ErrNoLstat for anything else.
//
// On Windows a link to a directory must be removed with the directory
// primitive; os.Remove already falls back to it, so the link case needs no
// special handling here.
func Remove(fs afero.Fs, target pathutil.Arg) error {
	p := pathutil.Normalize(target)

	info, noFollow, err := lstat(fs, p)
	if errors.Is(err, os.ErrNotExist) {
		if !noFollow {
			// Stat reports a dangling link as missing.
			_ = fs.Remove(p)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", p, err)
	}

	var cause error
	switch {
	case entry.KindFromMode(info.Mode()) != entry.KindDir:
		cause = fs.Remove(p)
	case noFollow:
		cause = CleanDirectory(fs, pathutil.Seg(p))
		if cause == nil {
			cause = fs.Remove(p)
		}
	default:
		if err := fs.Remove(p); err != nil {
			cause = fmt.Errorf("%w: %w", ErrNoLstat, err)
		}
	}

	// The outcome is whatever is left on disk, not the error of the last call.
	if _, err := listing.Lstat(fs, p); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	slog.Debug("failed to remove path", "path", p, "err", cause)
	if cause != nil {
		return fmt.Errorf("%w: %s: %w", ErrNotRemoved, p, cause)
	}
	return fmt.Errorf("%w: %s", ErrNotRemoved, p)
}

// lstat describes name and reports whether the result is known to describe
// name itself rather than the target of a symbolic link.
func lstat(fs afero.Fs, name string) (os.FileInfo, bool, error) {
	if lst, ok := fs.(afero.Lstater); ok {
		info, lstatCalled, err := lst.LstatIfPossible(name)
		return info, lstatCalled || linkFree(fs), err
	}
	info, err := fs.Stat(name)
	return info, linkFree(fs), err
}

// linkFree reports whether fs cannot hold symbolic links at all.
func linkFree(fs afero.Fs) bool {
	_, ok := fs.(*afero.MemMapFs)
	return ok
}

// CleanDirectory removes every entry of dir except "." and "..", leaving dir
// itself in place. A failing entry does not stop the others from being
// removed; all failures are returned together.
func CleanDirectory(fs afero.Fs, dir pathutil.Arg) error {
	l, err := listing.List(fs, dir, listing.Options{})
	if err != nil {
		return err
	}

	var merr error
	for e := range l.All() {
		if err := Remove(fs, pathutil.Seg(e.Path)); err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	if err := l.Err(); err != nil {
		merr = multierror.Append(merr, err)
	}

	return merr
}

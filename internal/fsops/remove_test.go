package fsops

import (
	"errors"
	"os"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelscutari/fspath/internal/listing"
	"github.com/michaelscutari/fspath/internal/pathutil"
)

// failingFs refuses to remove the listed paths.
type failingFs struct {
	afero.Fs
	fail map[string]bool
}

func (f *failingFs) Remove(name string) error {
	if f.fail[name] {
		return &os.PathError{Op: "remove", Path: name, Err: os.ErrPermission}
	}
	return f.Fs.Remove(name)
}

func (f *failingFs) LstatIfPossible(name string) (os.FileInfo, bool, error) {
	if lst, ok := f.Fs.(afero.Lstater); ok {
		return lst.LstatIfPossible(name)
	}
	info, err := f.Fs.Stat(name)
	return info, false, err
}

// plainFs hides every optional interface of the wrapped filesystem, Lstater
// included.
type plainFs struct {
	afero.Fs
}

func exists(t *testing.T, fs afero.Fs, name string) bool {
	t.Helper()

	_, err := listing.Lstat(fs, name)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	require.NoError(t, err)
	return true
}

func symlinkFs(t *testing.T) (afero.Fs, afero.Linker) {
	t.Helper()

	fs := afero.NewBasePathFs(afero.NewOsFs(), t.TempDir())
	linker, ok := fs.(afero.Linker)
	if !ok {
		t.Skip("filesystem does not support symbolic links")
	}
	return fs, linker
}

func TestRemoveFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tmp/removetest", []byte("x"), 0o644))

	require.NoError(t, Remove(fs, pathutil.Seg("/tmp/removetest")))
	assert.False(t, exists(t, fs, "/tmp/removetest"))
}

func TestRemoveDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/tmp/removetest/sub/deeper", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/tmp/removetest/foo", nil, 0o644))
	require.NoError(t, afero.WriteFile(fs, "/tmp/removetest/sub/deeper/bar", nil, 0o644))

	require.NoError(t, Remove(fs, pathutil.Segs("/tmp", "removetest/")))
	assert.False(t, exists(t, fs, "/tmp/removetest"))
	assert.True(t, exists(t, fs, "/tmp"))
}

func TestRemoveNonexistent(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.NoError(t, Remove(fs, pathutil.Seg("/does/not/exist")))
}

func TestRemoveFileSymlink(t *testing.T) {
	fs, linker := symlinkFs(t)
	require.NoError(t, afero.WriteFile(fs, "/target", []byte("x"), 0o644))
	if err := linker.SymlinkIfPossible("/target", "/link"); err != nil {
		t.Skipf("cannot create symbolic link: %v", err)
	}

	require.NoError(t, Remove(fs, pathutil.Seg("/link")))
	assert.False(t, exists(t, fs, "/link"))
	assert.True(t, exists(t, fs, "/target"))
}

func TestRemoveDirectorySymlink(t *testing.T) {
	fs, linker := symlinkFs(t)
	require.NoError(t, fs.MkdirAll("/target", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/target/keep", nil, 0o644))
	if err := linker.SymlinkIfPossible("/target", "/link"); err != nil {
		t.Skipf("cannot create symbolic link: %v", err)
	}

	require.NoError(t, Remove(fs, pathutil.Seg("/link")))
	assert.False(t, exists(t, fs, "/link"))
	assert.True(t, exists(t, fs, "/target/keep"))
}

func TestRemoveDirectorySymlinkWithoutLstat(t *testing.T) {
	base, linker := symlinkFs(t)
	require.NoError(t, base.MkdirAll("/target", 0o755))
	require.NoError(t, afero.WriteFile(base, "/target/keep", nil, 0o644))
	if err := linker.SymlinkIfPossible("/target", "/link"); err != nil {
		t.Skipf("cannot create symbolic link: %v", err)
	}
	fs := plainFs{base}

	require.NoError(t, Remove(fs, pathutil.Seg("/link")))
	assert.False(t, exists(t, base, "/link"))
	assert.True(t, exists(t, base, "/target/keep"))
}

func TestRemoveDirectoryWithoutLstat(t *testing.T) {
	base, _ := symlinkFs(t)
	require.NoError(t, base.MkdirAll("/full", 0o755))
	require.NoError(t, afero.WriteFile(base, "/full/keep", nil, 0o644))
	require.NoError(t, base.MkdirAll("/empty", 0o755))
	fs := plainFs{base}

	err := Remove(fs, pathutil.Seg("/full"))
	require.ErrorIs(t, err, ErrNotRemoved)
	require.ErrorIs(t, err, ErrNoLstat)
	assert.True(t, exists(t, base, "/full/keep"))

	require.NoError(t, Remove(fs, pathutil.Seg("/empty")))
	assert.False(t, exists(t, base, "/empty"))
}

func TestRemoveDanglingSymlink(t *testing.T) {
	fs, linker := symlinkFs(t)
	if err := linker.SymlinkIfPossible("/gone", "/link"); err != nil {
		t.Skipf("cannot create symbolic link: %v", err)
	}

	require.NoError(t, Remove(fs, pathutil.Seg("/link")))
	assert.False(t, exists(t, fs, "/link"))
}

func TestRemoveDirectoryWithFailingEntry(t *testing.T) {
	base, _ := symlinkFs(t)
	require.NoError(t, base.MkdirAll("/d", 0o755))
	require.NoError(t, afero.WriteFile(base, "/d/a", nil, 0o644))
	require.NoError(t, afero.WriteFile(base, "/d/b", nil, 0o644))
	fs := &failingFs{Fs: base, fail: map[string]bool{"/d/b": true}}

	err := Remove(fs, pathutil.Seg("/d"))
	require.ErrorIs(t, err, ErrNotRemoved)
	require.ErrorIs(t, err, os.ErrPermission)
	assert.True(t, exists(t, fs, "/d/b"))
	assert.False(t, exists(t, fs, "/d/a"))
}

func TestCleanDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/tmp/clean/foo", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/tmp/clean/bar", nil, 0o644))
	require.NoError(t, afero.WriteFile(fs, "/tmp/clean/foo/bam", nil, 0o644))

	require.NoError(t, CleanDirectory(fs, pathutil.Seg("/tmp/clean")))

	assert.True(t, exists(t, fs, "/tmp/clean"))
	empty, err := afero.IsEmpty(fs, "/tmp/clean")
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestCleanDirectoryPartialFailure(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/d", 0o755))
	for _, name := range []string{"/d/a", "/d/b", "/d/c"} {
		require.NoError(t, afero.WriteFile(mem, name, nil, 0o644))
	}
	fs := &failingFs{Fs: mem, fail: map[string]bool{"/d/b": true}}

	err := CleanDirectory(fs, pathutil.Seg("/d"))
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 1)
	assert.ErrorIs(t, err, ErrNotRemoved)

	assert.False(t, exists(t, fs, "/d/a"))
	assert.True(t, exists(t, fs, "/d/b"))
	assert.False(t, exists(t, fs, "/d/c"))
}

func TestCleanDirectoryInvalidPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/file", nil, 0o644))

	assert.ErrorIs(t, CleanDirectory(fs, pathutil.Seg("/missing")), listing.ErrInvalidPath)
	assert.ErrorIs(t, CleanDirectory(fs, pathutil.Seg("/file")), listing.ErrInvalidPath)
}

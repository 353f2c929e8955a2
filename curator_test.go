package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOpener records opened directories
type fakeOpener struct {
	opened []string
	err    error
}

func (o *fakeOpener) Open(dir string) error {
	if o.err != nil {
		return o.err
	}
	o.opened = append(o.opened, dir)
	return nil
}

type curatorFixture struct {
	*navFixture
	fs      afero.Fs
	opener  *fakeOpener
	curator *FileCurator
}

func newCuratorFixture(t *testing.T, favoritesDir string, files ...string) *curatorFixture {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, p := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, afero.WriteFile(fs, p, []byte("pixels of "+p), 0o644))
	}
	f := &curatorFixture{
		navFixture: newNavFixture(t, files),
		fs:         fs,
		opener:     &fakeOpener{},
	}
	f.curator = NewFileCurator(fs, f.nav, f.opener, "Hide", favoritesDir)
	return f
}

func TestCuratorHide(t *testing.T) {
	f := newCuratorFixture(t, "", "/photos/x.jpg", "/photos/y.jpg")
	require.NoError(t, f.nav.Advance(1))

	// The next image is shown while x.jpg is still in place
	f.display.onShow = func(handle *ImageHandle) {
		exists, err := afero.Exists(f.fs, "/photos/x.jpg")
		require.NoError(t, err)
		assert.True(t, exists, "advanced after the move")
	}

	target, err := f.curator.Hide()
	require.NoError(t, err)

	assert.Equal(t, "/photos/Hide/x.jpg", target)
	assert.Equal(t, "/photos/y.jpg", f.nav.CurrentFile())

	exists, err := afero.Exists(f.fs, "/photos/x.jpg")
	require.NoError(t, err)
	assert.False(t, exists)

	data, err := afero.ReadFile(f.fs, "/photos/Hide/x.jpg")
	require.NoError(t, err)
	assert.Equal(t, "pixels of /photos/x.jpg", string(data))

	assert.Equal(t, []string{"/photos/x.jpg"}, f.loader.forgotten)
}

func TestCuratorHideTargetExists(t *testing.T) {
	f := newCuratorFixture(t, "", "/photos/x.jpg", "/photos/y.jpg")
	require.NoError(t, f.fs.MkdirAll("/photos/Hide", 0o755))
	require.NoError(t, afero.WriteFile(f.fs, "/photos/Hide/x.jpg", []byte("older"), 0o644))
	require.NoError(t, f.nav.Advance(1))

	_, err := f.curator.Hide()
	assert.ErrorIs(t, err, ErrTargetExists)

	// Nothing moved and the slideshow stayed put
	assert.Equal(t, "/photos/x.jpg", f.nav.CurrentFile())
	data, err := afero.ReadFile(f.fs, "/photos/Hide/x.jpg")
	require.NoError(t, err)
	assert.Equal(t, "older", string(data))
}

func TestCuratorHideNothingShown(t *testing.T) {
	f := newCuratorFixture(t, "", "/photos/x.jpg")

	_, err := f.curator.Hide()
	assert.ErrorIs(t, err, ErrNothingShown)

	exists, err := afero.DirExists(f.fs, "/photos/Hide")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCuratorHideLastFile(t *testing.T) {
	f := newCuratorFixture(t, "", "/photos/x.jpg", "/photos/y.jpg")
	require.NoError(t, f.nav.Advance(1))

	_, err := f.curator.Hide()
	require.NoError(t, err)

	// x.jpg is gone now, so the advance wraps back onto y.jpg
	f.loader.broken["/photos/x.jpg"] = true
	_, err = f.curator.Hide()
	assert.ErrorIs(t, err, ErrLastImage)
	assert.False(t, isFatal(err))

	exists, err := afero.Exists(f.fs, "/photos/y.jpg")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "/photos/y.jpg", f.nav.CurrentFile())
}

func TestCuratorStar(t *testing.T) {
	f := newCuratorFixture(t, "/favorites", "/photos/x.jpg")
	modTime := time.Date(2020, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, f.fs.Chtimes("/photos/x.jpg", modTime, modTime))
	require.NoError(t, f.nav.Advance(1))

	target, err := f.curator.Star()
	require.NoError(t, err)
	assert.Equal(t, "/favorites/x.jpg", target)

	data, err := afero.ReadFile(f.fs, "/favorites/x.jpg")
	require.NoError(t, err)
	assert.Equal(t, "pixels of /photos/x.jpg", string(data))

	info, err := f.fs.Stat("/favorites/x.jpg")
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(modTime))

	// The original stays and the slideshow does not move
	exists, err := afero.Exists(f.fs, "/photos/x.jpg")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "/photos/x.jpg", f.nav.CurrentFile())

	_, err = f.curator.Star()
	assert.ErrorIs(t, err, ErrTargetExists)
}

func TestCuratorStarUnset(t *testing.T) {
	f := newCuratorFixture(t, "", "/photos/x.jpg")
	require.NoError(t, f.nav.Advance(1))
	before, err := afero.ReadDir(f.fs, "/")
	require.NoError(t, err)

	_, err = f.curator.Star()
	assert.ErrorIs(t, err, ErrFavoritesUnset)

	after, err := afero.ReadDir(f.fs, "/")
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after))
	assert.Equal(t, StateShowing, f.nav.State())
}

func TestCuratorOpenContainingFolder(t *testing.T) {
	f := newCuratorFixture(t, "", "/photos/2020/x.jpg")
	require.NoError(t, f.nav.Advance(1))

	require.NoError(t, f.curator.OpenContainingFolder())

	assert.Equal(t, []string{"/photos/2020"}, f.opener.opened)
	assert.Equal(t, StateTerminated, f.nav.State())
	assert.Equal(t, 0, f.scheduler.Pending())

	_, err := f.curator.Hide()
	assert.ErrorIs(t, err, ErrSessionTerminated)
}

func TestCuratorOpenContainingFolderFails(t *testing.T) {
	f := newCuratorFixture(t, "", "/photos/x.jpg")
	require.NoError(t, f.nav.Advance(1))
	f.opener.err = errors.New("no file manager")

	err := f.curator.OpenContainingFolder()
	assert.Error(t, err)
	assert.Equal(t, StateShowing, f.nav.State())
}

func TestCuratorCopyKeepsPermissions(t *testing.T) {
	f := newCuratorFixture(t, "/favorites", "/photos/x.jpg")
	require.NoError(t, f.fs.Chmod("/photos/x.jpg", 0o600))
	require.NoError(t, f.nav.Advance(1))

	_, err := f.curator.Star()
	require.NoError(t, err)

	info, err := f.fs.Stat("/favorites/x.jpg")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

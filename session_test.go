package main

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, loader ImageLoader, files ...string) (*Session, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, p := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, afero.WriteFile(fs, p, []byte("x"), 0o644))
	}
	config := defaultConfig()
	config.FavoritesDirectoryPath = "/favorites"

	s, err := NewSession(files, SessionOptions{
		Fs:        fs,
		Loader:    loader,
		Scheduler: NewFrameScheduler(newFakeClock()),
		Opener:    &fakeOpener{},
		Config:    config,
	})
	require.NoError(t, err)
	return s, fs
}

func TestSessionStart(t *testing.T) {
	s, _ := newTestSession(t, newFakeLoader("/p/a.jpg"), "/p/a.jpg", "/p/b.jpg")

	assert.Equal(t, "-/2", s.GetCurrentPageNumber())
	require.NoError(t, s.Start())

	assert.Equal(t, "/p/b.jpg", s.GetCurrentFile())
	assert.Equal(t, "2/2", s.GetCurrentPageNumber())
	assert.Equal(t, "/p/b.jpg", s.handle.Path)
	assert.True(t, s.dirty)
}

func TestSessionEmptyFileList(t *testing.T) {
	_, err := NewSession(nil, SessionOptions{Loader: newFakeLoader(), Config: defaultConfig()})
	assert.ErrorIs(t, err, ErrEmptyFileList)
}

func TestSessionNavigationActions(t *testing.T) {
	s, _ := newTestSession(t, newFakeLoader(), "/p/a.jpg", "/p/b.jpg", "/p/c.jpg")
	require.NoError(t, s.Start())

	s.NavigateNext()
	assert.Equal(t, "/p/b.jpg", s.GetCurrentFile())

	s.NavigatePrevious()
	s.NavigatePrevious()
	assert.Equal(t, "/p/c.jpg", s.GetCurrentFile())

	s.RotateCurrent()
	assert.Equal(t, -90, s.GetRotationDegrees())
	assert.Equal(t, "/p/c.jpg", s.GetCurrentFile())
}

func TestSessionTogglePause(t *testing.T) {
	s, _ := newTestSession(t, newFakeLoader(), "/p/a.jpg")
	require.NoError(t, s.Start())

	s.TogglePause()
	assert.True(t, s.IsPaused())
	assert.Equal(t, "Paused", s.GetOverlayMessage())
	assert.Equal(t, 0, s.scheduler.Pending())

	s.TogglePause()
	assert.False(t, s.IsPaused())
	assert.Equal(t, "Resumed", s.GetOverlayMessage())
	assert.Equal(t, 1, s.scheduler.Pending())
}

func TestSessionHideAndStar(t *testing.T) {
	s, fs := newTestSession(t, newFakeLoader(), "/p/a.jpg", "/p/b.jpg")
	require.NoError(t, s.Start())

	s.StarCurrent()
	assert.Equal(t, "Starred: a.jpg", s.GetOverlayMessage())

	s.HideCurrent()
	assert.Equal(t, "Hidden: a.jpg", s.GetOverlayMessage())
	assert.Equal(t, "/p/b.jpg", s.GetCurrentFile())

	exists, err := afero.Exists(fs, "/p/Hide/a.jpg")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = afero.Exists(fs, "/favorites/a.jpg")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSessionRecoverableErrorIsShown(t *testing.T) {
	s, _ := newTestSession(t, newFakeLoader(), "/p/a.jpg")
	require.NoError(t, s.Start())

	s.StarCurrent()
	s.StarCurrent()

	assert.Contains(t, s.GetOverlayMessage(), ErrTargetExists.Error())
	assert.False(t, s.IsTerminated())
	assert.NoError(t, s.exitErr)
}

func TestSessionExhaustionEndsSession(t *testing.T) {
	loader := newFakeLoader()
	s, _ := newTestSession(t, loader, "/p/a.jpg", "/p/b.jpg")
	require.NoError(t, s.Start())

	loader.broken["/p/a.jpg"] = true
	loader.broken["/p/b.jpg"] = true
	s.NavigateNext()

	assert.True(t, s.IsTerminated())
	assert.ErrorIs(t, s.exitErr, ErrNoDecodableFiles)
}

func TestSessionExit(t *testing.T) {
	s, _ := newTestSession(t, newFakeLoader(), "/p/a.jpg")
	require.NoError(t, s.Start())

	s.Exit()
	assert.True(t, s.IsTerminated())
	assert.NoError(t, s.exitErr)

	// Actions after the end are ignored
	s.NavigateNext()
	assert.Equal(t, "", s.GetOverlayMessage())
}

func TestSessionOpenContainingFolder(t *testing.T) {
	s, _ := newTestSession(t, newFakeLoader(), "/p/a.jpg")
	require.NoError(t, s.Start())

	s.OpenContainingFolder()
	assert.True(t, s.IsTerminated())
}

func TestSessionToggleInfo(t *testing.T) {
	s, _ := newTestSession(t, newFakeLoader(), "/p/a.jpg")

	assert.False(t, s.IsShowingInfo())
	s.ToggleInfo()
	assert.True(t, s.IsShowingInfo())
}

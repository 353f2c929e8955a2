package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// defaultDirPermissions is the permission mode for created directories
const defaultDirPermissions = 0o755

// FolderOpener asks the desktop environment to show a directory
type FolderOpener interface {
	Open(dir string) error
}

// SystemOpener opens directories with the platform's file manager
type SystemOpener struct{}

// Open starts the file manager without waiting for it
func (SystemOpener) Open(dir string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("explorer", dir)
	case "darwin":
		cmd = exec.Command("open", dir)
	default:
		cmd = exec.Command("xdg-open", dir)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening %s: %w", dir, err)
	}
	go func() {
		// Reap the child so it does not linger as a zombie
		_ = cmd.Wait()
	}()
	return nil
}

// FileCurator performs the on-disk actions on the current file
type FileCurator struct {
	fs            afero.Fs
	nav           *NavigationState
	opener        FolderOpener
	hiddenDirName string
	favoritesDir  string
}

// NewFileCurator creates a FileCurator
func NewFileCurator(fs afero.Fs, nav *NavigationState, opener FolderOpener, hiddenDirName, favoritesDir string) *FileCurator {
	return &FileCurator{
		fs:            fs,
		nav:           nav,
		opener:        opener,
		hiddenDirName: hiddenDirName,
		favoritesDir:  favoritesDir,
	}
}

func (c *FileCurator) currentFile() (string, error) {
	if c.nav.State() == StateTerminated {
		return "", ErrSessionTerminated
	}
	current := c.nav.CurrentFile()
	if current == "" {
		return "", ErrNothingShown
	}
	return current, nil
}

// Hide moves the current file into the hidden subdirectory next to it and
// returns the new path. The slideshow advances before the move so it never
// shows a file that is being moved.
func (c *FileCurator) Hide() (string, error) {
	current, err := c.currentFile()
	if err != nil {
		return "", err
	}

	hiddenDir := filepath.Join(filepath.Dir(current), c.hiddenDirName)
	if err := c.fs.MkdirAll(hiddenDir, defaultDirPermissions); err != nil {
		return "", fmt.Errorf("creating %s: %w", hiddenDir, err)
	}

	target := filepath.Join(hiddenDir, filepath.Base(current))
	if err := c.checkTarget(target); err != nil {
		return "", err
	}

	if err := c.nav.Advance(1); err != nil {
		return "", err
	}
	if c.nav.CurrentFile() == current {
		// Wrapped around onto the same file
		return "", fmt.Errorf("hiding %s: %w", current, ErrLastImage)
	}

	if err := c.fs.Rename(current, target); err != nil {
		return "", fmt.Errorf("moving %s to %s: %w", current, target, err)
	}
	c.nav.Forget(current)

	logrus.WithField("path", current).WithField("target", target).Info("Hid file")
	return target, nil
}

// Star copies the current file into the favorites directory and returns the
// path of the copy
func (c *FileCurator) Star() (string, error) {
	if c.favoritesDir == "" {
		return "", ErrFavoritesUnset
	}
	current, err := c.currentFile()
	if err != nil {
		return "", err
	}

	if err := c.fs.MkdirAll(c.favoritesDir, defaultDirPermissions); err != nil {
		return "", fmt.Errorf("creating %s: %w", c.favoritesDir, err)
	}

	target := filepath.Join(c.favoritesDir, filepath.Base(current))
	if err := c.checkTarget(target); err != nil {
		return "", err
	}
	if err := c.copyFile(current, target); err != nil {
		return "", err
	}

	logrus.WithField("path", current).WithField("target", target).Info("Starred file")
	return target, nil
}

// OpenContainingFolder shows the current file's directory and ends the
// session. If the folder cannot be opened the session goes on.
func (c *FileCurator) OpenContainingFolder() error {
	current, err := c.currentFile()
	if err != nil {
		return err
	}

	dir := filepath.Dir(current)
	if err := c.opener.Open(dir); err != nil {
		return err
	}
	c.nav.Terminate()
	return nil
}

func (c *FileCurator) checkTarget(target string) error {
	exists, err := afero.Exists(c.fs, target)
	if err != nil {
		return fmt.Errorf("checking %s: %w", target, err)
	}
	if exists {
		return fmt.Errorf("%s: %w", target, ErrTargetExists)
	}
	return nil
}

// copyFile copies src to a new file dst, keeping mode and modification time
func (c *FileCurator) copyFile(src, dst string) (err error) {
	in, err := c.fs.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", src, err)
	}

	out, err := c.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", dst, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file %s: %w", dst, cerr)
		}
		if err != nil {
			// Do not leave a partial favorite behind
			_ = c.fs.Remove(dst)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}

	if err := c.fs.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		logrus.WithError(err).WithField("path", dst).Warn("Could not preserve modification time")
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Session is one run of the slideshow. It owns the navigation state, the
// curator and the display surface, and drives them from ebiten's Update
// loop so every input event and timer callback runs on one goroutine.
type Session struct {
	nav          *NavigationState
	curator      *FileCurator
	scheduler    *FrameScheduler
	inputHandler *InputHandler
	renderer     *Renderer

	// Display
	handle     *ImageHandle
	dirty      bool
	displayImg *ebiten.Image
	fitW, fitH int

	// UI state
	showInfo           bool
	overlayMessage     string
	overlayMessageTime time.Time
	floatingReleased   bool

	exitErr error
}

// SessionOptions collects what a Session needs besides the file list
type SessionOptions struct {
	Fs        afero.Fs
	Loader    ImageLoader
	Scheduler *FrameScheduler
	Opener    FolderOpener
	Config    Config
}

// NewSession creates an idle session over files. Nothing is shown until
// Start is called.
func NewSession(files []string, opts SessionOptions) (*Session, error) {
	s := &Session{scheduler: opts.Scheduler}

	nav, err := NewNavigationState(files, opts.Loader, s, opts.Scheduler, opts.Config.AutoAdvanceInterval())
	if err != nil {
		return nil, err
	}
	s.nav = nav
	s.curator = NewFileCurator(opts.Fs, nav, opts.Opener,
		opts.Config.HiddenDirectoryName, opts.Config.FavoritesDirectoryPath)

	s.inputHandler = NewInputHandler(s, s,
		NewKeybindingManager(opts.Config.Keybindings),
		NewMousebindingManager(opts.Config.Mousebindings, opts.Config.MouseSettings))
	s.renderer = NewRenderer(s)
	return s, nil
}

// Start shows the first decodable file
func (s *Session) Start() error {
	return s.nav.Advance(1)
}

// Show implements DisplayPort
func (s *Session) Show(handle *ImageHandle) {
	s.handle = handle
	s.dirty = true
}

// report turns an operation error into a notification. Fatal errors end the
// session and become the process exit error.
func (s *Session) report(err error) {
	if err == nil || errors.Is(err, ErrSessionTerminated) {
		return
	}
	if isFatal(err) {
		logrus.WithError(err).Error("Ending slideshow")
		s.exitErr = err
		s.nav.Terminate()
		return
	}
	logrus.WithError(err).Warn("Action failed")
	s.ShowOverlayMessage(err.Error())
}

// Update implements ebiten.Game
func (s *Session) Update() error {
	if !s.floatingReleased {
		// Topmost only for launch, so the slideshow comes up in front
		ebiten.SetWindowFloating(false)
		s.floatingReleased = true
	}

	s.inputHandler.HandleInput()
	if !s.IsTerminated() {
		s.report(s.scheduler.Poll())
	}

	if s.IsTerminated() {
		if s.exitErr != nil {
			return s.exitErr
		}
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game
func (s *Session) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen)
}

// Layout implements ebiten.Game
func (s *Session) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// InputActions implementation

func (s *Session) Exit() {
	s.nav.Terminate()
}

func (s *Session) OpenContainingFolder() {
	s.report(s.curator.OpenContainingFolder())
}

func (s *Session) NavigateNext() {
	s.report(s.nav.Advance(1))
}

func (s *Session) NavigatePrevious() {
	s.report(s.nav.Advance(-1))
}

func (s *Session) RotateCurrent() {
	s.report(s.nav.Rotate())
}

func (s *Session) TogglePause() {
	s.nav.SetPaused(!s.nav.IsPaused())
	if s.nav.IsPaused() {
		s.ShowOverlayMessage("Paused")
	} else {
		s.ShowOverlayMessage("Resumed")
	}
}

func (s *Session) HideCurrent() {
	target, err := s.curator.Hide()
	if err != nil {
		s.report(err)
		return
	}
	s.ShowOverlayMessage(fmt.Sprintf("Hidden: %s", filepath.Base(target)))
}

func (s *Session) StarCurrent() {
	target, err := s.curator.Star()
	if err != nil {
		s.report(err)
		return
	}
	s.ShowOverlayMessage(fmt.Sprintf("Starred: %s", filepath.Base(target)))
}

func (s *Session) ToggleInfo() {
	s.showInfo = !s.showInfo
}

func (s *Session) ShowOverlayMessage(message string) {
	s.overlayMessage = message
	s.overlayMessageTime = time.Now()
}

// InputState implementation

func (s *Session) IsTerminated() bool {
	return s.nav.State() == StateTerminated
}

// RenderState implementation

// GetDisplayImage returns the current image fitted to the screen. The GPU
// copy is rebuilt only when the image or the screen size changed.
func (s *Session) GetDisplayImage(screenW, screenH int) *ebiten.Image {
	if !s.handle.Valid() {
		return nil
	}
	if s.displayImg != nil && !s.dirty && s.fitW == screenW && s.fitH == screenH {
		return s.displayImg
	}

	if s.displayImg != nil {
		s.displayImg.Deallocate()
	}
	s.displayImg = ebiten.NewImageFromImage(fitToScreen(s.handle.Image, screenW, screenH))
	s.fitW, s.fitH = screenW, screenH
	s.dirty = false
	return s.displayImg
}

func (s *Session) IsShowingInfo() bool {
	return s.showInfo
}

func (s *Session) IsPaused() bool {
	return s.nav.IsPaused()
}

func (s *Session) GetOverlayMessage() string {
	return s.overlayMessage
}

func (s *Session) GetOverlayMessageTime() time.Time {
	return s.overlayMessageTime
}

func (s *Session) GetCurrentFile() string {
	return s.nav.CurrentFile()
}

func (s *Session) GetCurrentPageNumber() string {
	if s.nav.Index() < 0 {
		return fmt.Sprintf("-/%d", s.nav.Len())
	}
	return fmt.Sprintf("%d/%d", s.nav.Index()+1, s.nav.Len())
}

func (s *Session) GetRotationDegrees() int {
	if s.handle == nil {
		return 0
	}
	return s.handle.RotationDegrees
}

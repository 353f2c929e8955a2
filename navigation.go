package main

import (
	"fmt"
	"time"
)

// State is the navigation state machine's state
type State int

const (
	StateIdle       State = iota // Nothing shown yet
	StateShowing                 // A valid image is current
	StateTerminated              // Session over, no further navigation
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateShowing:
		return "showing"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// rotateStep is the rotation applied by Rotate (clockwise quarter turn)
const rotateStep = -90

// DisplayPort renders the current image
type DisplayPort interface {
	Show(handle *ImageHandle)
}

// NavigationState owns the file list, the current index and the single
// auto-advance timer of a slideshow session.
//
// The file list is never modified after construction. Files hidden during
// the session keep their slot and are skipped as undecodable when visited.
type NavigationState struct {
	files     []string
	index     int
	current   *ImageHandle
	state     State
	paused    bool
	interval  time.Duration
	timer     Timer
	loader    ImageLoader
	display   DisplayPort
	scheduler Scheduler
}

// NewNavigationState creates an idle NavigationState. files must not be empty.
func NewNavigationState(files []string, loader ImageLoader, display DisplayPort, scheduler Scheduler, interval time.Duration) (*NavigationState, error) {
	if len(files) == 0 {
		return nil, ErrEmptyFileList
	}
	return &NavigationState{
		files:     files,
		index:     -1,
		state:     StateIdle,
		interval:  interval,
		loader:    loader,
		display:   display,
		scheduler: scheduler,
	}, nil
}

// wrap maps any integer onto a valid index (cyclic slideshow)
func (n *NavigationState) wrap(i int) int {
	l := len(n.files)
	return ((i % l) + l) % l
}

// Advance moves by delta, skipping files that do not decode. Skipped files
// are never shown. After one full cycle without a decodable file it gives up
// with ErrNoDecodableFiles and leaves index and current image untouched.
func (n *NavigationState) Advance(delta int) error {
	if n.state == StateTerminated {
		return ErrSessionTerminated
	}
	if delta == 0 {
		return ErrInvalidDelta
	}

	idx := n.index
	if idx < 0 && delta < 0 {
		// From idle, going backwards starts at the end of the list
		idx = 0
	}
	for attempt := 0; attempt < len(n.files); attempt++ {
		idx = n.wrap(idx + delta)
		handle := n.loader.Load(n.files[idx])
		if !handle.Valid() {
			debugLog("Skipping [%d/%d] %s", idx+1, len(n.files), n.files[idx])
			continue
		}

		n.index = idx
		n.current = handle
		n.state = StateShowing
		n.display.Show(handle)
		n.reschedule()
		return nil
	}

	return fmt.Errorf("advance by %d from index %d over %d files: %w",
		delta, n.index, len(n.files), ErrNoDecodableFiles)
}

// reschedule replaces the pending auto-advance timer. The old handle is
// always stopped first so at most one timer is ever pending.
func (n *NavigationState) reschedule() {
	n.stopTimer()
	if n.paused || n.interval <= 0 || n.scheduler == nil {
		return
	}
	n.timer = n.scheduler.AfterFunc(n.interval, n.autoAdvance)
}

func (n *NavigationState) stopTimer() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

func (n *NavigationState) autoAdvance() error {
	n.timer = nil
	debugLog("Auto-advance after %s", n.interval)
	return n.Advance(1)
}

// Rotate turns the current image a quarter clockwise and shows it again.
// Neither the index nor the timer change.
func (n *NavigationState) Rotate() error {
	if n.state == StateTerminated {
		return ErrSessionTerminated
	}
	if n.state != StateShowing {
		return ErrNothingShown
	}
	if err := n.current.Rotate(rotateStep); err != nil {
		return err
	}
	n.display.Show(n.current)
	return nil
}

// SetPaused stops or restarts auto-advance
func (n *NavigationState) SetPaused(paused bool) {
	if n.paused == paused {
		return
	}
	n.paused = paused
	if paused {
		n.stopTimer()
		return
	}
	if n.state == StateShowing {
		n.reschedule()
	}
}

// IsPaused reports whether auto-advance is stopped
func (n *NavigationState) IsPaused() bool {
	return n.paused
}

// Terminate ends the session. It is the only way into StateTerminated.
func (n *NavigationState) Terminate() {
	n.stopTimer()
	n.state = StateTerminated
}

// Forget tells the loader that path changed on disk
func (n *NavigationState) Forget(path string) {
	n.loader.Forget(path)
}

// CurrentFile returns the path at the current index, or "" when idle
func (n *NavigationState) CurrentFile() string {
	if n.index < 0 {
		return ""
	}
	return n.files[n.index]
}

// Current returns the handle being shown, or nil when idle
func (n *NavigationState) Current() *ImageHandle {
	return n.current
}

// Index returns the current index, -1 when idle
func (n *NavigationState) Index() int {
	return n.index
}

// Len returns the number of files in the list
func (n *NavigationState) Len() int {
	return len(n.files)
}

// State returns the state machine's current state
func (n *NavigationState) State() State {
	return n.state
}

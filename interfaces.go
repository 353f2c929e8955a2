package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// Overlay message display duration
	overlayMessageDuration = 3 * time.Second
)

// RenderState provides read-only access to session state for the renderer
type RenderState interface {
	// Rendering data, already fitted to the screen
	GetDisplayImage(screenW, screenH int) *ebiten.Image

	// UI state
	IsShowingInfo() bool
	IsPaused() bool
	GetOverlayMessage() string
	GetOverlayMessageTime() time.Time

	// Display data
	GetCurrentFile() string
	GetCurrentPageNumber() string
	GetRotationDegrees() int
}

// InputActions provides action methods for the input handler
type InputActions interface {
	// Session control
	Exit()
	OpenContainingFolder()

	// Navigation
	NavigateNext()
	NavigatePrevious()
	RotateCurrent()
	TogglePause()

	// File curation
	HideCurrent()
	StarCurrent()

	// Display toggles
	ToggleInfo()

	// Messages
	ShowOverlayMessage(message string)
}

// InputState provides read-only access to input-related state
type InputState interface {
	IsTerminated() bool
}

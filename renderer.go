package main

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"
)

// Common colors used in rendering
var (
	colorGray   = color.RGBA{180, 180, 180, 255}
	colorYellow = color.RGBA{255, 255, 100, 255}

	bgColorMedium = color.RGBA{0, 0, 0, 160} // Medium semi-transparent
)

const (
	infoFontSize    = 18.0
	overlayFontSize = 24.0
	textPadding     = 12.0
)

// fitToScreen scales img down with Lanczos so it fits in maxW x maxH while
// keeping its aspect ratio. Images that already fit are returned unchanged,
// nothing is ever scaled up.
func fitToScreen(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	if maxW <= 0 || maxH <= 0 || (b.Dx() <= maxW && b.Dy() <= maxH) {
		return img
	}
	return imaging.Fit(img, maxW, maxH, imaging.Lanczos)
}

// centerOffset returns the top-left corner that centers a w x h image on a
// screenW x screenH surface
func centerOffset(w, h, screenW, screenH int) (float64, float64) {
	return float64(screenW-w) / 2, float64(screenH-h) / 2
}

// Renderer handles all drawing operations
type Renderer struct {
	renderState RenderState
	fontSource  *text.GoTextFaceSource
}

// NewRenderer creates a new Renderer. Text overlays are skipped if the font
// cannot be loaded.
func NewRenderer(renderState RenderState) *Renderer {
	s, err := newFontSource()
	if err != nil {
		logrus.WithError(err).Error("Failed to load font, text overlays disabled")
	}
	return &Renderer{
		renderState: renderState,
		fontSource:  s,
	}
}

// Draw renders the entire screen
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if img := r.renderState.GetDisplayImage(w, h); img != nil {
		x, y := centerOffset(img.Bounds().Dx(), img.Bounds().Dy(), w, h)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		screen.DrawImage(img, op)
	}

	if r.fontSource == nil {
		return
	}

	if r.renderState.IsShowingInfo() {
		r.drawInfoDisplay(screen)
	}

	if r.renderState.GetOverlayMessage() != "" && time.Since(r.renderState.GetOverlayMessageTime()) < overlayMessageDuration {
		r.drawOverlayMessage(screen)
	}
}

// drawInfoDisplay shows the position, file name and state at the bottom
func (r *Renderer) drawInfoDisplay(screen *ebiten.Image) {
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	infoFont := &text.GoTextFace{Source: r.fontSource, Size: infoFontSize}

	info := fmt.Sprintf("%s  %s", r.renderState.GetCurrentPageNumber(), filepath.Base(r.renderState.GetCurrentFile()))
	if deg := r.renderState.GetRotationDegrees(); deg != 0 {
		info += fmt.Sprintf("  rotated %d°", deg)
	}
	if r.renderState.IsPaused() {
		info += "  [paused]"
	}

	textW, textH := text.Measure(info, infoFont, 0)
	boxH := textH + textPadding*2
	DrawFilledRect(screen, 0, h-boxH, w, boxH, bgColorMedium)
	DrawText(screen, info, infoFont, (w-textW)/2, h-boxH+textPadding, colorGray)
}

// drawOverlayMessage shows the transient notification banner at the top
func (r *Renderer) drawOverlayMessage(screen *ebiten.Image) {
	w := float64(screen.Bounds().Dx())

	overlayFont := &text.GoTextFace{Source: r.fontSource, Size: overlayFontSize}

	message := r.renderState.GetOverlayMessage()
	textW, textH := text.Measure(message, overlayFont, 0)
	boxW := textW + textPadding*2
	boxH := textH + textPadding*2
	boxX := (w - boxW) / 2
	boxY := textPadding * 2

	DrawFilledRect(screen, boxX, boxY, boxW, boxH, bgColorMedium)
	DrawText(screen, message, overlayFont, boxX+textPadding, boxY+textPadding, colorYellow)
}

package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const defaultCacheSize = 8

// ImageHandle is one decoded file plus the rotation applied since it was loaded.
// A handle with a nil Image stands for a file that could not be decoded.
type ImageHandle struct {
	Path            string
	Image           image.Image
	RotationDegrees int // Signed running sum, never normalized
}

// Valid reports whether the handle holds decoded pixels
func (h *ImageHandle) Valid() bool {
	return h != nil && h.Image != nil
}

// Rotate turns the image counter-clockwise by degrees (negative turns
// clockwise). The canvas grows to fit, nothing is cropped.
func (h *ImageHandle) Rotate(degrees int) error {
	if degrees == 0 || degrees%90 != 0 {
		return fmt.Errorf("rotate by %d: %w", degrees, ErrInvalidRotation)
	}
	if !h.Valid() {
		return ErrNothingShown
	}

	switch ((degrees % 360) + 360) % 360 {
	case 90:
		h.Image = imaging.Rotate90(h.Image)
	case 180:
		h.Image = imaging.Rotate180(h.Image)
	case 270:
		h.Image = imaging.Rotate270(h.Image)
	}
	h.RotationDegrees += degrees
	return nil
}

// ImageLoader produces handles for paths. Load never fails: undecodable files
// come back as invalid handles.
type ImageLoader interface {
	Load(path string) *ImageHandle
	Forget(path string)
}

// DefaultImageLoader decodes through afero and keeps recently shown images
// in an LRU so going back does not decode again
type DefaultImageLoader struct {
	fs    afero.Fs
	cache *lru.Cache[string, image.Image]
}

// NewImageLoader creates a DefaultImageLoader
func NewImageLoader(fs afero.Fs, cacheSize int) *DefaultImageLoader {
	cache, err := lru.New[string, image.Image](cacheSize)
	if err != nil {
		logrus.WithError(err).Errorf("Failed to create LRU cache of size %d", cacheSize)
		cache, _ = lru.New[string, image.Image](defaultCacheSize)
	}
	return &DefaultImageLoader{fs: fs, cache: cache}
}

// Load returns a fresh handle for path. Every handle starts unrotated even
// when the pixels come from the cache.
func (l *DefaultImageLoader) Load(path string) *ImageHandle {
	if img, ok := l.cache.Get(path); ok {
		debugLog("Cache HIT: %s (cache: %d items)", path, l.cache.Len())
		return &ImageHandle{Path: path, Image: img}
	}

	img, err := l.decode(path)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Warn("File is not an image")
		return &ImageHandle{Path: path}
	}

	l.cache.Add(path, img)
	debugLog("Cache MISS: %s, decoded and cached (cache: %d items)", path, l.cache.Len())
	return &ImageHandle{Path: path, Image: img}
}

// Forget drops path from the cache
func (l *DefaultImageLoader) Forget(path string) {
	l.cache.Remove(path)
}

// decode reads the file and applies its EXIF orientation
func (l *DefaultImageLoader) decode(path string) (image.Image, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

package main

import "errors"

var (
	// ErrEmptyFileList is returned when enumeration produced nothing to show
	ErrEmptyFileList = errors.New("no files found under the search paths")

	// ErrNoDecodableFiles is returned when a full cycle over the file list
	// found no image that could be decoded
	ErrNoDecodableFiles = errors.New("no decodable image left to show")

	ErrSessionTerminated = errors.New("session terminated")
	ErrNothingShown      = errors.New("no image is being shown")
	ErrInvalidRotation   = errors.New("rotation must be a non-zero multiple of 90 degrees")
	ErrInvalidDelta      = errors.New("navigation delta must be non-zero")

	// ErrFavoritesUnset is a configuration error: starring needs a favorites directory
	ErrFavoritesUnset = errors.New("favorites directory is not configured")

	// ErrLastImage is returned by hide when no other file could be shown
	ErrLastImage = errors.New("no other image to show")

	// ErrTargetExists is returned instead of overwriting a file during hide or star
	ErrTargetExists = errors.New("target file already exists")
)

// isFatal reports whether err must end the session rather than be shown
// as a notification
func isFatal(err error) bool {
	return errors.Is(err, ErrNoDecodableFiles) || errors.Is(err, ErrEmptyFileList)
}

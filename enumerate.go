package main

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// ignoredSuffixLen is the fixed length of an ignored "extension"
const ignoredSuffixLen = 3

// EnumerateOptions controls which files Enumerate keeps
type EnumerateOptions struct {
	IgnoredSuffixes     []string // Matched against the last three characters of the path
	Recursive           bool
	HiddenDirectoryName string   // Directories with this name are never entered
	ExcludePatterns     []string // doublestar patterns relative to the root
}

// suffixSet builds the lookup set for ignored suffixes. Entries that are not
// exactly three characters long can never match and are dropped here.
func suffixSet(suffixes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(suffixes))
	for _, s := range suffixes {
		if len([]rune(s)) != ignoredSuffixLen {
			continue
		}
		set[s] = struct{}{}
	}
	return set
}

// hasIgnoredSuffix compares the last three characters of path with the set.
// This is a plain suffix check, not an extension parser: "notes.xtxt" ends in
// "txt" too.
func hasIgnoredSuffix(path string, ignored map[string]struct{}) bool {
	if len(ignored) == 0 {
		return false
	}
	r := []rune(path)
	if len(r) < ignoredSuffixLen {
		return false
	}
	_, ok := ignored[string(r[len(r)-ignoredSuffixLen:])]
	return ok
}

// pathFilter decides what Enumerate keeps under one root
type pathFilter struct {
	root       string
	ignored    map[string]struct{}
	hiddenName string
	patterns   []string
}

func (f *pathFilter) excluded(path string) bool {
	if len(f.patterns) == 0 {
		return false
	}
	rel, err := filepath.Rel(f.root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range f.patterns {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			// Invalid pattern never matches
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

func (f *pathFilter) skipDir(path string, info os.FileInfo) bool {
	if path == f.root {
		return false
	}
	if f.hiddenName != "" && info.Name() == f.hiddenName {
		return true
	}
	return f.excluded(path)
}

func (f *pathFilter) keepFile(path string, info os.FileInfo) bool {
	if !info.Mode().IsRegular() {
		return false
	}
	if hasIgnoredSuffix(path, f.ignored) {
		return false
	}
	return !f.excluded(path)
}

// Enumerate lists the regular files under roots. The result is the
// concatenation over all roots in enumeration order. Unreadable paths are
// logged and skipped.
func Enumerate(fs afero.Fs, roots []string, opts EnumerateOptions) []string {
	ignored := suffixSet(opts.IgnoredSuffixes)

	var files []string
	for _, root := range roots {
		filter := &pathFilter{
			root:       filepath.Clean(root),
			ignored:    ignored,
			hiddenName: opts.HiddenDirectoryName,
			patterns:   opts.ExcludePatterns,
		}

		var found []string
		if opts.Recursive {
			found = walkRoot(fs, filter)
		} else {
			found = listRoot(fs, filter)
		}
		debugLog("Enumerated %d files under %s", len(found), root)
		files = append(files, found...)
	}
	return files
}

func walkRoot(fs afero.Fs, filter *pathFilter) []string {
	var found []string
	err := afero.Walk(fs, filter.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			logrus.WithError(err).WithField("path", path).Warn("Skipping unreadable path")
			if info != nil && info.IsDir() && path != filter.root {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			if filter.skipDir(path, info) {
				return filepath.SkipDir
			}
			return nil
		}
		if filter.keepFile(path, info) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).WithField("path", filter.root).Warn("Walk stopped early")
	}
	return found
}

func listRoot(fs afero.Fs, filter *pathFilter) []string {
	entries, err := afero.ReadDir(fs, filter.root)
	if err != nil {
		logrus.WithError(err).WithField("path", filter.root).Warn("Skipping unreadable path")
		return nil
	}

	var found []string
	for _, info := range entries {
		path := filepath.Join(filter.root, info.Name())
		if info.IsDir() {
			continue
		}
		if filter.keepFile(path, info) {
			found = append(found, path)
		}
	}
	return found
}


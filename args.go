package main

import "fmt"

// Args holds the command-line options. Options that are set override the
// settings file.
type Args struct {
	Config   string   `arg:"-c,--config" help:"Settings file (default ~/.slideshow.json)"`
	Delay    float64  `arg:"-d,--delay" help:"Seconds between automatic advances"`
	Windowed bool     `arg:"-w,--windowed" help:"Run in a window instead of full screen"`
	Debug    bool     `arg:"--debug" help:"Enable debug logging"`
	Paths    []string `arg:"positional" help:"Directories to show, replacing search_paths"`
}

// Description returns the program description for go-arg
func (Args) Description() string {
	return "Full-screen slideshow over the images in a set of directories"
}

// Version returns the version string for go-arg
func (Args) Version() string {
	return "slideshow 1.0.0"
}

// configPath returns the settings file to read
func (a Args) configPath() string {
	if a.Config != "" {
		return a.Config
	}
	return getConfigPath()
}

// applyTo overrides cfg with the options given on the command line
func (a Args) applyTo(cfg *Config) error {
	if len(a.Paths) > 0 {
		cfg.SearchPaths = a.Paths
	}
	if a.Delay < 0 {
		return fmt.Errorf("invalid delay %v: must be positive", a.Delay)
	}
	if a.Delay > 0 {
		cfg.AutoAdvanceSeconds = a.Delay
	}
	return nil
}

package main

import (
	"errors"

	"github.com/alexflint/go-arg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const windowTitle = "Slideshow"

func main() {
	var args Args
	arg.MustParse(&args)

	initLogging(args.Debug)

	result := loadConfigFromPath(args.configPath())
	for _, warning := range result.Warnings {
		logrus.Warn(warning)
	}
	config := result.Config
	if err := args.applyTo(&config); err != nil {
		logrus.Fatal(err)
	}
	debugLog("Config status %s, search paths %v", result.Status, config.SearchPaths)

	fs := afero.NewOsFs()

	files := Enumerate(fs, config.SearchPaths, config.EnumerateOptions())
	if len(files) == 0 {
		logrus.Fatal(ErrEmptyFileList)
	}
	strategy := GetOrderStrategy(config.Order)
	files = strategy.Order(files)
	logrus.Infof("Showing %d files in %s order", len(files), strategy.Name())

	session, err := NewSession(files, SessionOptions{
		Fs:        fs,
		Loader:    NewImageLoader(fs, config.CacheSize),
		Scheduler: NewFrameScheduler(RealClock{}),
		Opener:    SystemOpener{},
		Config:    config,
	})
	if err != nil {
		logrus.Fatal(err)
	}
	if err := session.Start(); err != nil {
		logrus.Fatal(err)
	}

	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	if args.Windowed {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(session); err != nil && !errors.Is(err, ebiten.Termination) {
		logrus.Fatal(err)
	}
}

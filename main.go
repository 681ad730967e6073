package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/kleyver/kleyver-app/internal/catalog"
	"github.com/kleyver/kleyver-app/internal/config"
	"github.com/kleyver/kleyver-app/internal/log"
	"github.com/kleyver/kleyver-app/internal/theme"
	"github.com/kleyver/kleyver-app/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.kleyver.app"
	AppName = "Kleyver"

	WindowWidth  = 420
	WindowHeight = 780
)

func main() {
	log.Configure(log.Config{Console: true})
	logger := log.WithComponent("app")
	logger.Info().Str("version", version).Msg("starting")

	myApp := app.NewWithID(AppID)

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	cat, err := catalog.Default(log.WithComponent("catalog"))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load gallery")
		os.Exit(1)
	}
	defer cat.Close()

	settings := config.NewSettings(myApp.Preferences())
	root := theme.NewRoot()
	themes := theme.NewController(settings, log.WithComponent("theme"), root, ui.NewFyneApplier(myApp))
	defer themes.Close()

	// Create and setup UI
	ui.NewRootUI(myWindow, ui.Services{
		Settings: settings,
		Themes:   themes,
		Catalog:  cat,
		Logger:   log.WithComponent("ui"),
	})

	logger.Debug().Strs("markers", root.Markers()).Msg("theme applied")

	// Show and run
	myWindow.ShowAndRun()
}

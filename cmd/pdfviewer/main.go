package main

import (
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/pdf-viewer/internal/config"
	"github.com/ytget/pdf-viewer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.pdf-viewer"
	AppName = "PDF Viewer"

	WindowWidth  = 1024
	WindowHeight = 768
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	startup, err := config.LoadStartup()
	if err != nil {
		log.Printf("failed to load %s: %v", config.StartupConfigPath(), err)
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewReaderTheme())
	myApp.SetIcon(ui.LogoResource)

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	root := ui.NewRootUI(myWindow, myApp, startup)

	document := startup.Document
	if len(os.Args) > 1 {
		document = os.Args[1]
	}
	if document != "" {
		root.OpenDocument(document)
	}

	myWindow.ShowAndRun()
}

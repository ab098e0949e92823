package ui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

const (
	AppIcon = "pdf-viewer.svg"
)

//go:embed pdf-viewer.svg
var appIconSVG []byte

// LogoResource is the embedded application icon
var LogoResource = fyne.NewStaticResource(AppIcon, appIconSVG)

package viewer

import "image"

// Size is a logical size in device-independent pixels
type Size struct {
	Width  float64
	Height float64
}

// Surface displays rendered pages. It is the only required element.
type Surface interface {
	// Present shows img, which is in device pixels, at the given logical size.
	Present(img image.Image, size Size)
	Clear()
}

// Container is the area the page is fitted into
type Container interface {
	Size() Size
	PixelRatio() float64
	SetRightToLeft(rtl bool)
}

// Control is a clickable control such as a toolbar button
type Control interface {
	// Bind sets the action run on activation; nil unbinds it.
	Bind(action func())
	SetEnabled(enabled bool)
	// SetActive marks a toggle-like control, such as an applied fit mode.
	SetActive(active bool)
}

// PageInput is the editable current page number
type PageInput interface {
	SetText(text string)
	// Bind sets the commit and blur handlers; nil unbinds them.
	Bind(onSubmit func(value string), onBlur func())
}

// Display shows a short read-only text
type Display interface {
	SetText(text string)
}

// Banner shows a transient message
type Banner interface {
	Show(text string)
	Hide()
}

// ProgressBanner is a banner with a percentage, -1 meaning indeterminate
type ProgressBanner interface {
	Banner
	SetProgress(percent int)
}

// Fullscreen toggles fullscreen presentation. fyne.Window satisfies it.
type Fullscreen interface {
	FullScreen() bool
	SetFullScreen(full bool)
}

// Elements binds the viewer to its widgets. Every field except Surface may be nil.
type Elements struct {
	Container  Container
	Surface    Surface
	PageInput  PageInput
	PageCount  Display
	ZoomLevel  Display
	Prev       Control
	Next       Control
	ZoomIn     Control
	ZoomOut    Control
	FitWidth   Control
	FitPage    Control
	Retry      Control
	Dismiss    Control
	Loading    ProgressBanner
	Error      Banner
	Fullscreen Fullscreen
}

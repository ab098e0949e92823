package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ToolButton is a toolbar button usable as a viewer control
type ToolButton struct {
	widget.Button
}

// NewToolButton creates a toolbar button showing icon, or label when icon is nil
func NewToolButton(label string, icon fyne.Resource) *ToolButton {
	b := &ToolButton{}
	if icon != nil {
		b.Icon = icon
	} else {
		b.Text = label
	}
	b.Importance = widget.LowImportance
	b.ExtendBaseWidget(b)
	return b
}

// Bind sets the tap action
func (b *ToolButton) Bind(action func()) {
	b.OnTapped = action
}

// SetEnabled enables or disables the button
func (b *ToolButton) SetEnabled(enabled bool) {
	if enabled {
		b.Enable()
	} else {
		b.Disable()
	}
}

// SetActive highlights the button
func (b *ToolButton) SetActive(active bool) {
	importance := widget.LowImportance
	if active {
		importance = widget.HighImportance
	}
	if b.Importance != importance {
		b.Importance = importance
		b.Refresh()
	}
}

// PageEntry is the current page field. It reports focus loss so an edited but
// not submitted value can be reverted.
type PageEntry struct {
	widget.Entry
	onBlur func()
}

// NewPageEntry creates a page number entry
func NewPageEntry() *PageEntry {
	e := &PageEntry{}
	e.ExtendBaseWidget(e)
	return e
}

// Bind sets the submit and blur handlers
func (e *PageEntry) Bind(onSubmit func(string), onBlur func()) {
	e.OnSubmitted = onSubmit
	e.onBlur = onBlur
}

// FocusLost reverts uncommitted edits through the blur handler
func (e *PageEntry) FocusLost() {
	e.Entry.FocusLost()
	if e.onBlur != nil {
		e.onBlur()
	}
}

// MinSize keeps room for a few digits
func (e *PageEntry) MinSize() fyne.Size {
	size := e.Entry.MinSize()
	if size.Width < PageEntryWidth {
		size.Width = PageEntryWidth
	}
	return size
}

// LoadingBanner shows the loading text with an indeterminate or percentage bar
type LoadingBanner struct {
	container *fyne.Container
	label     *widget.Label
	infinite  *widget.ProgressBarInfinite
	bar       *widget.ProgressBar
	text      string
}

// NewLoadingBanner creates a hidden loading banner
func NewLoadingBanner() *LoadingBanner {
	b := &LoadingBanner{
		label:    widget.NewLabel(""),
		infinite: widget.NewProgressBarInfinite(),
		bar:      widget.NewProgressBar(),
	}
	b.bar.Max = 100
	b.bar.Hide()
	b.container = container.NewBorder(nil, container.NewStack(b.infinite, b.bar), nil, nil, b.label)
	b.container.Hide()
	return b
}

// Container returns the banner's canvas object
func (b *LoadingBanner) Container() *fyne.Container {
	return b.container
}

// Show displays the banner with text
func (b *LoadingBanner) Show(text string) {
	b.text = text
	b.label.SetText(text)
	b.container.Show()
}

// Hide hides the banner and stops the animation
func (b *LoadingBanner) Hide() {
	b.infinite.Stop()
	b.container.Hide()
}

// SetProgress shows a percentage, or an indeterminate bar for negative values
func (b *LoadingBanner) SetProgress(percent int) {
	if percent < 0 {
		b.bar.Hide()
		b.infinite.Show()
		b.infinite.Start()
		b.label.SetText(b.text)
		return
	}
	if percent > 100 {
		percent = 100
	}
	b.infinite.Stop()
	b.infinite.Hide()
	b.bar.Show()
	b.bar.SetValue(float64(percent))
	b.label.SetText(fmt.Sprintf("%s %d%%", b.text, percent))
}

// ErrorBanner shows the last viewer error with retry and dismiss buttons
type ErrorBanner struct {
	container *fyne.Container
	label     *widget.Label
	Retry     *ToolButton
	Dismiss   *ToolButton
}

// NewErrorBanner creates a hidden error banner
func NewErrorBanner(retryText, dismissText string) *ErrorBanner {
	dismissLabel := IconClose
	if dismissText != "" {
		dismissLabel += " " + dismissText
	}
	b := &ErrorBanner{
		label:   widget.NewLabel(""),
		Retry:   NewToolButton(retryText, nil),
		Dismiss: NewToolButton(dismissLabel, nil),
	}
	b.label.Wrapping = fyne.TextWrapWord
	b.label.Importance = widget.DangerImportance
	b.Retry.Importance = widget.MediumImportance
	b.Retry.Disable()
	b.container = container.NewBorder(nil, nil, nil, container.NewHBox(b.Retry, b.Dismiss), b.label)
	b.container.Hide()
	return b
}

// Container returns the banner's canvas object
func (b *ErrorBanner) Container() *fyne.Container {
	return b.container
}

// Show displays the message
func (b *ErrorBanner) Show(text string) {
	b.label.SetText(text)
	b.container.Show()
}

// Hide hides the banner
func (b *ErrorBanner) Hide() {
	b.container.Hide()
}

// Text returns the message currently shown
func (b *ErrorBanner) Text() string {
	return b.label.Text
}

// TextDisplay is a label usable as a viewer display
type TextDisplay struct {
	widget.Label
}

// NewTextDisplay creates a display label
func NewTextDisplay() *TextDisplay {
	d := &TextDisplay{}
	d.ExtendBaseWidget(d)
	return d
}

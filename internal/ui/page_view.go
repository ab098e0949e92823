package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/pdf-viewer/internal/viewer"
)

// PageView shows the rendered page on a backdrop. It pans on drag and wheel,
// zooms on wheel with the shortcut modifier and turns pages on swipes.
type PageView struct {
	widget.BaseWidget

	image    *canvas.Image
	backdrop *canvas.Rectangle

	pageSize fyne.Size
	offset   fyne.Position
	rtl      bool
	lastSize fyne.Size
	gestures *GestureHandler

	// modifierHeld reports whether the zoom modifier is pressed
	modifierHeld func() bool

	// OnResized runs after the view changed size
	OnResized func()
	// OnWheelZoom receives wheel steps while the modifier is held, with
	// negative values for scrolling up, and reports whether it used them
	OnWheelZoom func(deltaY float64) bool
	// OnSwipe receives page turns from touch swipes
	OnSwipe func(next bool)
}

// NewPageView creates an empty page view
func NewPageView() *PageView {
	p := &PageView{
		image:        canvas.NewImageFromImage(nil),
		backdrop:     canvas.NewRectangle(theme.Color(ColorNamePageBackdrop)),
		modifierHeld: zoomModifierHeld,
	}
	p.image.FillMode = canvas.ImageFillStretch
	p.image.ScaleMode = canvas.ImageScaleSmooth
	p.image.Hide()
	p.gestures = NewGestureHandler(p.onGesture)
	p.ExtendBaseWidget(p)
	return p
}

// Present shows a rendered page at its logical size
func (p *PageView) Present(img image.Image, size viewer.Size) {
	newSize := fyne.NewSize(float32(size.Width), float32(size.Height))
	if newSize != p.pageSize {
		p.pageSize = newSize
		p.offset = p.startOffset()
	}
	p.image.Image = img
	p.image.Show()
	p.clampOffset()
	p.image.Refresh()
	p.Refresh()
}

// Clear removes the page
func (p *PageView) Clear() {
	p.image.Image = nil
	p.image.Hide()
	p.pageSize = fyne.Size{}
	p.offset = fyne.Position{}
	p.Refresh()
}

// HasPage reports whether a page is shown
func (p *PageView) HasPage() bool {
	return p.image.Image != nil
}

// PageSize returns the logical size of the shown page
func (p *PageView) PageSize() fyne.Size {
	return p.pageSize
}

// PagePosition returns where the page is drawn inside the view
func (p *PageView) PagePosition() fyne.Position {
	return placePage(p.Size(), p.pageSize, p.offset)
}

// ViewerContainer exposes the view as the area pages are fitted into
func (p *PageView) ViewerContainer() viewer.Container {
	return pageViewContainer{view: p}
}

// Resize resizes the view and reports real size changes
func (p *PageView) Resize(size fyne.Size) {
	p.BaseWidget.Resize(size)
	if size == p.lastSize {
		return
	}
	p.lastSize = size
	p.clampOffset()
	if p.OnResized != nil {
		p.OnResized()
	}
}

// Scrolled pans the page, or zooms while the modifier is held
func (p *PageView) Scrolled(ev *fyne.ScrollEvent) {
	if p.OnWheelZoom != nil && p.modifierHeld != nil && p.modifierHeld() {
		if p.OnWheelZoom(float64(-ev.Scrolled.DY)) {
			return
		}
	}
	p.panBy(ev.Scrolled.DX*WheelPanStep, ev.Scrolled.DY*WheelPanStep)
}

// Dragged pans the page with the pointer
func (p *PageView) Dragged(ev *fyne.DragEvent) {
	p.panBy(ev.Dragged.DX, ev.Dragged.DY)
}

// DragEnd is required by fyne.Draggable
func (p *PageView) DragEnd() {}

// TouchDown handles touch down events
func (p *PageView) TouchDown(event *mobile.TouchEvent) {
	p.gestures.TouchDown(event)
}

// TouchUp handles touch up events
func (p *PageView) TouchUp(event *mobile.TouchEvent) {
	p.gestures.TouchUp(event)
}

// TouchCancel handles touch cancel events
func (p *PageView) TouchCancel(event *mobile.TouchEvent) {
	p.gestures.TouchCancel(event)
}

func (p *PageView) onGesture(gesture GestureType) {
	next, ok := SwipeTarget(gesture, p.rtl)
	if !ok || p.OnSwipe == nil {
		return
	}
	p.OnSwipe(next)
}

func (p *PageView) panBy(dx, dy float32) {
	if !p.HasPage() {
		return
	}
	p.offset = p.offset.AddXY(dx, dy)
	p.clampOffset()
	p.Refresh()
}

// startOffset shows the top of a new page, aligned to the reading start edge
func (p *PageView) startOffset() fyne.Position {
	view := p.Size()
	if p.rtl && p.pageSize.Width > view.Width {
		return fyne.NewPos(view.Width-p.pageSize.Width, 0)
	}
	return fyne.NewPos(0, 0)
}

func (p *PageView) clampOffset() {
	p.offset = clampOffset(p.Size(), p.pageSize, p.offset)
}

// clampOffset keeps a page larger than the view covering it
func clampOffset(view, page fyne.Size, offset fyne.Position) fyne.Position {
	clamp := func(v, viewLen, pageLen float32) float32 {
		if pageLen <= viewLen {
			return 0
		}
		if v > 0 {
			return 0
		}
		if low := viewLen - pageLen; v < low {
			return low
		}
		return v
	}
	return fyne.NewPos(clamp(offset.X, view.Width, page.Width), clamp(offset.Y, view.Height, page.Height))
}

// placePage centers a page smaller than the view and applies the pan offset otherwise
func placePage(view, page fyne.Size, offset fyne.Position) fyne.Position {
	place := func(v, viewLen, pageLen float32) float32 {
		if pageLen <= viewLen {
			return (viewLen - pageLen) / 2
		}
		return v
	}
	return fyne.NewPos(place(offset.X, view.Width, page.Width), place(offset.Y, view.Height, page.Height))
}

func zoomModifierHeld() bool {
	app := fyne.CurrentApp()
	if app == nil {
		return false
	}
	d, ok := app.Driver().(desktop.Driver)
	if !ok {
		return false
	}
	mods := d.CurrentKeyModifiers()
	return mods&(fyne.KeyModifierControl|fyne.KeyModifierShortcutDefault) != 0
}

// CreateRenderer creates the widget renderer
func (p *PageView) CreateRenderer() fyne.WidgetRenderer {
	return &pageViewRenderer{view: p}
}

type pageViewRenderer struct {
	view *PageView
}

func (r *pageViewRenderer) Layout(size fyne.Size) {
	r.view.backdrop.Resize(size)
	r.view.image.Resize(r.view.pageSize)
	r.view.image.Move(placePage(size, r.view.pageSize, r.view.offset))
}

func (r *pageViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(MinTouchTargetSize, MinTouchTargetSize)
}

func (r *pageViewRenderer) Refresh() {
	r.view.backdrop.FillColor = theme.Color(ColorNamePageBackdrop)
	r.Layout(r.view.Size())
	r.view.backdrop.Refresh()
	canvas.Refresh(r.view.image)
}

func (r *pageViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.view.backdrop, r.view.image}
}

func (r *pageViewRenderer) Destroy() {}

// pageViewContainer adapts PageView to viewer.Container
type pageViewContainer struct {
	view *PageView
}

func (c pageViewContainer) Size() viewer.Size {
	size := c.view.Size()
	return viewer.Size{Width: float64(size.Width), Height: float64(size.Height)}
}

func (c pageViewContainer) PixelRatio() float64 {
	app := fyne.CurrentApp()
	if app == nil {
		return 1
	}
	cnv := app.Driver().CanvasForObject(c.view)
	if cnv == nil || cnv.Scale() <= 0 {
		return 1
	}
	return float64(cnv.Scale())
}

func (c pageViewContainer) SetRightToLeft(rtl bool) {
	c.view.rtl = rtl
}

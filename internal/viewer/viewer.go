package viewer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"
	"strconv"

	"github.com/google/uuid"

	"github.com/ytget/pdf-viewer/internal/model"
	"github.com/ytget/pdf-viewer/internal/render"
)

// Viewer presents a paged document and serializes its renders.
// All methods must be called on the UI loop.
type Viewer struct {
	id      string
	cfg     Config
	backend render.Backend
	sched   Scheduler

	state model.ViewerState
	doc   render.Document

	initialized bool
	// generation invalidates async results from earlier loads or a disposal
	generation uint64
	// fitToken invalidates in-flight fit requests after an explicit zoom
	fitToken uint64
	// renderingPage is the page of the in-flight render, 0 if idle
	renderingPage int

	ctx    context.Context
	cancel context.CancelFunc

	resizeTimer Timer
	errorTimer  Timer
}

// New creates a viewer. It does nothing until Initialize is called.
func New(cfg Config, backend render.Backend, sched Scheduler) *Viewer {
	cfg = cfg.normalize()
	return &Viewer{
		id:      uuid.NewString(),
		cfg:     cfg,
		backend: backend,
		sched:   sched,
		state:   model.NewViewerState(cfg.DefaultScale),
	}
}

// ID returns the instance identifier used in logs
func (v *Viewer) ID() string {
	return v.id
}

// Config returns the normalized configuration
func (v *Viewer) Config() Config {
	return v.cfg
}

// State returns a snapshot of the current state
func (v *Viewer) State() model.ViewerState {
	return v.state
}

// Initialize binds the viewer to its elements. It fails if the surface is
// missing and is a no-op once initialized.
func (v *Viewer) Initialize() error {
	if v.initialized {
		return nil
	}

	els := v.cfg.Elements
	if els.Surface == nil {
		verr := &Error{
			Kind:    KindInitialization,
			Message: v.cfg.Strings.InitError,
			Err:     ErrSurfaceMissing,
		}
		log.Printf("viewer %s: initialization failed: %v", v.id, verr)
		v.state = model.NewViewerState(v.cfg.DefaultScale)
		if els.Error != nil {
			els.Error.Show(verr.Message)
		}
		v.reportError(verr)
		return verr
	}

	v.ctx, v.cancel = context.WithCancel(context.Background())
	v.state = model.NewViewerState(v.cfg.DefaultScale)
	v.state.Status = model.StatusInitialized
	v.initialized = true

	if els.Container != nil {
		els.Container.SetRightToLeft(v.cfg.RightToLeft)
	}
	v.bindControls(true)
	if els.Loading != nil {
		els.Loading.Hide()
	}
	if els.Error != nil {
		els.Error.Hide()
	}
	v.updateControls()

	log.Printf("viewer %s: initialized (rtl=%v scale=%.2f)", v.id, v.cfg.RightToLeft, v.state.Scale)
	v.emit(Event{Type: EventInitialized})
	return nil
}

// bindControls attaches or detaches every control handler
func (v *Viewer) bindControls(bind bool) {
	els := v.cfg.Elements
	pairs := []struct {
		control Control
		action  func()
	}{
		{els.Prev, v.PrevPage},
		{els.Next, v.NextPage},
		{els.ZoomIn, v.ZoomIn},
		{els.ZoomOut, v.ZoomOut},
		{els.FitWidth, v.FitWidth},
		{els.FitPage, v.FitPage},
		{els.Retry, v.Retry},
		{els.Dismiss, v.DismissError},
	}
	for _, p := range pairs {
		if p.control == nil {
			continue
		}
		if bind {
			p.control.Bind(p.action)
		} else {
			p.control.Bind(nil)
		}
	}

	if els.PageInput != nil {
		if bind {
			els.PageInput.Bind(func(value string) { v.HandlePageNumberInput(value) }, v.HandlePageNumberBlur)
		} else {
			els.PageInput.Bind(nil, nil)
		}
	}
}

// LoadDocument starts loading the document at locator. Results of any earlier
// load still in flight are discarded. Only precondition failures are returned;
// load failures are surfaced through the error banner and callbacks.
func (v *Viewer) LoadDocument(locator string) error {
	if !v.initialized {
		return ErrNotInitialized
	}
	if locator == "" {
		return ErrEmptyLocator
	}

	v.generation++
	v.fitToken++
	gen := v.generation
	v.cancel()
	v.ctx, v.cancel = context.WithCancel(context.Background())
	v.releaseDocument()
	v.renderingPage = 0
	v.hideError()

	v.state.BeginLoad(locator)
	els := v.cfg.Elements
	if els.Loading != nil {
		els.Loading.SetProgress(-1)
		els.Loading.Show(v.cfg.Strings.Loading)
	}
	els.Surface.Clear()
	if els.PageCount != nil {
		els.PageCount.SetText("")
	}
	if els.PageInput != nil {
		els.PageInput.SetText("")
	}
	v.updateControls()

	log.Printf("viewer %s: loading %s", v.id, locator)

	ctx := v.ctx
	backend := v.backend
	progress := func(loaded, total int64) {
		v.sched.Post(func() { v.onLoadProgress(gen, loaded, total) })
	}

	var doc render.Document
	var err error
	v.sched.Go(func() {
		doc, err = backend.Open(ctx, locator, progress)
	}, func() {
		v.onDocumentOpened(gen, doc, err)
	})
	return nil
}

// Retry reloads the last requested document after a failure
func (v *Viewer) Retry() {
	if v.state.Locator == "" || v.state.Status != model.StatusError {
		return
	}
	log.Printf("viewer %s: retrying %s", v.id, v.state.Locator)
	if err := v.LoadDocument(v.state.Locator); err != nil {
		log.Printf("viewer %s: retry failed: %v", v.id, err)
	}
}

func (v *Viewer) onLoadProgress(gen uint64, loaded, total int64) {
	if gen != v.generation || !v.state.Loading || v.cfg.Elements.Loading == nil {
		return
	}
	percent := -1
	if total > 0 {
		percent = int(loaded * 100 / total)
		if percent > 100 {
			percent = 100
		}
	}
	v.cfg.Elements.Loading.SetProgress(percent)
}

func (v *Viewer) onDocumentOpened(gen uint64, doc render.Document, err error) {
	if gen != v.generation {
		if doc != nil {
			v.closeDocument(doc)
		}
		return
	}
	if err != nil {
		v.failLoad(err)
		return
	}

	if doc.PageCount() < 1 {
		v.closeDocument(doc)
		v.failLoad(render.ErrEmptyDocument)
		return
	}

	v.doc = doc
	v.state.TotalPages = doc.PageCount()
	v.state.PageNumber = 1
	log.Printf("viewer %s: opened %s with %d pages", v.id, v.state.Locator, v.state.TotalPages)

	els := v.cfg.Elements
	if els.PageCount != nil {
		els.PageCount.SetText(fmt.Sprintf("%s %d", v.cfg.Strings.Of, v.state.TotalPages))
	}
	if els.PageInput != nil {
		els.PageInput.SetText("1")
	}
	v.renderPage(1, v.state.Scale)
}

func (v *Viewer) failLoad(err error) {
	message := err.Error()
	if message == "" {
		message = v.cfg.Strings.Error
	}
	log.Printf("viewer %s: failed to load %s: %v", v.id, v.state.Locator, err)

	v.state.Loading = false
	v.state.SetError(message)
	if v.cfg.Elements.Loading != nil {
		v.cfg.Elements.Loading.Hide()
	}
	v.showError(message)
	v.updateControls()
	v.reportError(&Error{Kind: KindLoad, Message: message, Err: err})
}

// finishLoad ends the loading phase once the first page render has settled
func (v *Viewer) finishLoad(ok bool) {
	v.state.Loading = false
	if v.cfg.Elements.Loading != nil {
		v.cfg.Elements.Loading.Hide()
	}
	if !ok {
		v.updateControls()
		return
	}

	if v.state.Status == model.StatusLoading {
		v.state.Status = model.StatusReady
	}
	v.updateControls()

	total := v.state.TotalPages
	v.emit(Event{Type: EventDocumentLoaded, Locator: v.state.Locator})
	if cb := v.cfg.Callbacks.OnDocumentLoad; cb != nil {
		v.safely("OnDocumentLoad", func() { cb(total) })
	}
	v.FitWidth()
}

// RenderPage renders page n at the current scale
func (v *Viewer) RenderPage(n int) {
	v.renderPage(n, v.state.Scale)
}

// RenderPageAt renders page n at scale without changing the current scale
func (v *Viewer) RenderPageAt(n int, scale float64) {
	v.renderPage(n, v.clampScale(scale))
}

// QueueRenderPage renders page n, or queues it behind the in-flight render
func (v *Viewer) QueueRenderPage(n int) {
	v.renderPage(n, v.state.Scale)
}

// renderPage starts a render unless one is in flight, in which case n
// replaces whatever page was pending.
func (v *Viewer) renderPage(n int, scale float64) {
	if v.doc == nil || !v.state.HasDocument() {
		return
	}
	n = v.state.ClampPage(n)

	if v.state.Rendering {
		v.state.PendingPage = n
		return
	}

	v.state.Rendering = true
	v.renderingPage = n
	if !v.state.Loading {
		v.state.Status = model.StatusRendering
	}

	gen := v.generation
	doc := v.doc
	ctx := v.ctx
	ratio := 1.0
	if c := v.cfg.Elements.Container; c != nil {
		ratio = c.PixelRatio()
	}

	var img *image.RGBA
	var vp render.Viewport
	var err error
	v.sched.Go(func() {
		img, vp, err = renderOffLoop(ctx, doc, n, scale, ratio)
	}, func() {
		v.onPageRendered(gen, n, img, vp, err)
	})
}

// renderOffLoop fetches page n and draws it onto a cleared surface sized
// for the pixel ratio.
func renderOffLoop(ctx context.Context, doc render.Document, n int, scale, ratio float64) (*image.RGBA, render.Viewport, error) {
	page, err := doc.Page(ctx, n)
	if err != nil {
		return nil, render.Viewport{}, err
	}
	vp := page.Viewport(scale)
	w, h := vp.PixelSize(ratio)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	if err := page.RenderInto(ctx, img, vp); err != nil {
		return nil, vp, err
	}
	return img, vp, nil
}

func (v *Viewer) onPageRendered(gen uint64, n int, img *image.RGBA, vp render.Viewport, err error) {
	if gen != v.generation {
		return
	}
	v.state.Rendering = false
	v.renderingPage = 0

	if err != nil {
		v.failRender(n, err)
		if v.state.Loading {
			v.finishLoad(false)
		}
		// The failed page is not retried; a different page requested meanwhile still is.
		if pending := v.state.TakePending(); pending != 0 && pending != n {
			v.renderPage(pending, v.state.Scale)
		}
		return
	}

	v.cfg.Elements.Surface.Present(img, Size{Width: vp.Width, Height: vp.Height})
	v.state.PageNumber = n
	if v.cfg.Elements.PageInput != nil {
		v.cfg.Elements.PageInput.SetText(strconv.Itoa(n))
	}

	pending := v.state.TakePending()
	if !v.state.Loading {
		v.state.Status = model.StatusReady
		v.state.ClearError()
	}
	v.updateControls()

	total := v.state.TotalPages
	v.emit(Event{Type: EventPageRendered})
	if cb := v.cfg.Callbacks.OnPageChange; cb != nil {
		v.safely("OnPageChange", func() { cb(n, total) })
	}

	if v.state.Loading {
		v.finishLoad(true)
	}
	if pending != 0 {
		v.renderPage(pending, v.state.Scale)
	}
}

func (v *Viewer) failRender(n int, err error) {
	message := v.cfg.Strings.RenderError + ": " + err.Error()
	log.Printf("viewer %s: failed to render page %d: %v", v.id, n, err)

	v.state.SetError(message)
	v.showError(message)
	v.updateControls()
	v.reportError(&Error{Kind: KindRender, Message: message, Page: n, Err: err})
}

// SetZoom sets an explicit scale and clears any fit mode
func (v *Viewer) SetZoom(scale float64) {
	v.state.FitMode = model.FitNone
	v.fitToken++
	v.applyZoom(scale)
	v.updateControls()
}

// applyZoom clamps scale and re-renders the current page if it changed
func (v *Viewer) applyZoom(scale float64) {
	if !v.initialized {
		return
	}
	scale = v.clampScale(scale)
	if scale == v.state.Scale {
		return
	}

	v.state.Scale = scale
	if v.state.HasDocument() {
		v.QueueRenderPage(v.state.PageNumber)
	}
	v.updateControls()

	v.emit(Event{Type: EventZoomChanged})
	if cb := v.cfg.Callbacks.OnZoomChange; cb != nil {
		v.safely("OnZoomChange", func() { cb(scale) })
	}
}

// ZoomIn increases the scale by one step
func (v *Viewer) ZoomIn() {
	v.SetZoom(roundScale(v.state.Scale + v.cfg.ScaleStep))
}

// ZoomOut decreases the scale by one step
func (v *Viewer) ZoomOut() {
	v.SetZoom(roundScale(v.state.Scale - v.cfg.ScaleStep))
}

// FitWidth scales the current page to the container width
func (v *Viewer) FitWidth() {
	v.fit(model.FitWidth)
}

// FitPage scales the current page to fit inside the container
func (v *Viewer) FitPage() {
	v.fit(model.FitPage)
}

func (v *Viewer) fit(mode model.FitMode) {
	if v.doc == nil || v.state.Loading {
		return
	}

	v.fitToken++
	token := v.fitToken
	gen := v.generation
	doc := v.doc
	ctx := v.ctx
	n := v.state.PageNumber

	var vp render.Viewport
	var err error
	v.sched.Go(func() {
		var page render.Page
		page, err = doc.Page(ctx, n)
		if err == nil {
			vp = page.Viewport(1)
		}
	}, func() {
		if gen != v.generation || token != v.fitToken {
			return
		}
		if err != nil {
			log.Printf("viewer %s: failed to measure page %d for %s fit: %v", v.id, n, mode, err)
			return
		}
		scale, ok := v.fitScale(mode, vp)
		if !ok {
			return
		}
		v.state.FitMode = mode
		v.applyZoom(scale)
		v.updateControls()
	})
}

// fitScale computes the scale that fits a page of unscaled size vp
func (v *Viewer) fitScale(mode model.FitMode, vp render.Viewport) (float64, bool) {
	c := v.cfg.Elements.Container
	if c == nil || vp.Width <= 0 || vp.Height <= 0 {
		return 0, false
	}
	size := c.Size()
	width := size.Width - v.cfg.FitPadding
	height := size.Height - v.cfg.FitPadding
	if width <= 0 {
		return 0, false
	}

	scale := width / vp.Width
	if mode == model.FitPage {
		if height <= 0 {
			return 0, false
		}
		scale = math.Min(scale, height/vp.Height)
	}
	return scale, true
}

// targetPage is the most recently requested page
func (v *Viewer) targetPage() int {
	if v.state.PendingPage != 0 {
		return v.state.PendingPage
	}
	if v.state.Rendering {
		return v.renderingPage
	}
	return v.state.PageNumber
}

// PrevPage moves one page back; no-op on the first page
func (v *Viewer) PrevPage() {
	if !v.hasDocument() {
		return
	}
	if target := v.targetPage(); target > 1 {
		v.QueueRenderPage(target - 1)
	}
}

// NextPage moves one page forward; no-op on the last page
func (v *Viewer) NextPage() {
	if !v.hasDocument() {
		return
	}
	if target := v.targetPage(); target < v.state.TotalPages {
		v.QueueRenderPage(target + 1)
	}
}

// FirstPage shows page 1
func (v *Viewer) FirstPage() {
	if v.hasDocument() {
		v.QueueRenderPage(1)
	}
}

// LastPage shows the last page
func (v *Viewer) LastPage() {
	if v.hasDocument() {
		v.QueueRenderPage(v.state.TotalPages)
	}
}

// HandlePageNumberInput clamps a typed page number, writes the clamped value
// back, and navigates if it differs from the current page. Invalid input
// means page 1. It returns the clamped page, or 0 without a document.
func (v *Viewer) HandlePageNumberInput(value string) int {
	if !v.hasDocument() {
		return 0
	}
	n, ok := parsePageNumber(value)
	if !ok {
		n = 1
	}
	n = v.state.ClampPage(n)

	if v.cfg.Elements.PageInput != nil {
		v.cfg.Elements.PageInput.SetText(strconv.Itoa(n))
	}
	if n != v.state.PageNumber {
		v.QueueRenderPage(n)
	}
	return n
}

// HandlePageNumberBlur reverts the page input to the current page
func (v *Viewer) HandlePageNumberBlur() {
	if v.cfg.Elements.PageInput == nil || !v.state.HasDocument() {
		return
	}
	v.cfg.Elements.PageInput.SetText(strconv.Itoa(v.state.PageNumber))
}

// HandleResize re-applies the fit mode, or re-renders at the same scale,
// once resizing has paused for the debounce delay.
func (v *Viewer) HandleResize() {
	if !v.initialized {
		return
	}
	if v.resizeTimer != nil {
		v.resizeTimer.Stop()
	}
	gen := v.generation
	// A fired timer may still be queued on the loop after Stop, so only the
	// latest one acts.
	var timer Timer
	timer = v.sched.AfterFunc(v.cfg.ResizeDebounce, func() {
		if v.resizeTimer != timer {
			return
		}
		v.resizeTimer = nil
		if gen != v.generation || !v.hasDocument() {
			return
		}
		switch v.state.FitMode {
		case model.FitWidth:
			v.FitWidth()
		case model.FitPage:
			v.FitPage()
		default:
			v.QueueRenderPage(v.state.PageNumber)
		}
	})
	v.resizeTimer = timer
}

// HandleVisibilityChange re-renders the current page when the viewer is shown again
func (v *Viewer) HandleVisibilityChange(visible bool) {
	if visible && v.hasDocument() {
		v.QueueRenderPage(v.state.PageNumber)
	}
}

// ToggleFullscreen switches fullscreen presentation
func (v *Viewer) ToggleFullscreen() {
	if !v.initialized {
		return
	}
	full := v.state.Fullscreen
	if fs := v.cfg.Elements.Fullscreen; fs != nil {
		full = fs.FullScreen()
	}
	v.setFullscreen(!full)
}

// ExitFullscreen leaves fullscreen presentation
func (v *Viewer) ExitFullscreen() {
	if v.initialized && v.state.Fullscreen {
		v.setFullscreen(false)
	}
}

func (v *Viewer) setFullscreen(full bool) {
	if fs := v.cfg.Elements.Fullscreen; fs != nil {
		fs.SetFullScreen(full)
	}
	v.state.Fullscreen = full
	v.emit(Event{Type: EventFullscreenChange})
}

// DismissError hides the error banner
func (v *Viewer) DismissError() {
	v.hideError()
}

func (v *Viewer) showError(message string) {
	if v.errorTimer != nil {
		v.errorTimer.Stop()
		v.errorTimer = nil
	}
	if v.cfg.Elements.Error == nil {
		return
	}
	v.cfg.Elements.Error.Show(message)

	gen := v.generation
	var timer Timer
	timer = v.sched.AfterFunc(v.cfg.ErrorAutoHide, func() {
		if v.errorTimer != timer {
			return
		}
		v.errorTimer = nil
		if gen == v.generation {
			v.hideError()
		}
	})
	v.errorTimer = timer
}

func (v *Viewer) hideError() {
	if v.errorTimer != nil {
		v.errorTimer.Stop()
		v.errorTimer = nil
	}
	v.state.ClearError()
	if v.cfg.Elements.Error != nil {
		v.cfg.Elements.Error.Hide()
	}
}

// Dispose detaches the viewer from its elements and releases the document.
// It may be called any number of times; Initialize may follow.
func (v *Viewer) Dispose() {
	if v.resizeTimer != nil {
		v.resizeTimer.Stop()
		v.resizeTimer = nil
	}
	if v.errorTimer != nil {
		v.errorTimer.Stop()
		v.errorTimer = nil
	}
	if v.cancel != nil {
		v.cancel()
	}
	v.generation++
	v.fitToken++
	v.renderingPage = 0

	if v.initialized {
		v.bindControls(false)
	}
	v.releaseDocument()

	els := v.cfg.Elements
	if els.Surface != nil {
		els.Surface.Clear()
	}
	if els.Loading != nil {
		els.Loading.Hide()
	}
	if els.Error != nil {
		els.Error.Hide()
	}

	if v.initialized {
		log.Printf("viewer %s: disposed", v.id)
	}
	v.initialized = false
	v.state = model.NewViewerState(v.cfg.DefaultScale)
	v.state.Status = model.StatusDisposed
}

// releaseDocument drops the current document and closes it off the loop
func (v *Viewer) releaseDocument() {
	if v.doc == nil {
		return
	}
	doc := v.doc
	v.doc = nil
	v.closeDocument(doc)
}

func (v *Viewer) closeDocument(doc render.Document) {
	v.sched.Go(func() {
		if err := doc.Close(); err != nil {
			log.Printf("viewer %s: failed to close document: %v", v.id, err)
		}
	}, func() {})
}

func (v *Viewer) hasDocument() bool {
	return v.initialized && v.doc != nil && v.state.HasDocument()
}

// updateControls syncs enablement, active markers and the zoom display
func (v *Viewer) updateControls() {
	els := v.cfg.Elements
	ready := v.hasDocument() && !v.state.Loading
	page := v.state.PageNumber
	setEnabled := func(c Control, enabled bool) {
		if c != nil {
			c.SetEnabled(enabled)
		}
	}
	setActive := func(c Control, active bool) {
		if c != nil {
			c.SetActive(active)
		}
	}

	setEnabled(els.Prev, ready && page > 1)
	setEnabled(els.Next, ready && page < v.state.TotalPages)
	setEnabled(els.ZoomIn, v.initialized && v.state.Scale < v.cfg.MaxScale)
	setEnabled(els.ZoomOut, v.initialized && v.state.Scale > v.cfg.MinScale)
	setEnabled(els.FitWidth, ready)
	setEnabled(els.FitPage, ready)
	setActive(els.FitWidth, v.state.FitMode == model.FitWidth)
	setActive(els.FitPage, v.state.FitMode == model.FitPage)
	setEnabled(els.Retry, v.state.Status == model.StatusError && v.state.Locator != "")

	if els.ZoomLevel != nil {
		els.ZoomLevel.SetText(FormatZoom(v.state.Scale))
	}
}

func (v *Viewer) clampScale(scale float64) float64 {
	if math.IsNaN(scale) {
		return v.state.Scale
	}
	return clampFloat(scale, v.cfg.MinScale, v.cfg.MaxScale)
}

// emit fills the state snapshot into ev and delivers it
func (v *Viewer) emit(ev Event) {
	ev.PageNumber = v.state.PageNumber
	ev.TotalPages = v.state.TotalPages
	ev.Scale = v.state.Scale
	ev.Fullscreen = v.state.Fullscreen
	if cb := v.cfg.Callbacks.OnEvent; cb != nil {
		v.safely("OnEvent", func() { cb(ev) })
	}
}

func (v *Viewer) reportError(verr *Error) {
	v.emit(Event{Type: EventError, Err: verr})
	if cb := v.cfg.Callbacks.OnError; cb != nil {
		v.safely("OnError", func() { cb(verr) })
	}
}

// safely runs a user callback, logging instead of propagating a panic
func (v *Viewer) safely(name string, f func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("viewer %s: %s callback panicked: %v", v.id, name, r)
		}
	}()
	f()
}

// roundScale rounds to two decimals to keep repeated steps from drifting
func roundScale(scale float64) float64 {
	return math.Round(scale*100) / 100
}

// FormatZoom renders a scale as a whole percentage
func FormatZoom(scale float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(scale*100)))
}

// parsePageNumber reads a leading optionally signed integer, ignoring
// surrounding spaces and trailing characters.
func parsePageNumber(value string) (int, bool) {
	i := 0
	for i < len(value) && (value[i] == ' ' || value[i] == '\t') {
		i++
	}
	start := i
	if i < len(value) && (value[i] == '-' || value[i] == '+') {
		i++
	}
	digits := i
	for i < len(value) && value[i] >= '0' && value[i] <= '9' {
		i++
	}
	if i == digits {
		return 0, false
	}
	n, err := strconv.Atoi(value[start:i])
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			if value[start] == '-' {
				return math.MinInt, true
			}
			return math.MaxInt, true
		}
		return 0, false
	}
	return n, true
}

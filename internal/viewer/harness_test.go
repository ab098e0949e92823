package viewer

import (
	"context"
	"image"
	"image/draw"
	"testing"
	"time"

	"github.com/ytget/pdf-viewer/internal/render"
)

// manualScheduler runs queued work only when the test asks for it
type manualScheduler struct {
	now    time.Duration
	jobs   []manualJob
	timers []*manualTimer
	// queueTimers delivers fired timers through the job queue, like a UI
	// loop that has not caught up yet
	queueTimers bool
}

type manualJob struct {
	work func()
	done func()
}

func (s *manualScheduler) Go(work func(), done func()) {
	s.jobs = append(s.jobs, manualJob{work: work, done: done})
}

func (s *manualScheduler) Post(f func()) {
	s.jobs = append(s.jobs, manualJob{done: f})
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &manualTimer{at: s.now + d, f: f}
	s.timers = append(s.timers, t)
	return t
}

// Step runs the oldest queued job and reports whether there was one
func (s *manualScheduler) Step() bool {
	if len(s.jobs) == 0 {
		return false
	}
	job := s.jobs[0]
	s.jobs = s.jobs[1:]
	if job.work != nil {
		job.work()
	}
	if job.done != nil {
		job.done()
	}
	return true
}

// RunAll drains the job queue, including jobs queued while draining
func (s *manualScheduler) RunAll() {
	for i := 0; i < 10000 && s.Step(); i++ {
	}
}

// Advance moves the clock and fires every due timer in order
func (s *manualScheduler) Advance(d time.Duration) {
	s.now += d
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.at <= s.now {
			t.fired = true
			if s.queueTimers {
				s.jobs = append(s.jobs, manualJob{done: t.f})
				continue
			}
			t.f()
		}
	}
}

func (s *manualScheduler) Pending() int {
	return len(s.jobs)
}

type manualTimer struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// fakeBackend opens fakeDocuments of a fixed size
type fakeBackend struct {
	pages      int
	width      float64
	height     float64
	openErr    error
	renderErrs map[int]error
	progress   [][2]int64
	opened     []string
	docs       []*fakeDocument
}

func (b *fakeBackend) Name() string { return "fake" }

func (b *fakeBackend) Open(ctx context.Context, locator string, progress render.ProgressFunc) (render.Document, error) {
	b.opened = append(b.opened, locator)
	for _, p := range b.progress {
		if progress != nil {
			progress(p[0], p[1])
		}
	}
	if b.openErr != nil {
		return nil, b.openErr
	}
	doc := &fakeDocument{backend: b, pages: b.pages}
	b.docs = append(b.docs, doc)
	return doc, nil
}

func (b *fakeBackend) lastDoc() *fakeDocument {
	if len(b.docs) == 0 {
		return nil
	}
	return b.docs[len(b.docs)-1]
}

type fakeDocument struct {
	backend  *fakeBackend
	pages    int
	rendered []int
	scales   []float64
	closed   bool
}

func (d *fakeDocument) PageCount() int { return d.pages }

func (d *fakeDocument) Page(ctx context.Context, n int) (render.Page, error) {
	if n < 1 || n > d.pages {
		return nil, render.ErrPageOutOfRange
	}
	return &fakePage{doc: d, number: n}, nil
}

func (d *fakeDocument) Close() error {
	d.closed = true
	return nil
}

type fakePage struct {
	doc    *fakeDocument
	number int
}

func (p *fakePage) Number() int { return p.number }

func (p *fakePage) Viewport(scale float64) render.Viewport {
	return render.Viewport{Width: p.doc.backend.width * scale, Height: p.doc.backend.height * scale, Scale: scale}
}

func (p *fakePage) RenderInto(ctx context.Context, dst draw.Image, vp render.Viewport) error {
	p.doc.rendered = append(p.doc.rendered, p.number)
	p.doc.scales = append(p.doc.scales, vp.Scale)
	return p.doc.backend.renderErrs[p.number]
}

type fakeSurface struct {
	presented []Size
	last      image.Image
	clears    int
}

func (s *fakeSurface) Present(img image.Image, size Size) {
	s.presented = append(s.presented, size)
	s.last = img
}

func (s *fakeSurface) Clear() { s.clears++ }

type fakeContainer struct {
	size  Size
	ratio float64
	rtl   bool
}

func (c *fakeContainer) Size() Size { return c.size }
func (c *fakeContainer) PixelRatio() float64 { return c.ratio }
func (c *fakeContainer) SetRightToLeft(b bool) { c.rtl = b }

type fakeControl struct {
	action  func()
	enabled bool
	active  bool
}

func (c *fakeControl) Bind(action func()) { c.action = action }
func (c *fakeControl) SetEnabled(e bool) { c.enabled = e }
func (c *fakeControl) SetActive(a bool) { c.active = a }
func (c *fakeControl) Click() {
	if c.action != nil {
		c.action()
	}
}

type fakeInput struct {
	text     string
	onSubmit func(string)
	onBlur   func()
}

func (i *fakeInput) SetText(text string) { i.text = text }
func (i *fakeInput) Bind(onSubmit func(string), onBlur func()) {
	i.onSubmit = onSubmit
	i.onBlur = onBlur
}

type fakeDisplay struct{ text string }

func (d *fakeDisplay) SetText(text string) { d.text = text }

type fakeBanner struct {
	visible  bool
	text     string
	progress int
}

func (b *fakeBanner) Show(text string) {
	b.visible = true
	b.text = text
}
func (b *fakeBanner) Hide() { b.visible = false }
func (b *fakeBanner) SetProgress(p int) { b.progress = p }

type fakeFullscreen struct{ full bool }

func (f *fakeFullscreen) FullScreen() bool { return f.full }
func (f *fakeFullscreen) SetFullScreen(b bool) { f.full = b }

// harness bundles a viewer with its fakes
type harness struct {
	v          *Viewer
	sched      *manualScheduler
	backend    *fakeBackend
	surface    *fakeSurface
	container  *fakeContainer
	input      *fakeInput
	pageCount  *fakeDisplay
	zoomLevel  *fakeDisplay
	prev       *fakeControl
	next       *fakeControl
	zoomIn     *fakeControl
	zoomOut    *fakeControl
	fitWidth   *fakeControl
	fitPage    *fakeControl
	retry      *fakeControl
	dismiss    *fakeControl
	loading    *fakeBanner
	errBanner  *fakeBanner
	fullscreen *fakeFullscreen
	events     []Event
	errors     []*Error
	loads      []int
	zooms      []float64
	pages      [][2]int
}

func newHarness(t *testing.T, pages int) *harness {
	t.Helper()
	h := &harness{
		sched:      &manualScheduler{},
		backend:    &fakeBackend{pages: pages, width: 400, height: 500, renderErrs: map[int]error{}},
		surface:    &fakeSurface{},
		container:  &fakeContainer{size: Size{Width: 840, Height: 640}, ratio: 1},
		input:      &fakeInput{},
		pageCount:  &fakeDisplay{},
		zoomLevel:  &fakeDisplay{},
		prev:       &fakeControl{},
		next:       &fakeControl{},
		zoomIn:     &fakeControl{},
		zoomOut:    &fakeControl{},
		fitWidth:   &fakeControl{},
		fitPage:    &fakeControl{},
		retry:      &fakeControl{},
		dismiss:    &fakeControl{},
		loading:    &fakeBanner{},
		errBanner:  &fakeBanner{},
		fullscreen: &fakeFullscreen{},
	}

	cfg := DefaultConfig()
	cfg.Elements = Elements{
		Container:  h.container,
		Surface:    h.surface,
		PageInput:  h.input,
		PageCount:  h.pageCount,
		ZoomLevel:  h.zoomLevel,
		Prev:       h.prev,
		Next:       h.next,
		ZoomIn:     h.zoomIn,
		ZoomOut:    h.zoomOut,
		FitWidth:   h.fitWidth,
		FitPage:    h.fitPage,
		Retry:      h.retry,
		Dismiss:    h.dismiss,
		Loading:    h.loading,
		Error:      h.errBanner,
		Fullscreen: h.fullscreen,
	}
	cfg.Callbacks = Callbacks{
		OnEvent:        func(ev Event) { h.events = append(h.events, ev) },
		OnError:        func(err *Error) { h.errors = append(h.errors, err) },
		OnDocumentLoad: func(n int) { h.loads = append(h.loads, n) },
		OnZoomChange:   func(s float64) { h.zooms = append(h.zooms, s) },
		OnPageChange:   func(n, total int) { h.pages = append(h.pages, [2]int{n, total}) },
	}

	h.v = New(cfg, h.backend, h.sched)
	return h
}

// loaded returns a harness with a document fully loaded and fitted
func loaded(t *testing.T, pages int) *harness {
	t.Helper()
	h := newHarness(t, pages)
	if err := h.v.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if err := h.v.LoadDocument("/docs/sample.pdf"); err != nil {
		t.Fatalf("LoadDocument failed: %v", err)
	}
	h.sched.RunAll()
	return h
}

func (h *harness) countEvents(typ EventType) int {
	n := 0
	for _, ev := range h.events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

// renderedSince returns the pages rendered after the first skip renders
func (h *harness) renderedSince(skip int) []int {
	doc := h.backend.lastDoc()
	if doc == nil || len(doc.rendered) < skip {
		return nil
	}
	return doc.rendered[skip:]
}

package render

import (
	"context"
	"errors"
	"image/draw"
	"math"
)

// Backend names
const (
	BackendFitz = "fitz"
	BackendText = "text"
	BackendAuto = "auto"
)

var (
	ErrPageOutOfRange = errors.New("page out of range")
	ErrDocumentClosed = errors.New("document closed")
	ErrEmptyDocument  = errors.New("document has no pages")
	ErrUnknownBackend = errors.New("unknown render backend")
)

// ProgressFunc receives the number of bytes read so far and the total size,
// or -1 when the total is unknown.
type ProgressFunc func(loaded, total int64)

// Backend opens documents for rendering.
type Backend interface {
	Name() string
	Open(ctx context.Context, locator string, progress ProgressFunc) (Document, error)
}

// Document is an opened, paged document. Page numbers are 1-based.
type Document interface {
	PageCount() int
	Page(ctx context.Context, n int) (Page, error)
	Close() error
}

// Page renders a single page of a Document.
type Page interface {
	Number() int
	// Viewport returns the page size in logical pixels at the given scale.
	Viewport(scale float64) Viewport
	// RenderInto draws the page so that it fills dst's bounds.
	RenderInto(ctx context.Context, dst draw.Image, vp Viewport) error
}

// Viewport is a page's size at a given scale
type Viewport struct {
	Width  float64
	Height float64
	Scale  float64
}

// PixelSize returns the surface size in device pixels for the given pixel ratio
func (vp Viewport) PixelSize(pixelRatio float64) (int, int) {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	w := int(math.Floor(vp.Width * pixelRatio))
	h := int(math.Floor(vp.Height * pixelRatio))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// viewportFor scales a page size given in points (1/72 inch)
func viewportFor(width, height, scale float64) Viewport {
	return Viewport{Width: width * scale, Height: height * scale, Scale: scale}
}

// checkPage validates a 1-based page number against a page count
func checkPage(n, count int) error {
	if n < 1 || n > count {
		return ErrPageOutOfRange
	}
	return nil
}

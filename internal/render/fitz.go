package render

import (
	"context"
	"fmt"
	"image/draw"
	"sync"

	"github.com/gen2brain/go-fitz"
	xdraw "golang.org/x/image/draw"
)

// pointsPerInch is the resolution at which page bounds are reported
const pointsPerInch = 72.0

// FitzBackend rasterizes pages with MuPDF
type FitzBackend struct{}

// NewFitzBackend creates a MuPDF-backed renderer
func NewFitzBackend() *FitzBackend {
	return &FitzBackend{}
}

// Name returns the backend name
func (b *FitzBackend) Name() string {
	return BackendFitz
}

// Open fetches the document and parses it with MuPDF
func (b *FitzBackend) Open(ctx context.Context, locator string, progress ProgressFunc) (Document, error) {
	data, err := Fetch(ctx, locator, progress)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	count := doc.NumPage()
	if count < 1 {
		doc.Close()
		return nil, ErrEmptyDocument
	}
	return &fitzDocument{doc: doc, count: count}, nil
}

type fitzDocument struct {
	mu     sync.Mutex
	doc    *fitz.Document
	count  int
	closed bool
}

func (d *fitzDocument) PageCount() int {
	return d.count
}

func (d *fitzDocument) Page(ctx context.Context, n int) (Page, error) {
	if err := checkPage(n, d.count); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, ErrDocumentClosed
	}

	bounds, err := d.doc.Bound(n - 1)
	if err != nil {
		return nil, fmt.Errorf("failed to read page %d bounds: %w", n, err)
	}
	return &fitzPage{
		doc:    d,
		number: n,
		width:  float64(bounds.Dx()),
		height: float64(bounds.Dy()),
	}, nil
}

func (d *fitzDocument) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	return d.doc.Close()
}

type fitzPage struct {
	doc    *fitzDocument
	number int
	width  float64
	height float64
}

func (p *fitzPage) Number() int {
	return p.number
}

func (p *fitzPage) Viewport(scale float64) Viewport {
	return viewportFor(p.width, p.height, scale)
}

func (p *fitzPage) RenderInto(ctx context.Context, dst draw.Image, vp Viewport) error {
	if p.width <= 0 {
		return fmt.Errorf("page %d has no width", p.number)
	}
	dpi := pointsPerInch * float64(dst.Bounds().Dx()) / p.width

	p.doc.mu.Lock()
	if p.doc.closed {
		p.doc.mu.Unlock()
		return ErrDocumentClosed
	}
	img, err := p.doc.doc.ImageDPI(p.number-1, dpi)
	p.doc.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to rasterize page %d: %w", p.number, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return nil
}

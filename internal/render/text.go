package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/ledongthuc/pdf"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Letter size in points, used when a page carries no usable MediaBox
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// maxParentDepth bounds the page tree walk when resolving inherited keys
const maxParentDepth = 32

var (
	textPaper = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	textInk   = color.RGBA{R: 33, G: 33, B: 33, A: 255}
	textRule  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// TextBackend draws a text preview of each page without native dependencies
type TextBackend struct{}

// NewTextBackend creates a pure-Go preview renderer
func NewTextBackend() *TextBackend {
	return &TextBackend{}
}

// Name returns the backend name
func (b *TextBackend) Name() string {
	return BackendText
}

// Open fetches the document and parses its cross-reference table
func (b *TextBackend) Open(ctx context.Context, locator string, progress ProgressFunc) (Document, error) {
	data, err := Fetch(ctx, locator, progress)
	if err != nil {
		return nil, err
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	count := reader.NumPage()
	if count < 1 {
		return nil, ErrEmptyDocument
	}
	return &textDocument{reader: reader, count: count}, nil
}

type textDocument struct {
	mu     sync.Mutex
	reader *pdf.Reader
	count  int
	closed bool
}

func (d *textDocument) PageCount() int {
	return d.count
}

func (d *textDocument) Page(ctx context.Context, n int) (Page, error) {
	if err := checkPage(n, d.count); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, ErrDocumentClosed
	}

	page := d.reader.Page(n)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page %d not found", n)
	}
	width, height := mediaBox(page.V)
	return &textPage{doc: d, page: page, number: n, width: width, height: height}, nil
}

func (d *textDocument) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	d.reader = nil
	return nil
}

// mediaBox resolves the page size, following inherited MediaBox entries
func mediaBox(v pdf.Value) (float64, float64) {
	for i := 0; i < maxParentDepth && !v.IsNull(); i++ {
		box := v.Key("MediaBox")
		if box.Kind() == pdf.Array && box.Len() == 4 {
			w := box.Index(2).Float64() - box.Index(0).Float64()
			h := box.Index(3).Float64() - box.Index(1).Float64()
			if w < 0 {
				w = -w
			}
			if h < 0 {
				h = -h
			}
			if w > 0 && h > 0 {
				return w, h
			}
		}
		v = v.Key("Parent")
	}
	return defaultPageWidth, defaultPageHeight
}

type textPage struct {
	doc    *textDocument
	page   pdf.Page
	number int
	width  float64
	height float64
}

func (p *textPage) Number() int {
	return p.number
}

func (p *textPage) Viewport(scale float64) Viewport {
	return viewportFor(p.width, p.height, scale)
}

func (p *textPage) RenderInto(ctx context.Context, dst draw.Image, vp Viewport) error {
	content, err := p.content()
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	bounds := dst.Bounds()
	draw.Draw(dst, bounds, image.NewUniform(textPaper), image.Point{}, draw.Src)
	k := float64(bounds.Dx()) / p.width

	for _, r := range content.Rect {
		strokeRect(dst, image.Rect(
			bounds.Min.X+int(r.Min.X*k),
			bounds.Min.Y+int((p.height-r.Max.Y)*k),
			bounds.Min.X+int(r.Max.X*k),
			bounds.Min.Y+int((p.height-r.Min.Y)*k),
		), textRule)
	}

	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(textInk),
		Face: basicfont.Face7x13,
	}
	for _, t := range content.Text {
		x := bounds.Min.X + int(t.X*k)
		y := bounds.Min.Y + int((p.height-t.Y)*k)
		if !image.Pt(x, y).In(bounds) {
			continue
		}
		drawer.Dot = fixed.P(x, y)
		drawer.DrawString(t.S)
	}
	return nil
}

// content extracts the page's text runs. Malformed streams make the
// parser panic, which is reported as an error instead.
func (p *textPage) content() (content pdf.Content, err error) {
	p.doc.mu.Lock()
	defer p.doc.mu.Unlock()
	if p.doc.closed {
		return content, ErrDocumentClosed
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to read page %d content: %v", p.number, r)
		}
	}()
	return p.page.Content(), nil
}

// strokeRect draws a one-pixel outline clipped to dst
func strokeRect(dst draw.Image, r image.Rectangle, c color.Color) {
	r = r.Canon().Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		dst.Set(x, r.Min.Y, c)
		dst.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dst.Set(r.Min.X, y, c)
		dst.Set(r.Max.X-1, y, c)
	}
}

package render

import (
	"bytes"
	"context"
	"fmt"
	"image/draw"
	"os"
	"path/filepath"
	"testing"
)

// writeSamplePDF writes a two-page PDF whose first page inherits its
// MediaBox from the page tree and whose second page overrides it.
func writeSamplePDF(t *testing.T) string {
	t.Helper()

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R 4 0 R] /Count 2 /MediaBox [0 0 200 100] >>",
		"<< /Type /Page /Parent 2 0 R >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 300 400] >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	path := filepath.Join(t.TempDir(), "sample.pdf")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write sample PDF: %v", err)
	}
	return path
}

type fakeBackend struct {
	name  string
	pages int
	err   error
	opens int
}

func (b *fakeBackend) Name() string { return b.name }

func (b *fakeBackend) Open(ctx context.Context, locator string, progress ProgressFunc) (Document, error) {
	b.opens++
	if b.err != nil {
		return nil, b.err
	}
	return &fakeDocument{pages: b.pages}, nil
}

type fakeDocument struct {
	pages   int
	renders int
	closed  bool
}

func (d *fakeDocument) PageCount() int { return d.pages }

func (d *fakeDocument) Page(ctx context.Context, n int) (Page, error) {
	if err := checkPage(n, d.pages); err != nil {
		return nil, err
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

func (p *fakePage) Viewport(scale float64) Viewport {
	return viewportFor(100, 200, scale)
}

func (p *fakePage) RenderInto(ctx context.Context, dst draw.Image, vp Viewport) error {
	p.doc.renders++
	return nil
}

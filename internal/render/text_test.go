package render

import (
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestTextBackend_Open(t *testing.T) {
	test.NewApp()
	path := writeSamplePDF(t)

	backend := NewTextBackend()
	if backend.Name() != BackendText {
		t.Errorf("Expected name %s, got %s", BackendText, backend.Name())
	}

	doc, err := backend.Open(context.Background(), path, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer doc.Close()

	if doc.PageCount() != 2 {
		t.Fatalf("Expected 2 pages, got %d", doc.PageCount())
	}

	first, err := doc.Page(context.Background(), 1)
	if err != nil {
		t.Fatalf("Expected no error for page 1, got %v", err)
	}
	if vp := first.Viewport(1); vp.Width != 200 || vp.Height != 100 {
		t.Errorf("Expected inherited 200x100 page, got %vx%v", vp.Width, vp.Height)
	}

	second, err := doc.Page(context.Background(), 2)
	if err != nil {
		t.Fatalf("Expected no error for page 2, got %v", err)
	}
	if vp := second.Viewport(2); vp.Width != 600 || vp.Height != 800 {
		t.Errorf("Expected 600x800 viewport at scale 2, got %vx%v", vp.Width, vp.Height)
	}

	if _, err := doc.Page(context.Background(), 3); !errors.Is(err, ErrPageOutOfRange) {
		t.Errorf("Expected ErrPageOutOfRange, got %v", err)
	}
}

func TestTextBackend_Closed(t *testing.T) {
	test.NewApp()
	path := writeSamplePDF(t)

	doc, err := NewTextBackend().Open(context.Background(), path, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	page, err := doc.Page(context.Background(), 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	doc.Close()

	if _, err := doc.Page(context.Background(), 1); !errors.Is(err, ErrDocumentClosed) {
		t.Errorf("Expected ErrDocumentClosed from Page, got %v", err)
	}
	dst := image.NewRGBA(image.Rect(0, 0, 20, 10))
	if err := page.RenderInto(context.Background(), dst, page.Viewport(0.1)); !errors.Is(err, ErrDocumentClosed) {
		t.Errorf("Expected ErrDocumentClosed from RenderInto, got %v", err)
	}
}

func TestTextBackend_NotPDF(t *testing.T) {
	test.NewApp()

	path := filepath.Join(t.TempDir(), "notes.pdf")
	if err := os.WriteFile(path, []byte("plain text, not a PDF"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := NewTextBackend().Open(context.Background(), path, nil); err == nil {
		t.Error("Expected error for non-PDF content")
	}
}

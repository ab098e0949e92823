package render

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestParseLocator(t *testing.T) {
	test.NewApp()

	uri, err := ParseLocator("/tmp/doc.pdf")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if uri.Scheme() != "file" {
		t.Errorf("Expected file scheme for plain path, got %s", uri.Scheme())
	}

	uri, err = ParseLocator("https://example.com/doc.pdf")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if uri.Scheme() != "https" {
		t.Errorf("Expected https scheme, got %s", uri.Scheme())
	}

	if _, err := ParseLocator("   "); err == nil {
		t.Error("Expected error for empty locator")
	}
}

func TestFetch(t *testing.T) {
	test.NewApp()

	content := bytes.Repeat([]byte("x"), fetchChunkSize*2+10)
	path := filepath.Join(t.TempDir(), "doc.pdf")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	var calls int
	var lastLoaded, lastTotal int64
	data, err := Fetch(context.Background(), path, func(loaded, total int64) {
		calls++
		lastLoaded, lastTotal = loaded, total
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !bytes.Equal(data, content) {
		t.Errorf("Fetched %d bytes, expected %d", len(data), len(content))
	}
	if calls < 3 {
		t.Errorf("Expected progress per chunk, got %d calls", calls)
	}
	if lastLoaded != int64(len(content)) || lastTotal != int64(len(content)) {
		t.Errorf("Expected final progress %d/%d, got %d/%d", len(content), len(content), lastLoaded, lastTotal)
	}
}

func TestFetch_Canceled(t *testing.T) {
	test.NewApp()

	path := filepath.Join(t.TempDir(), "doc.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Fetch(ctx, path, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestFetch_Errors(t *testing.T) {
	test.NewApp()
	dir := t.TempDir()

	if _, err := Fetch(context.Background(), filepath.Join(dir, "missing.pdf"), nil); err == nil {
		t.Error("Expected error for missing file")
	}

	empty := filepath.Join(dir, "empty.pdf")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, err := Fetch(context.Background(), empty, nil); !errors.Is(err, ErrEmptyDocument) {
		t.Errorf("Expected ErrEmptyDocument, got %v", err)
	}
}

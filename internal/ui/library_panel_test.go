package ui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/pdf-viewer/internal/model"
)

func sampleEntries() []*model.DocumentEntry {
	mod := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	return []*model.DocumentEntry{
		model.NewDocumentEntry("1", "/docs/Annual_Report.pdf", 2048, mod),
		model.NewDocumentEntry("2", "/docs/Invoice 2024.pdf", 512, mod),
		model.NewDocumentEntry("3", "/docs/Thesis draft.pdf", 4096, mod),
	}
}

func TestLibraryPanel_ApplyFilter(t *testing.T) {
	test.NewApp()
	l := NewLocalization()
	lp := NewLibraryPanel(l)
	lp.SetEntries(sampleEntries())

	if got := len(lp.Visible()); got != 3 {
		t.Fatalf("Expected 3 visible entries, got %d", got)
	}

	lp.ApplyFilter("invoice")
	if got := lp.Visible(); len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("Expected only the invoice, got %v", got)
	}

	lp.ApplyFilter("a")
	if got := lp.Visible(); len(got) != 1 {
		t.Errorf("Short query should keep previous results, got %d entries", len(got))
	}
	if lp.status.Text != l.GetText(KeyQueryTooShort) {
		t.Errorf("Expected short query hint, got %q", lp.status.Text)
	}

	lp.ApplyFilter("zzzzzz")
	if got := len(lp.Visible()); got != 0 {
		t.Errorf("Expected no results, got %d", got)
	}
	if lp.status.Text != l.GetText(KeyNoDocuments) {
		t.Errorf("Expected no documents text, got %q", lp.status.Text)
	}

	lp.ApplyFilter("")
	if got := len(lp.Visible()); got != 3 {
		t.Errorf("Empty query should list everything, got %d", got)
	}
}

func TestLibraryPanel_SetEntriesKeepsQuery(t *testing.T) {
	test.NewApp()
	lp := NewLibraryPanel(NewLocalization())
	lp.SetEntries(sampleEntries())
	lp.ApplyFilter("thesis")

	lp.SetEntries(sampleEntries()[:2])
	if got := len(lp.Visible()); got != 0 {
		t.Errorf("Rescan should keep filtering by the last query, got %d", got)
	}
}

func TestLibraryPanel_SelectOpensDocument(t *testing.T) {
	test.NewApp()
	lp := NewLibraryPanel(NewLocalization())
	var opened []string
	lp.SetCallbacks(func(entry *model.DocumentEntry) {
		opened = append(opened, entry.Path)
	}, nil, nil)
	lp.SetEntries(sampleEntries())

	lp.list.Select(1)
	if len(opened) != 1 || opened[0] != "/docs/Invoice 2024.pdf" {
		t.Errorf("Expected invoice to open, got %v", opened)
	}
}

func TestLibraryPanel_SearchDebounce(t *testing.T) {
	test.NewApp()
	lp := NewLibraryPanel(NewLocalization())
	lp.delay = time.Hour
	lp.SetEntries(sampleEntries())

	lp.onSearchChanged("inv")
	lp.onSearchChanged("invo")
	if got := len(lp.Visible()); got != 3 {
		t.Errorf("Search should wait for the debounce, got %d entries", got)
	}

	lp.Close()
	if lp.debounce != nil {
		t.Error("Close should drop the pending search")
	}
}

func TestLibraryPanel_Rescan(t *testing.T) {
	test.NewApp()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Guide.pdf"), []byte("%PDF-1.4\n"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	lp := NewLibraryPanel(NewLocalization())
	lp.SetDirectory(dir)

	deadline := time.Now().Add(2 * time.Second)
	for len(lp.Visible()) == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if got := lp.Visible(); len(got) != 1 || got[0].Title != "Guide" {
		t.Errorf("Expected Guide after rescan, got %v", got)
	}
}

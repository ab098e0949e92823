package ui

import (
	"fmt"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/pdf-viewer/internal/library"
	"github.com/ytget/pdf-viewer/internal/model"
)

// LibraryPanel lists the PDFs of the library folder with a debounced search
type LibraryPanel struct {
	localization *Localization

	entries []*model.DocumentEntry
	visible []*model.DocumentEntry
	query   string
	dir     string

	// UI components
	container *fyne.Container
	list      *widget.List
	search    *widget.Entry
	status    *widget.Label
	dirLabel  *widget.Label
	rescanBtn *widget.Button

	debounceMu sync.Mutex
	debounce   *time.Timer
	delay      time.Duration

	// Callbacks
	onOpen         func(*model.DocumentEntry)
	onReveal       func(path string)
	onOpenExternal func(path string)
}

// NewLibraryPanel creates a new library panel
func NewLibraryPanel(localization *Localization) *LibraryPanel {
	lp := &LibraryPanel{
		localization: localization,
		delay:        LibrarySearchDebounce,
	}
	lp.createUI()
	return lp
}

func (lp *LibraryPanel) createUI() {
	lp.search = widget.NewEntry()
	lp.search.SetPlaceHolder(lp.localization.GetText(KeySearch))
	lp.search.OnChanged = lp.onSearchChanged
	lp.search.OnSubmitted = func(text string) {
		lp.stopDebounce()
		lp.ApplyFilter(text)
	}

	lp.status = widget.NewLabel("")
	lp.status.Truncation = fyne.TextTruncateEllipsis

	lp.dirLabel = widget.NewLabel("")
	lp.dirLabel.Truncation = fyne.TextTruncateEllipsis

	lp.rescanBtn = widget.NewButton(lp.localization.GetText(KeyRescan), lp.Rescan)
	lp.rescanBtn.Importance = widget.LowImportance

	lp.list = widget.NewList(
		func() int {
			return len(lp.visible)
		},
		func() fyne.CanvasObject {
			row := NewDocumentRow(lp.localization)
			row.SetCallbacks(lp.reveal, lp.openExternal)
			return row
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			lp.updateRow(id, obj)
		},
	)
	lp.list.OnSelected = func(id widget.ListItemID) {
		if id >= 0 && id < len(lp.visible) && lp.onOpen != nil {
			lp.onOpen(lp.visible[id])
		}
		lp.list.UnselectAll()
	}

	title := widget.NewLabelWithStyle(lp.localization.GetText(KeyLibrary), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	header := container.NewVBox(
		container.NewBorder(nil, nil, nil, lp.rescanBtn, title),
		lp.dirLabel,
		lp.search,
	)

	lp.container = container.NewBorder(header, lp.status, nil, nil, lp.list)
}

func (lp *LibraryPanel) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(lp.visible) {
		log.Printf("library: row %d requested, %d visible", id, len(lp.visible))
		return
	}
	row, ok := obj.(*DocumentRow)
	if !ok {
		log.Printf("library: expected DocumentRow but got %T", obj)
		return
	}
	row.UpdateEntry(lp.visible[id])
}

// Container returns the main container
func (lp *LibraryPanel) Container() *fyne.Container {
	return lp.container
}

// SetCallbacks sets the open, reveal and open-externally callbacks
func (lp *LibraryPanel) SetCallbacks(onOpen func(*model.DocumentEntry), onReveal, onOpenExternal func(path string)) {
	lp.onOpen = onOpen
	lp.onReveal = onReveal
	lp.onOpenExternal = onOpenExternal
}

// SetDirectory changes the scanned folder and rescans it
func (lp *LibraryPanel) SetDirectory(dir string) {
	lp.dir = dir
	lp.dirLabel.SetText(IconFolder + " " + dir)
	lp.Rescan()
}

// Rescan scans the library folder in the background
func (lp *LibraryPanel) Rescan() {
	dir := lp.dir
	if dir == "" {
		return
	}
	lp.rescanBtn.Disable()
	go func() {
		entries, err := library.Scan(dir)
		fyne.Do(func() {
			lp.rescanBtn.Enable()
			if dir != lp.dir {
				return
			}
			if err != nil {
				log.Printf("library: scan of %s failed: %v", dir, err)
				lp.SetEntries(nil)
				lp.status.SetText(err.Error())
				return
			}
			log.Printf("library: %d documents in %s", len(entries), dir)
			lp.SetEntries(entries)
		})
	}()
}

// SetEntries replaces the listed documents and reapplies the current search
func (lp *LibraryPanel) SetEntries(entries []*model.DocumentEntry) {
	lp.entries = entries
	lp.visible = entries
	lp.ApplyFilter(lp.query)
}

// Visible returns the entries currently listed
func (lp *LibraryPanel) Visible() []*model.DocumentEntry {
	return lp.visible
}

// ApplyFilter runs the search now. A query that is too short keeps the
// previous results and shows a hint.
func (lp *LibraryPanel) ApplyFilter(query string) {
	result, err := library.Search(lp.entries, query)
	if library.IsQueryTooShort(err) {
		lp.status.SetText(lp.localization.GetText(KeyQueryTooShort))
		return
	}
	if err != nil {
		log.Printf("library: search %q failed: %v", query, err)
		return
	}

	lp.query = query
	lp.visible = result
	if len(result) == 0 {
		lp.status.SetText(lp.localization.GetText(KeyNoDocuments))
	} else {
		lp.status.SetText(fmt.Sprintf("%s %d", IconFile, len(result)))
	}
	lp.list.Refresh()
}

// onSearchChanged restarts the debounce timer
func (lp *LibraryPanel) onSearchChanged(text string) {
	lp.debounceMu.Lock()
	defer lp.debounceMu.Unlock()

	if lp.debounce != nil {
		lp.debounce.Stop()
	}
	lp.debounce = time.AfterFunc(lp.delay, func() {
		fyne.Do(func() {
			lp.ApplyFilter(text)
		})
	})
}

func (lp *LibraryPanel) stopDebounce() {
	lp.debounceMu.Lock()
	defer lp.debounceMu.Unlock()

	if lp.debounce != nil {
		lp.debounce.Stop()
		lp.debounce = nil
	}
}

// Close stops a pending search
func (lp *LibraryPanel) Close() {
	lp.stopDebounce()
}

func (lp *LibraryPanel) reveal(path string) {
	if lp.onReveal != nil {
		lp.onReveal(path)
	}
}

func (lp *LibraryPanel) openExternal(path string) {
	if lp.onOpenExternal != nil {
		lp.onOpenExternal(path)
	}
}

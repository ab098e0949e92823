package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/pdf-viewer/internal/model"
)

// Date layout used in library rows
const RowDateLayout = "2006-01-02 15:04"

// DocumentRow shows one library entry with reveal and external open actions
type DocumentRow struct {
	widget.BaseWidget

	entry        *model.DocumentEntry
	localization *Localization

	titleLabel *widget.Label
	infoLabel  *widget.Label
	revealBtn  *widget.Button
	openBtn    *widget.Button

	onReveal       func(path string)
	onOpenExternal func(path string)
}

// NewDocumentRow creates a row; entry may be nil for list templates
func NewDocumentRow(localization *Localization) *DocumentRow {
	dr := &DocumentRow{localization: localization}
	dr.ExtendBaseWidget(dr)
	dr.createUI()
	return dr
}

// SetCallbacks sets the action callbacks
func (dr *DocumentRow) SetCallbacks(onReveal, onOpenExternal func(path string)) {
	dr.onReveal = onReveal
	dr.onOpenExternal = onOpenExternal
}

// UpdateEntry shows entry in the row
func (dr *DocumentRow) UpdateEntry(entry *model.DocumentEntry) {
	dr.entry = entry
	dr.updateFromEntry()
	dr.Refresh()
}

// Entry returns the shown entry
func (dr *DocumentRow) Entry() *model.DocumentEntry {
	return dr.entry
}

func (dr *DocumentRow) createUI() {
	dr.titleLabel = widget.NewLabel("")
	dr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	dr.titleLabel.Truncation = fyne.TextTruncateEllipsis

	dr.infoLabel = widget.NewLabel("")
	dr.infoLabel.SizeName = theme.SizeNameCaptionText
	dr.infoLabel.Truncation = fyne.TextTruncateEllipsis

	dr.revealBtn = widget.NewButton(IconReveal, func() {
		if dr.entry != nil && dr.onReveal != nil {
			dr.onReveal(dr.entry.Path)
		}
	})
	dr.revealBtn.Importance = widget.LowImportance

	dr.openBtn = widget.NewButton(IconExternal, func() {
		if dr.entry != nil && dr.onOpenExternal != nil {
			dr.onOpenExternal(dr.entry.Path)
		}
	})
	dr.openBtn.Importance = widget.LowImportance

	dr.updateFromEntry()
}

func (dr *DocumentRow) updateFromEntry() {
	if dr.entry == nil {
		dr.titleLabel.SetText(DashPlaceholder)
		dr.infoLabel.SetText("")
		dr.revealBtn.Disable()
		dr.openBtn.Disable()
		return
	}

	dr.titleLabel.SetText(dr.entry.Title)
	info := dr.entry.GetDisplaySize()
	if !dr.entry.ModTime.IsZero() {
		info += MiddleDotSeparator + dr.entry.ModTime.Format(RowDateLayout)
	}
	dr.infoLabel.SetText(info)
	dr.revealBtn.Enable()
	dr.openBtn.Enable()
}

// CreateRenderer creates the widget renderer
func (dr *DocumentRow) CreateRenderer() fyne.WidgetRenderer {
	actions := container.NewHBox(dr.revealBtn, dr.openBtn)
	text := container.NewVBox(dr.titleLabel, dr.infoLabel)
	content := container.NewBorder(nil, nil, nil, actions, text)
	return &documentRowRenderer{content: content}
}

type documentRowRenderer struct {
	content *fyne.Container
}

func (r *documentRowRenderer) Layout(size fyne.Size) {
	r.content.Resize(size)
}

func (r *documentRowRenderer) MinSize() fyne.Size {
	min := r.content.MinSize()
	if min.Width < RowMinWidth {
		min.Width = RowMinWidth
	}
	if min.Height < RowMinHeight {
		min.Height = RowMinHeight
	}
	return min
}

func (r *documentRowRenderer) Refresh() {
	r.content.Refresh()
}

func (r *documentRowRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.content}
}

func (r *documentRowRenderer) Destroy() {}

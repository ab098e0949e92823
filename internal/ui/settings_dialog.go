package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/pdf-viewer/internal/config"
)

// SettingsDialog edits the viewer and library settings
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	libraryDirEntry  *widget.Entry
	defaultZoomEntry *widget.Entry
	minZoomEntry     *widget.Entry
	maxZoomEntry     *widget.Entry
	zoomStepEntry    *widget.Entry
	backendSelect    *widget.Select
	rtlCheck         *widget.Check
	languageSelect   *widget.Select

	// onSaved runs after the settings were stored
	onSaved func()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.libraryDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	libraryDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.libraryDirEntry)

	sd.defaultZoomEntry = newZoomEntry()
	sd.minZoomEntry = newZoomEntry()
	sd.maxZoomEntry = newZoomEntry()
	sd.zoomStepEntry = newZoomEntry()

	sd.backendSelect = widget.NewSelect(sd.settings.GetRenderBackendOptions(), nil)

	sd.rtlCheck = widget.NewCheck(l.GetText(KeyRightToLeft), nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := widget.NewForm(
		widget.NewFormItem(l.GetText(KeyLibraryDir), libraryDirRow),
		widget.NewFormItem(l.GetText(KeyDefaultZoom), sd.defaultZoomEntry),
		widget.NewFormItem(l.GetText(KeyMinZoom), sd.minZoomEntry),
		widget.NewFormItem(l.GetText(KeyMaxZoom), sd.maxZoomEntry),
		widget.NewFormItem(l.GetText(KeyZoomStep), sd.zoomStepEntry),
		widget.NewFormItem(l.GetText(KeyRenderer), sd.backendSelect),
		widget.NewFormItem(l.GetText(KeyLanguage), sd.languageSelect),
		widget.NewFormItem("", sd.rtlCheck),
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 420))
}

func newZoomEntry() *widget.Entry {
	e := widget.NewEntry()
	e.SetPlaceHolder("1.0")
	return e
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.libraryDirEntry.SetText(sd.settings.GetLibraryDirectory())
	sd.defaultZoomEntry.SetText(formatFloat(sd.settings.GetDefaultZoom()))
	sd.minZoomEntry.SetText(formatFloat(sd.settings.GetMinZoom()))
	sd.maxZoomEntry.SetText(formatFloat(sd.settings.GetMaxZoom()))
	sd.zoomStepEntry.SetText(formatFloat(sd.settings.GetZoomStep()))
	sd.backendSelect.SetSelected(sd.settings.GetRenderBackend())
	sd.rtlCheck.SetChecked(sd.settings.GetRightToLeft())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.libraryDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply stores the entered values, ignoring fields that do not parse
func (sd *SettingsDialog) apply() {
	if dir := sd.libraryDirEntry.Text; dir != "" {
		sd.settings.SetLibraryDirectory(dir)
	}

	if v, ok := parseFloat(sd.minZoomEntry.Text); ok {
		sd.settings.SetMinZoom(v)
	}
	if v, ok := parseFloat(sd.maxZoomEntry.Text); ok {
		sd.settings.SetMaxZoom(v)
	}
	if v, ok := parseFloat(sd.defaultZoomEntry.Text); ok {
		sd.settings.SetDefaultZoom(v)
	}
	if v, ok := parseFloat(sd.zoomStepEntry.Text); ok {
		sd.settings.SetZoomStep(v)
	}

	if sd.backendSelect.Selected != "" {
		sd.settings.SetRenderBackend(sd.backendSelect.Selected)
	}
	sd.settings.SetRightToLeft(sd.rtlCheck.Checked)
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
}

func parseFloat(text string) (float64, bool) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

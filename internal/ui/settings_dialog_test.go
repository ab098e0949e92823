package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/pdf-viewer/internal/config"
	"github.com/ytget/pdf-viewer/internal/render"
)

func TestSettingsDialog_Apply(t *testing.T) {
	app := test.NewApp()
	window := app.NewWindow("settings")
	settings := config.NewSettings(app)

	saved := 0
	sd := NewSettingsDialog(settings, NewLocalization(), window, func() { saved++ })
	sd.loadCurrentSettings()

	if sd.defaultZoomEntry.Text != "1" {
		t.Errorf("Expected default zoom 1, got %q", sd.defaultZoomEntry.Text)
	}

	dir := t.TempDir()
	sd.libraryDirEntry.SetText(dir)
	sd.defaultZoomEntry.SetText("1.25")
	sd.minZoomEntry.SetText("0.5")
	sd.maxZoomEntry.SetText("4")
	sd.zoomStepEntry.SetText("not a number")
	sd.backendSelect.SetSelected(render.BackendText)
	sd.rtlCheck.SetChecked(true)
	sd.languageSelect.SetSelected("ru")

	sd.onSave(true)

	if saved != 1 {
		t.Errorf("Expected onSaved once, got %d", saved)
	}
	if settings.GetLibraryDirectory() != dir {
		t.Errorf("Library directory = %q", settings.GetLibraryDirectory())
	}
	if settings.GetDefaultZoom() != 1.25 || settings.GetMinZoom() != 0.5 || settings.GetMaxZoom() != 4 {
		t.Errorf("Unexpected zoom settings %v %v %v", settings.GetDefaultZoom(), settings.GetMinZoom(), settings.GetMaxZoom())
	}
	if settings.GetZoomStep() != 0.1 {
		t.Errorf("Invalid step should be ignored, got %v", settings.GetZoomStep())
	}
	if settings.GetRenderBackend() != render.BackendText {
		t.Errorf("Backend = %q", settings.GetRenderBackend())
	}
	if !settings.GetRightToLeft() || settings.GetLanguage() != "ru" {
		t.Errorf("Unexpected rtl/language %v %q", settings.GetRightToLeft(), settings.GetLanguage())
	}
}

func TestSettingsDialog_Cancel(t *testing.T) {
	app := test.NewApp()
	settings := config.NewSettings(app)

	saved := 0
	sd := NewSettingsDialog(settings, NewLocalization(), app.NewWindow("settings"), func() { saved++ })
	sd.loadCurrentSettings()
	sd.languageSelect.SetSelected("pt")

	sd.onSave(false)

	if saved != 0 || settings.GetLanguage() == "pt" {
		t.Error("Cancel should not store anything")
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		input  string
		want   float64
		wantOK bool
	}{
		{"1.5", 1.5, true},
		{"2", 2, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseFloat(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("parseFloat(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

package config

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	"github.com/ytget/pdf-viewer/internal/platform"
	"github.com/ytget/pdf-viewer/internal/render"
	"github.com/ytget/pdf-viewer/internal/viewer"
)

// Settings keys for Fyne preferences
const (
	KeyDefaultZoom     = "default_zoom"
	KeyMinZoom         = "min_zoom"
	KeyMaxZoom         = "max_zoom"
	KeyZoomStep        = "zoom_step"
	KeyRightToLeft     = "right_to_left"
	KeyLanguage        = "app_language"
	KeyRenderBackend   = "render_backend"
	KeyLibraryDir      = "library_directory"
	KeyRecentDocuments = "recent_documents"
)

// Default values
const (
	DefaultLanguage    = "system"
	DefaultBackend     = render.BackendAuto
	MaxRecentDocuments = 10
)

// Zoom limits accepted by the setters
const (
	LowestZoom  = 0.1
	HighestZoom = 10.0
	LowestStep  = 0.01
	HighestStep = 1.0
)

// Languages written right to left
var rightToLeftLanguages = map[string]bool{
	"ar": true,
}

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDefaultZoom returns the scale used before the first fit
func (s *Settings) GetDefaultZoom() float64 {
	value := s.app.Preferences().Float(KeyDefaultZoom)
	if value <= 0 {
		s.SetDefaultZoom(viewer.DefaultScale)
		return viewer.DefaultScale
	}
	return value
}

// SetDefaultZoom sets the scale used before the first fit
func (s *Settings) SetDefaultZoom(value float64) {
	s.app.Preferences().SetFloat(KeyDefaultZoom, clampZoom(value))
}

// GetMinZoom returns the lower zoom bound
func (s *Settings) GetMinZoom() float64 {
	value := s.app.Preferences().Float(KeyMinZoom)
	if value <= 0 {
		s.SetMinZoom(viewer.DefaultMinScale)
		return viewer.DefaultMinScale
	}
	return value
}

// SetMinZoom sets the lower zoom bound
func (s *Settings) SetMinZoom(value float64) {
	s.app.Preferences().SetFloat(KeyMinZoom, clampZoom(value))
}

// GetMaxZoom returns the upper zoom bound
func (s *Settings) GetMaxZoom() float64 {
	value := s.app.Preferences().Float(KeyMaxZoom)
	if value <= 0 {
		s.SetMaxZoom(viewer.DefaultMaxScale)
		return viewer.DefaultMaxScale
	}
	return value
}

// SetMaxZoom sets the upper zoom bound
func (s *Settings) SetMaxZoom(value float64) {
	s.app.Preferences().SetFloat(KeyMaxZoom, clampZoom(value))
}

// GetZoomStep returns the zoom in/out increment
func (s *Settings) GetZoomStep() float64 {
	value := s.app.Preferences().Float(KeyZoomStep)
	if value <= 0 {
		s.SetZoomStep(viewer.DefaultScaleStep)
		return viewer.DefaultScaleStep
	}
	return value
}

// SetZoomStep sets the zoom in/out increment
func (s *Settings) SetZoomStep(step float64) {
	if step < LowestStep {
		step = LowestStep
	}
	if step > HighestStep {
		step = HighestStep
	}
	s.app.Preferences().SetFloat(KeyZoomStep, step)
}

// GetRightToLeft reports whether the viewer is forced right to left
func (s *Settings) GetRightToLeft() bool {
	return s.app.Preferences().BoolWithFallback(KeyRightToLeft, false)
}

// SetRightToLeft forces the right to left layout
func (s *Settings) SetRightToLeft(rtl bool) {
	s.app.Preferences().SetBool(KeyRightToLeft, rtl)
}

// IsRightToLeft reports whether the layout for lang reads right to left,
// either because the language does or the user forced it
func (s *Settings) IsRightToLeft(lang string) bool {
	return s.GetRightToLeft() || rightToLeftLanguages[lang]
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ar":     "العربية",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetRenderBackend returns the configured renderer backend name
func (s *Settings) GetRenderBackend() string {
	name := s.app.Preferences().String(KeyRenderBackend)
	if name == "" {
		s.SetRenderBackend(DefaultBackend)
		return DefaultBackend
	}
	return name
}

// SetRenderBackend sets the renderer backend, unknown names fall back to auto
func (s *Settings) SetRenderBackend(name string) {
	known := false
	for _, option := range render.BackendOptions() {
		if option == name {
			known = true
			break
		}
	}
	if !known {
		name = DefaultBackend
	}
	s.app.Preferences().SetString(KeyRenderBackend, name)
}

// GetRenderBackendOptions returns available renderer backends
func (s *Settings) GetRenderBackendOptions() []string {
	return render.BackendOptions()
}

// GetLibraryDirectory returns the folder scanned for documents
func (s *Settings) GetLibraryDirectory() string {
	dir := s.app.Preferences().String(KeyLibraryDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDocumentsDir()
		if err != nil {
			defaultDir = filepath.Join(".", "Documents")
		}
		s.SetLibraryDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetLibraryDirectory sets the folder scanned for documents
func (s *Settings) SetLibraryDirectory(dir string) {
	s.app.Preferences().SetString(KeyLibraryDir, dir)
}

// GetRecentDocuments returns recently opened locators, newest first
func (s *Settings) GetRecentDocuments() []string {
	return s.app.Preferences().StringList(KeyRecentDocuments)
}

// AddRecentDocument moves locator to the front of the recent list
func (s *Settings) AddRecentDocument(locator string) {
	if locator == "" {
		return
	}
	recent := []string{locator}
	for _, item := range s.GetRecentDocuments() {
		if item != locator && len(recent) < MaxRecentDocuments {
			recent = append(recent, item)
		}
	}
	s.app.Preferences().SetStringList(KeyRecentDocuments, recent)
}

// ClearRecentDocuments empties the recent list
func (s *Settings) ClearRecentDocuments() {
	s.app.Preferences().SetStringList(KeyRecentDocuments, []string{})
}

// ViewerConfig returns a viewer configuration with the zoom settings applied.
// Bounds that contradict each other are repaired by the viewer.
func (s *Settings) ViewerConfig(lang string) viewer.Config {
	cfg := viewer.DefaultConfig()
	cfg.DefaultScale = s.GetDefaultZoom()
	cfg.MinScale = s.GetMinZoom()
	cfg.MaxScale = s.GetMaxZoom()
	cfg.ScaleStep = s.GetZoomStep()
	cfg.RightToLeft = s.IsRightToLeft(lang)
	return cfg
}

func clampZoom(value float64) float64 {
	if value < LowestZoom {
		return LowestZoom
	}
	if value > HighestZoom {
		return HighestZoom
	}
	return value
}

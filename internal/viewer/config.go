package viewer

import "time"

// Default configuration values
const (
	DefaultScale          = 1.0
	DefaultMinScale       = 0.3
	DefaultMaxScale       = 3.0
	DefaultScaleStep      = 0.1
	DefaultResizeDebounce = 250 * time.Millisecond
	DefaultErrorAutoHide  = 5 * time.Second
	DefaultFitPadding     = 40.0
)

// Strings holds the user-visible texts used by the viewer
type Strings struct {
	Loading      string
	Error        string
	Retry        string
	Page         string
	Of           string
	ZoomIn       string
	ZoomOut      string
	FitWidth     string
	FitPage      string
	PreviousPage string
	NextPage     string
	RenderError  string
	InitError    string
}

// DefaultStrings returns the English texts
func DefaultStrings() Strings {
	return Strings{
		Loading:      "Loading...",
		Error:        "An error occurred",
		Retry:        "Retry",
		Page:         "Page",
		Of:           "of",
		ZoomIn:       "Zoom in",
		ZoomOut:      "Zoom out",
		FitWidth:     "Fit width",
		FitPage:      "Fit page",
		PreviousPage: "Previous page",
		NextPage:     "Next page",
		RenderError:  "Error rendering PDF page",
		InitError:    "Viewer surface is missing",
	}
}

// Callbacks are optional lifecycle hooks. They run on the UI loop; a panic
// inside a callback is recovered and logged.
type Callbacks struct {
	OnEvent        func(Event)
	OnDocumentLoad func(pageCount int)
	OnPageChange   func(pageNumber, totalPages int)
	OnZoomChange   func(scale float64)
	OnError        func(*Error)
}

// Config is copied by New and never changed afterwards
type Config struct {
	Elements       Elements
	DefaultScale   float64
	MinScale       float64
	MaxScale       float64
	ScaleStep      float64
	RightToLeft    bool
	Strings        Strings
	Callbacks      Callbacks
	ResizeDebounce time.Duration
	ErrorAutoHide  time.Duration
	FitPadding     float64
}

// DefaultConfig returns a configuration with default bounds and English texts
func DefaultConfig() Config {
	return Config{
		DefaultScale:   DefaultScale,
		MinScale:       DefaultMinScale,
		MaxScale:       DefaultMaxScale,
		ScaleStep:      DefaultScaleStep,
		Strings:        DefaultStrings(),
		ResizeDebounce: DefaultResizeDebounce,
		ErrorAutoHide:  DefaultErrorAutoHide,
		FitPadding:     DefaultFitPadding,
	}
}

// normalize replaces unusable values with defaults
func (c Config) normalize() Config {
	if c.MinScale <= 0 || c.MaxScale <= 0 || c.MaxScale < c.MinScale {
		c.MinScale = DefaultMinScale
		c.MaxScale = DefaultMaxScale
	}
	if c.ScaleStep <= 0 {
		c.ScaleStep = DefaultScaleStep
	}
	if c.DefaultScale <= 0 {
		c.DefaultScale = DefaultScale
	}
	c.DefaultScale = clampFloat(c.DefaultScale, c.MinScale, c.MaxScale)
	if c.ResizeDebounce <= 0 {
		c.ResizeDebounce = DefaultResizeDebounce
	}
	if c.ErrorAutoHide <= 0 {
		c.ErrorAutoHide = DefaultErrorAutoHide
	}
	if c.FitPadding < 0 {
		c.FitPadding = 0
	}

	defaults := DefaultStrings()
	fill := func(dst *string, fallback string) {
		if *dst == "" {
			*dst = fallback
		}
	}
	fill(&c.Strings.Loading, defaults.Loading)
	fill(&c.Strings.Error, defaults.Error)
	fill(&c.Strings.Retry, defaults.Retry)
	fill(&c.Strings.Page, defaults.Page)
	fill(&c.Strings.Of, defaults.Of)
	fill(&c.Strings.ZoomIn, defaults.ZoomIn)
	fill(&c.Strings.ZoomOut, defaults.ZoomOut)
	fill(&c.Strings.FitWidth, defaults.FitWidth)
	fill(&c.Strings.FitPage, defaults.FitPage)
	fill(&c.Strings.PreviousPage, defaults.PreviousPage)
	fill(&c.Strings.NextPage, defaults.NextPage)
	fill(&c.Strings.RenderError, defaults.RenderError)
	fill(&c.Strings.InitError, defaults.InitError)
	return c
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

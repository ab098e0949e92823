package model

// ViewerState is the mutable session state owned by a single viewer instance
type ViewerState struct {
	Status       ViewerStatus
	Locator      string  // last requested document locator, used by retry
	PageNumber   int     // 1-based, 0 when no document is loaded
	TotalPages   int     // 0 when no document is loaded
	Scale        float64 // always within the configured bounds
	Rendering    bool    // a render is in flight
	PendingPage  int     // page queued behind the in-flight render, 0 if none
	Loading      bool
	HasError     bool
	ErrorMessage string
	FitMode      FitMode
	Fullscreen   bool
}

// NewViewerState creates an empty state at the given scale
func NewViewerState(scale float64) ViewerState {
	return ViewerState{
		Status: StatusUninitialized,
		Scale:  scale,
	}
}

// HasDocument reports whether a document is loaded
func (s *ViewerState) HasDocument() bool {
	return s.TotalPages > 0
}

// BeginLoad resets document-related fields ahead of a new load.
// Scale and fullscreen survive a reload.
func (s *ViewerState) BeginLoad(locator string) {
	s.Status = StatusLoading
	s.Locator = locator
	s.PageNumber = 0
	s.TotalPages = 0
	s.Rendering = false
	s.PendingPage = 0
	s.Loading = true
	s.FitMode = FitNone
	s.ClearError()
}

// SetError records a failure message and moves to the error status
func (s *ViewerState) SetError(message string) {
	s.Status = StatusError
	s.HasError = true
	s.ErrorMessage = message
}

// ClearError drops the error flag and message
func (s *ViewerState) ClearError() {
	s.HasError = false
	s.ErrorMessage = ""
}

// ClampPage returns n clamped into [1, TotalPages]
func (s *ViewerState) ClampPage(n int) int {
	if n < 1 {
		return 1
	}
	if s.TotalPages > 0 && n > s.TotalPages {
		return s.TotalPages
	}
	return n
}

// TakePending returns the pending page and empties the slot
func (s *ViewerState) TakePending() int {
	n := s.PendingPage
	s.PendingPage = 0
	return n
}

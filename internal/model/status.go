package model

// ViewerStatus represents the lifecycle state of a viewer instance
type ViewerStatus string

const (
	// StatusUninitialized means the viewer has not been bound to its elements
	StatusUninitialized ViewerStatus = "Uninitialized"

	// StatusInitialized means the viewer is bound but has no document yet
	StatusInitialized ViewerStatus = "Initialized"

	// StatusLoading means a document is being opened or its first page rendered
	StatusLoading ViewerStatus = "Loading"

	// StatusReady means a document is loaded and no render is in flight
	StatusReady ViewerStatus = "Ready"

	// StatusRendering means a page render is in flight
	StatusRendering ViewerStatus = "Rendering"

	// StatusError means the last load or render failed
	StatusError ViewerStatus = "Error"

	// StatusDisposed means the viewer was torn down
	StatusDisposed ViewerStatus = "Disposed"
)

// String returns the string representation of ViewerStatus
func (vs ViewerStatus) String() string {
	return string(vs)
}

// IsBusy returns true while a load or render is in flight
func (vs ViewerStatus) IsBusy() bool {
	return vs == StatusLoading || vs == StatusRendering
}

// CanLoad returns true if a document load may be started from this state
func (vs ViewerStatus) CanLoad() bool {
	return vs != StatusUninitialized && vs != StatusDisposed
}

// FitMode records which automatic fit was applied last
type FitMode string

const (
	FitNone  FitMode = ""
	FitWidth FitMode = "width"
	FitPage  FitMode = "page"
)

// String returns the string representation of FitMode
func (fm FitMode) String() string {
	if fm == FitNone {
		return "none"
	}
	return string(fm)
}

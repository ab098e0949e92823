package viewer

import (
	"errors"
	"fmt"
)

// EventType names a viewer event
type EventType string

const (
	EventInitialized      EventType = "initialized"
	EventDocumentLoaded   EventType = "documentLoaded"
	EventPageRendered     EventType = "pageRendered"
	EventZoomChanged      EventType = "zoomChanged"
	EventError            EventType = "error"
	EventFullscreenChange EventType = "fullscreenChange"
)

// Event carries a snapshot of the viewer when something happened
type Event struct {
	Type       EventType
	PageNumber int
	TotalPages int
	Scale      float64
	Fullscreen bool
	Locator    string
	Err        *Error
}

// ErrorKind classifies viewer failures
type ErrorKind string

const (
	KindInitialization  ErrorKind = "initialization"
	KindLoad            ErrorKind = "load"
	KindRender          ErrorKind = "render"
	KindInputValidation ErrorKind = "inputValidation"
)

var (
	ErrSurfaceMissing = errors.New("drawing surface is missing")
	ErrNotInitialized = errors.New("viewer is not initialized")
	ErrEmptyLocator   = errors.New("document locator is empty")
)

// Error is a failure surfaced to the user and to callbacks
type Error struct {
	Kind    ErrorKind
	Message string
	Page    int // page being rendered, render errors only
	Err     error
}

func (e *Error) Error() string {
	if e.Page > 0 {
		return fmt.Sprintf("%s error on page %d: %s", e.Kind, e.Page, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

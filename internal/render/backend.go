package render

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// NewBackend returns the backend registered under name
func NewBackend(name string) (Backend, error) {
	switch name {
	case BackendFitz:
		return NewFitzBackend(), nil
	case BackendText:
		return NewTextBackend(), nil
	case BackendAuto, "":
		return NewFallbackBackend(NewFitzBackend(), NewTextBackend()), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, name)
	}
}

// BackendOptions returns the selectable backend names
func BackendOptions() []string {
	return []string{BackendAuto, BackendFitz, BackendText}
}

// FallbackBackend tries each backend in order until one opens the document
type FallbackBackend struct {
	backends []Backend
}

// NewFallbackBackend creates a backend chain
func NewFallbackBackend(backends ...Backend) *FallbackBackend {
	return &FallbackBackend{backends: backends}
}

// Name returns the backend name
func (b *FallbackBackend) Name() string {
	return BackendAuto
}

// Open returns the first successfully opened document, or the joined errors
func (b *FallbackBackend) Open(ctx context.Context, locator string, progress ProgressFunc) (Document, error) {
	var errs []error
	for _, backend := range b.backends {
		doc, err := backend.Open(ctx, locator, progress)
		if err == nil {
			return doc, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Printf("render: %s backend could not open %s: %v", backend.Name(), locator, err)
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil, ErrUnknownBackend
	}
	return nil, errors.Join(errs...)
}

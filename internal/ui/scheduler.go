package ui

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/pdf-viewer/internal/viewer"
)

// fyneScheduler runs viewer work on goroutines and hands results back to the
// Fyne event loop with fyne.Do
type fyneScheduler struct{}

// NewScheduler returns the scheduler used by viewers inside a Fyne app
func NewScheduler() viewer.Scheduler {
	return fyneScheduler{}
}

func (fyneScheduler) Go(work func(), done func()) {
	go func() {
		work()
		if done != nil {
			fyne.Do(done)
		}
	}()
}

func (fyneScheduler) Post(f func()) {
	fyne.Do(f)
}

func (fyneScheduler) AfterFunc(d time.Duration, f func()) viewer.Timer {
	return time.AfterFunc(d, func() {
		fyne.Do(f)
	})
}

package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestScheduler_Go(t *testing.T) {
	test.NewApp()
	s := NewScheduler()

	done := make(chan int, 1)
	var result int
	s.Go(func() { result = 42 }, func() { done <- result })

	select {
	case got := <-done:
		if got != 42 {
			t.Errorf("Expected 42, got %d", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("done callback never ran")
	}
}

func TestScheduler_AfterFunc(t *testing.T) {
	test.NewApp()
	s := NewScheduler()

	fired := make(chan struct{}, 1)
	s.AfterFunc(10*time.Millisecond, func() { fired <- struct{}{} })
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("timer never fired")
	}

	stopped := make(chan struct{}, 1)
	timer := s.AfterFunc(time.Hour, func() { stopped <- struct{}{} })
	if !timer.Stop() {
		t.Error("Stop should report a pending timer")
	}
}

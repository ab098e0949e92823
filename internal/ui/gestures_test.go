package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
)

func touchAt(x, y float32) *mobile.TouchEvent {
	return &mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

// fakeClock is advanced by tests between touch events
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestGestureHandler(t *testing.T) {
	tests := []struct {
		name     string
		from     fyne.Position
		to       fyne.Position
		held     time.Duration
		expected GestureType
	}{
		{"tap", fyne.NewPos(100, 100), fyne.NewPos(105, 103), 50 * time.Millisecond, GestureTap},
		{"long press", fyne.NewPos(100, 100), fyne.NewPos(102, 100), 600 * time.Millisecond, GestureLongPress},
		{"swipe left", fyne.NewPos(200, 100), fyne.NewPos(100, 110), 100 * time.Millisecond, GestureSwipeLeft},
		{"swipe right", fyne.NewPos(100, 100), fyne.NewPos(200, 90), 100 * time.Millisecond, GestureSwipeRight},
		{"swipe up", fyne.NewPos(100, 200), fyne.NewPos(110, 100), 100 * time.Millisecond, GestureSwipeUp},
		{"swipe down", fyne.NewPos(100, 100), fyne.NewPos(90, 200), 100 * time.Millisecond, GestureSwipeDown},
		{"slow swipe is still a swipe", fyne.NewPos(200, 100), fyne.NewPos(100, 100), time.Second, GestureSwipeLeft},
		{"diagonal below threshold", fyne.NewPos(100, 100), fyne.NewPos(130, 130), 50 * time.Millisecond, GestureTap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{t: time.Unix(0, 0)}
			var got []GestureType
			gh := NewGestureHandler(func(g GestureType) { got = append(got, g) })
			gh.now = clock.now

			gh.TouchDown(touchAt(tt.from.X, tt.from.Y))
			clock.t = clock.t.Add(tt.held)
			gh.TouchUp(touchAt(tt.to.X, tt.to.Y))

			if len(got) != 1 || got[0] != tt.expected {
				t.Errorf("Expected [%v], got %v", tt.expected, got)
			}
		})
	}
}

func TestGestureHandler_CancelAndStrayTouchUp(t *testing.T) {
	var got []GestureType
	gh := NewGestureHandler(func(g GestureType) { got = append(got, g) })

	gh.TouchUp(touchAt(10, 10))
	gh.TouchDown(touchAt(10, 10))
	gh.TouchCancel(touchAt(10, 10))
	gh.TouchUp(touchAt(200, 10))

	if len(got) != 0 {
		t.Errorf("Expected no gestures, got %v", got)
	}
}

func TestSwipeTarget(t *testing.T) {
	tests := []struct {
		gesture  GestureType
		rtl      bool
		wantNext bool
		wantOK   bool
	}{
		{GestureSwipeLeft, false, true, true},
		{GestureSwipeRight, false, false, true},
		{GestureSwipeLeft, true, false, true},
		{GestureSwipeRight, true, true, true},
		{GestureSwipeUp, false, false, false},
		{GestureTap, true, false, false},
	}

	for _, tt := range tests {
		next, ok := SwipeTarget(tt.gesture, tt.rtl)
		if next != tt.wantNext || ok != tt.wantOK {
			t.Errorf("SwipeTarget(%v, rtl=%v) = %v, %v; want %v, %v", tt.gesture, tt.rtl, next, ok, tt.wantNext, tt.wantOK)
		}
	}
}

func TestGestureType_String(t *testing.T) {
	if GestureSwipeLeft.String() != "swipe-left" {
		t.Errorf("unexpected name %q", GestureSwipeLeft.String())
	}
	if GestureType(99).String() != "unknown" {
		t.Errorf("unexpected name %q", GestureType(99).String())
	}
}

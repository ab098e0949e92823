package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/pdf-viewer/internal/viewer"
)

// viewerKeyNames maps Fyne key names to the names the viewer understands
var viewerKeyNames = map[fyne.KeyName]string{
	fyne.KeyLeft:     viewer.KeyArrowLeft,
	fyne.KeyRight:    viewer.KeyArrowRight,
	fyne.KeyUp:       viewer.KeyArrowUp,
	fyne.KeyDown:     viewer.KeyArrowDown,
	fyne.KeyPageUp:   viewer.KeyPageUp,
	fyne.KeyPageDown: viewer.KeyPageDown,
	fyne.KeySpace:    viewer.KeySpace,
	fyne.KeyHome:     viewer.KeyHome,
	fyne.KeyEnd:      viewer.KeyEnd,
	fyne.KeyEscape:   viewer.KeyEscape,
}

// viewerRunes are the printable shortcuts
const viewerRunes = "+=-_01fF"

// KeyEventFromKey converts a typed key, reporting false for keys without a shortcut
func KeyEventFromKey(ev *fyne.KeyEvent, inTextInput bool) (viewer.KeyEvent, bool) {
	if ev == nil {
		return viewer.KeyEvent{}, false
	}
	name, ok := viewerKeyNames[ev.Name]
	if !ok {
		return viewer.KeyEvent{}, false
	}
	return viewer.KeyEvent{Name: name, InTextInput: inTextInput}, true
}

// KeyEventFromRune converts a typed character. Space arrives as a key as well,
// so it is not reported here.
func KeyEventFromRune(r rune, inTextInput bool) (viewer.KeyEvent, bool) {
	for _, shortcut := range viewerRunes {
		if r == shortcut {
			return viewer.KeyEvent{Name: string(r), InTextInput: inTextInput}, true
		}
	}
	return viewer.KeyEvent{}, false
}

// isTextInput reports whether the focused object accepts typing
func isTextInput(obj fyne.Focusable) bool {
	switch obj.(type) {
	case nil:
		return false
	case *PageEntry, *widget.Entry, *widget.SelectEntry:
		return true
	}
	return false
}

package viewer

// Key names understood by HandleKey
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyPageUp     = "PageUp"
	KeyPageDown   = "PageDown"
	KeySpace      = "Space"
	KeyHome       = "Home"
	KeyEnd        = "End"
	KeyEscape     = "Escape"
)

// KeyEvent is a key press delivered to the viewer. Printable keys use the
// character itself as Name.
type KeyEvent struct {
	Name        string
	InTextInput bool
}

// HandleKey runs the shortcut bound to the key and reports whether it was used.
// Keys are ignored while typing in a text input or when no document is shown.
func (v *Viewer) HandleKey(ev KeyEvent) bool {
	if ev.InTextInput || !v.hasDocument() {
		return false
	}

	switch ev.Name {
	case KeyArrowLeft, KeyArrowUp, KeyPageUp:
		v.PrevPage()
	case KeyArrowRight, KeyArrowDown, KeyPageDown, KeySpace, " ":
		v.NextPage()
	case KeyHome:
		v.FirstPage()
	case KeyEnd:
		v.LastPage()
	case "+", "=":
		v.ZoomIn()
	case "-", "_":
		v.ZoomOut()
	case "0":
		v.FitWidth()
	case "1":
		v.SetZoom(1.0)
	case "f", "F":
		v.ToggleFullscreen()
	case KeyEscape:
		if !v.state.Fullscreen {
			return false
		}
		v.ExitFullscreen()
	default:
		return false
	}
	return true
}

// HandleWheel zooms on a wheel step while the zoom modifier is held and
// reports whether the event was used. Scrolling up zooms in.
func (v *Viewer) HandleWheel(deltaY float64, zoomModifier bool) bool {
	if !zoomModifier || !v.hasDocument() {
		return false
	}
	switch {
	case deltaY < 0:
		v.ZoomIn()
	case deltaY > 0:
		v.ZoomOut()
	}
	return true
}

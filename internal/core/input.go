package core

// Button represents a semantic UI input, abstracted from physical key presses.
// Handlers work with buttons rather than raw keys so the same logic runs
// locally and over SSH.
type Button int

const (
	ButtonNone   Button = iota
	ButtonUp            // W, K, Up arrow
	ButtonDown          // S, J, Down arrow
	ButtonLeft          // A, H, Left arrow
	ButtonRight         // D, L, Right arrow
	ButtonAction        // Enter, Space, Z - confirm
	ButtonCancel        // Esc, B, X - back out
	ButtonMenu          // ? - help, Tab in menus
	ButtonQuit          // Q, Ctrl+C
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonNone:
		return "None"
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonAction:
		return "Action"
	case ButtonCancel:
		return "Cancel"
	case ButtonMenu:
		return "Menu"
	case ButtonQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the button is one of the four arrows.
func (b Button) IsDirectional() bool {
	switch b {
	case ButtonUp, ButtonDown, ButtonLeft, ButtonRight:
		return true
	}
	return false
}

package tui

// Screen identifies the active view.
type Screen int

const (
	ScreenGenerator Screen = iota
	ScreenSettings
)

// SetScreen switches the active view.
func (m *Model) SetScreen(s Screen) {
	m.screen = s
}

// GetScreen returns the active view.
func (m Model) GetScreen() Screen {
	return m.screen
}

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// updateSettings handles keyboard input on the settings screen.
func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Error view takes precedence over loading and ready views. Retry clears
	// the flag; when the key never loaded, the load is re-triggered here.
	if m.setState.ErrorMessage != "" {
		switch msg.String() {
		case "r", "enter":
			wasLoaded := m.setState.Loaded()
			m.set.Retry()
			if !wasLoaded {
				m.set.Initialize()
			}
		case "esc":
			m.set.Retry()
			return m.switchScreen()
		}
		return m, nil
	}

	// Loading view: the editable form is not reachable yet.
	if !m.setState.Loaded() {
		if msg.String() == "esc" {
			return m.switchScreen()
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		return m.switchScreen()

	case "enter":
		if !m.setState.Saving {
			m.set.UpdateAPIKey(m.keyInput.Value())
			m.set.SaveSettings(func() {
				m.savedCh <- struct{}{}
			})
		}
		return m, nil
	}

	var cmd tea.Cmd
	before := m.keyInput.Value()
	m.keyInput, cmd = m.keyInput.Update(msg)
	if v := m.keyInput.Value(); v != before {
		m.set.UpdateAPIKey(v)
	}
	return m, cmd
}

// settingsView renders the three-way settings state: error, loading, or the
// editable form.
func (m Model) settingsView() string {
	var b strings.Builder

	if m.setState.ErrorMessage != "" {
		b.WriteString(ErrorBoxStyle.Render(
			ErrorMsgStyle.Render("Error: "+m.setState.ErrorMessage) + "\n" +
				HelpStyle.Render("r retry · Esc back")))
		return b.String()
	}

	if !m.setState.Loaded() {
		b.WriteString(m.spinner.View() + LoadingStyle.Render(" Loading settings..."))
		return b.String()
	}

	b.WriteString(LabelStyle.Render("API Key"))
	b.WriteString("\n")
	b.WriteString(InputBorderStyle.Render(m.keyInput.View()))
	b.WriteString("\n\n")

	if m.setState.Saving {
		b.WriteString(m.spinner.View() + LoadingStyle.Render(" Saving..."))
	} else {
		b.WriteString(HelpStyle.Render("Enter save · Esc back"))
	}

	return b.String()
}

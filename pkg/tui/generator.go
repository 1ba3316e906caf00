package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
)

// updateGenerator handles keyboard input on the generator screen.
func (m Model) updateGenerator(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Error view: retry clears the flag, nothing is resubmitted.
	if m.genState.ErrorMessage != "" {
		switch msg.String() {
		case "r", "enter", "esc":
			m.gen.Retry()
		}
		return m, nil
	}

	switch msg.String() {
	case "enter":
		if !m.genState.Generating {
			m.gen.UpdatePrompt(m.promptInput.Value())
			m.gen.GenerateName()
		}
		return m, nil

	case "ctrl+y":
		if m.genState.GeneratedText != "" {
			return m, copyToClipboard(m.genState.GeneratedText)
		}
		return m, nil
	}

	var cmd tea.Cmd
	before := m.promptInput.Value()
	m.promptInput, cmd = m.promptInput.Update(msg)
	if v := m.promptInput.Value(); v != before {
		m.gen.UpdatePrompt(v)
	}
	return m, cmd
}

// generatorView renders the prompt input and the generation outcome.
func (m Model) generatorView() string {
	var b strings.Builder

	b.WriteString(LabelStyle.Render("Prompt"))
	b.WriteString("\n")
	b.WriteString(InputBorderStyle.Render(m.promptInput.View()))
	b.WriteString("\n\n")

	switch {
	case m.genState.ErrorMessage != "":
		b.WriteString(ErrorBoxStyle.Render(
			ErrorMsgStyle.Render("Error: "+m.genState.ErrorMessage) + "\n" +
				HelpStyle.Render("r retry")))

	case m.genState.Generating:
		b.WriteString(m.spinner.View() + LoadingStyle.Render(" Generating..."))

	case m.genState.GeneratedText != "":
		text := m.genState.GeneratedText
		if m.width > 10 {
			text = wordwrap.String(text, m.width-10)
		}
		b.WriteString(ResultBoxStyle.Render(text))
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("Enter generate again · Ctrl+Y copy"))

	default:
		b.WriteString(HelpStyle.Render("Enter generate"))
	}

	return b.String()
}

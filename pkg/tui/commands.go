package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"NameForge/pkg/controller"
)

// Messages delivered by the snapshot listeners and helper commands.
type (
	generatorStateMsg controller.NameGeneratorState
	settingsStateMsg  controller.SettingsState
	savedMsg          struct{}
	statusClearMsg    struct{}
	copiedMsg         struct{ ok bool }
)

// waitForGeneratorState blocks on the generator snapshot channel. The command
// is re-armed after every delivery.
func waitForGeneratorState(ch <-chan controller.NameGeneratorState) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return generatorStateMsg(s)
	}
}

// waitForSettingsState blocks on the settings snapshot channel.
func waitForSettingsState(ch <-chan controller.SettingsState) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return settingsStateMsg(s)
	}
}

// waitForSaved blocks until a save completion callback fires.
func waitForSaved(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return savedMsg{}
	}
}

// clearStatusAfter clears the transient status line.
func clearStatusAfter() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}

// copyToClipboard copies text off the render loop.
func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteAll(text)
		return copiedMsg{ok: err == nil}
	}
}

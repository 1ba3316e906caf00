// Package tui provides the two-screen terminal interface: a name generator
// screen and a settings screen. It is a thin presentation layer: all state
// lives in the controllers, the TUI dispatches intents and re-renders from
// subscribed snapshots.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"NameForge/pkg/controller"
)

// Model is the bubbletea model for the application.
type Model struct {
	gen *controller.NameGeneratorController
	set *controller.SettingsController

	screen Screen

	promptInput textinput.Model
	keyInput    textinput.Model
	spinner     spinner.Model

	genState controller.NameGeneratorState
	setState controller.SettingsState

	genCh   <-chan controller.NameGeneratorState
	setCh   <-chan controller.SettingsState
	savedCh chan struct{}

	// settingsEntered dedupes Initialize: the controller itself does not
	// guard against repeated loads.
	settingsEntered bool
	// keySeeded tracks whether the key input has been filled from the first
	// loaded snapshot, so later edits are not clobbered.
	keySeeded bool

	status string

	width  int
	height int
}

// New creates the TUI model around the two controllers.
func New(gen *controller.NameGeneratorController, set *controller.SettingsController) Model {
	prompt := textinput.New()
	prompt.Placeholder = "Describe what needs a name..."
	prompt.Focus()
	prompt.CharLimit = 512
	prompt.Width = 60

	key := textinput.New()
	key.Placeholder = "API key"
	key.EchoMode = textinput.EchoPassword
	key.EchoCharacter = '•'
	key.CharLimit = 256
	key.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(PrimaryColor)

	genCh, _ := gen.Subscribe()
	setCh, _ := set.Subscribe()

	return Model{
		gen:         gen,
		set:         set,
		screen:      ScreenGenerator,
		promptInput: prompt,
		keyInput:    key,
		spinner:     sp,
		genState:    gen.State(),
		setState:    set.State(),
		genCh:       genCh,
		setCh:       setCh,
		savedCh:     make(chan struct{}, 1),
	}
}

// Init starts cursor blinking, the spinner, and the snapshot listeners.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		waitForGeneratorState(m.genCh),
		waitForSettingsState(m.setCh),
		waitForSaved(m.savedCh),
	)
}

// Update is the top-level message dispatcher.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case generatorStateMsg:
		m.genState = controller.NameGeneratorState(msg)
		return m, waitForGeneratorState(m.genCh)

	case settingsStateMsg:
		m.setState = controller.SettingsState(msg)
		if !m.keySeeded && m.setState.Loaded() {
			m.keyInput.SetValue(m.setState.Key())
			m.keySeeded = true
		}
		return m, waitForSettingsState(m.setCh)

	case savedMsg:
		m.status = "Settings saved"
		m.screen = ScreenGenerator
		m.promptInput.Focus()
		m.keyInput.Blur()
		return m, tea.Batch(waitForSaved(m.savedCh), clearStatusAfter())

	case copiedMsg:
		if msg.ok {
			m.status = "Copied to clipboard"
		} else {
			m.status = "Clipboard unavailable"
		}
		return m, clearStatusAfter()

	case statusClearMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			return m.switchScreen()
		}
		switch m.screen {
		case ScreenSettings:
			return m.updateSettings(msg)
		default:
			return m.updateGenerator(msg)
		}
	}

	return m, nil
}

// switchScreen toggles between the generator and settings screens, triggering
// the settings load on first entry.
func (m Model) switchScreen() (tea.Model, tea.Cmd) {
	if m.screen == ScreenGenerator {
		m.screen = ScreenSettings
		m.promptInput.Blur()
		m.keyInput.Focus()
		if !m.settingsEntered {
			m.settingsEntered = true
			m.set.Initialize()
		}
		return m, textinput.Blink
	}
	m.screen = ScreenGenerator
	m.keyInput.Blur()
	m.promptInput.Focus()
	return m, textinput.Blink
}

// View renders the active screen between a tab header and a status bar.
func (m Model) View() string {
	var body string
	switch m.screen {
	case ScreenSettings:
		body = m.settingsView()
	default:
		body = m.generatorView()
	}
	return m.headerView() + "\n\n" + body + "\n\n" + m.statusView()
}

func (m Model) headerView() string {
	genTab := TabStyle.Render("Generator")
	setTab := TabStyle.Render("Settings")
	if m.screen == ScreenGenerator {
		genTab = ActiveTabStyle.Render("Generator")
	} else {
		setTab = ActiveTabStyle.Render("Settings")
	}
	return TitleStyle.Render("NameForge") + "  " + genTab + " " + setTab
}

func (m Model) statusView() string {
	if m.status != "" {
		return StatusBarStyle.Render(SuccessMsgStyle.Render(m.status))
	}
	return StatusBarStyle.Render(HelpStyle.Render("Tab switch screen · Ctrl+C quit"))
}

// Run starts the TUI and blocks until it exits. Cancelling ctx forces
// bubbletea to quit.
func Run(ctx context.Context, gen *controller.NameGeneratorController, set *controller.SettingsController) error {
	p := tea.NewProgram(New(gen, set), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

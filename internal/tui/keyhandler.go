package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pders01/quip/internal/config"
)

type keyMap struct {
	Submit key.Binding
	Focus  key.Binding
	Quit   key.Binding
	Scroll key.Binding
}

func newKeyMap(cfg *config.Config) keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys(cfg.Keys.Submit),
			key.WithHelp(cfg.Keys.Submit, "search"),
		),
		Focus: key.NewBinding(
			key.WithKeys(cfg.Keys.Focus),
			key.WithHelp(cfg.Keys.Focus, "switch focus"),
		),
		Quit: key.NewBinding(
			key.WithKeys(cfg.Keys.Quit, "ctrl+c"),
			key.WithHelp(cfg.Keys.Quit, "quit"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown"),
			key.WithHelp("↑/↓", "scroll"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Focus, k.Scroll, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type KeyHandler struct {
	app  *App
	keys keyMap
}

func NewKeyHandler(app *App, cfg *config.Config) *KeyHandler {
	return &KeyHandler{app: app, keys: newKeyMap(cfg)}
}

func (kh *KeyHandler) HandleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return kh.app, tea.Quit
	}

	switch {
	case key.Matches(msg, kh.keys.Focus):
		kh.app.toggleFocus()
		return kh.app, nil
	case kh.app.focus == FocusResults:
		return kh.handleResultsMode(msg)
	default:
		return kh.handleInputMode(msg)
	}
}

func (kh *KeyHandler) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, kh.keys.Quit):
		return kh.app, tea.Quit
	case key.Matches(msg, kh.keys.Submit):
		return kh.app, kh.app.submit()
	default:
		return kh.delegateToTextInput(msg)
	}
}

// handleResultsMode scrolls the viewport. Quit from the results returns to
// the field instead of leaving the program.
func (kh *KeyHandler) handleResultsMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, kh.keys.Quit) {
		kh.app.toggleFocus()
		return kh.app, nil
	}
	var cmd tea.Cmd
	kh.app.viewport, cmd = kh.app.viewport.Update(msg)
	return kh.app, cmd
}

func (kh *KeyHandler) delegateToTextInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	kh.app.input, cmd = kh.app.input.Update(msg)
	return kh.app, cmd
}

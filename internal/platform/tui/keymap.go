package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/notch-dino/internal/core"
)

// KeyMap defines the terminal key bindings of the widget host.
// The terminal has no pointer-outside-the-window, so Enter and Esc stand in
// for clicking on and off the island.
type KeyMap struct {
	Jump  key.Binding
	Open  key.Binding
	Close key.Binding
	Runs  key.Binding
	Up    key.Binding
	Down  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Open, k.Close, k.Runs, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Open, k.Close},
		{k.Runs, k.Up, k.Down},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings. jumpKey is the configured
// jump key code, one of config.JumpKeys.
func DefaultKeyMap(jumpKey string) KeyMap {
	jump := key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "jump"),
	)
	if jumpKey == core.KeyUp {
		jump = key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "jump"),
		)
	}

	return KeyMap{
		Jump: jump,
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "collapse"),
		),
		Runs: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "runs"),
		),
		Up: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// keyCodes normalizes Bubble Tea key names to the codes the widget expects.
var keyCodes = map[string]string{
	" ":  core.KeySpace,
	"up": core.KeyUp,
}

// MapKey translates a key message into a widget input event.
// Open and Close become clicks inside and outside the island; everything
// else is a key press the widget may or may not consume.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.InputEvent {
	switch {
	case key.Matches(msg, k.Open):
		return core.Click(true)
	case key.Matches(msg, k.Close):
		return core.Click(false)
	}

	code, ok := keyCodes[msg.String()]
	if !ok {
		code = msg.String()
	}
	return core.KeyPress(code)
}

// MapMouse translates a mouse message into a widget input event. Only left
// button presses count. A press on the expanded island is a tap on the game
// surface; any other press is a click.
func MapMouse(msg tea.MouseMsg, inside, expanded bool) (core.InputEvent, bool) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return core.InputEvent{}, false
	}
	if inside && expanded {
		return core.TouchStart(), true
	}
	return core.Click(inside), true
}

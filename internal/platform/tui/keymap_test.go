package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/notch-dino/internal/config"
	"github.com/vovakirdan/notch-dino/internal/core"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		name     string
		jumpKey  string
		msg      tea.KeyMsg
		expected core.InputEvent
	}{
		{"enter clicks inside", core.KeySpace, tea.KeyMsg{Type: tea.KeyEnter}, core.Click(true)},
		{"esc clicks outside", core.KeySpace, tea.KeyMsg{Type: tea.KeyEsc}, core.Click(false)},
		{"space", core.KeySpace, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeyPress(core.KeySpace)},
		{"arrow up", core.KeyUp, tea.KeyMsg{Type: tea.KeyUp}, core.KeyPress(core.KeyUp)},
		{"other key passes through", core.KeySpace, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.KeyPress("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultKeyMap(tt.jumpKey).MapKey(tt.msg)
			if got != tt.expected {
				t.Errorf("MapKey() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	left := func(action tea.MouseAction) tea.MouseMsg {
		return tea.MouseMsg{Action: action, Button: tea.MouseButtonLeft}
	}

	tests := []struct {
		name     string
		msg      tea.MouseMsg
		inside   bool
		expanded bool
		expected core.InputEvent
		ok       bool
	}{
		{"press inside collapsed", left(tea.MouseActionPress), true, false, core.Click(true), true},
		{"press outside collapsed", left(tea.MouseActionPress), false, false, core.Click(false), true},
		{"press inside expanded", left(tea.MouseActionPress), true, true, core.TouchStart(), true},
		{"press outside expanded", left(tea.MouseActionPress), false, true, core.Click(false), true},
		{"release", left(tea.MouseActionRelease), true, true, core.InputEvent{}, false},
		{"motion", left(tea.MouseActionMotion), true, true, core.InputEvent{}, false},
		{"right button", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, true, false, core.InputEvent{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MapMouse(tt.msg, tt.inside, tt.expanded)
			if ok != tt.ok || got != tt.expected {
				t.Errorf("MapMouse() = %v, %v; expected %v, %v", got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestDefaultKeyMapJumpBinding(t *testing.T) {
	if keys := DefaultKeyMap(core.KeySpace).Jump.Keys(); len(keys) != 1 || keys[0] != " " {
		t.Errorf("space jump keys = %v", keys)
	}
	if keys := DefaultKeyMap(core.KeyUp).Jump.Keys(); len(keys) != 1 || keys[0] != "up" {
		t.Errorf("arrow jump keys = %v", keys)
	}
}

func TestEveryValidJumpKeyReachesTheRouter(t *testing.T) {
	msgs := map[string]tea.KeyMsg{
		core.KeySpace: {Type: tea.KeySpace, Runes: []rune{' '}},
		core.KeyUp:    {Type: tea.KeyUp},
	}

	for _, code := range config.JumpKeys {
		msg, ok := msgs[code]
		if !ok {
			t.Fatalf("no terminal key for jump key %q", code)
		}
		keys := DefaultKeyMap(code)
		if got := keys.MapKey(msg); got != core.KeyPress(code) {
			t.Errorf("MapKey() for %q = %v, expected %v", code, got, core.KeyPress(code))
		}
		if !key.Matches(msg, keys.Jump) {
			t.Errorf("jump binding for %q does not match its key", code)
		}
	}
}

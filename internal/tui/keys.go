package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/verte-zerg/tuidrill/internal/app"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Submit    key.Binding
	Next      key.Binding
	Back      key.Binding
	Delete    key.Binding
	Retry     key.Binding
	Skip      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Next:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "continue")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Delete:    key.NewBinding(key.WithKeys("backspace", "delete")),
		Retry:     key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "retry")),
		Skip:      key.NewBinding(key.WithKeys("s", "ctrl+s"), key.WithHelp("s", "skip")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) helpFor(snap app.Snapshot) []key.Binding {
	switch snap.Mode {
	case app.ModeSelecting:
		return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
	case app.ModeDrilling:
		if snap.Feedback == nil {
			return []key.Binding{k.Submit, k.Back}
		}
		if snap.CanRetry {
			return []key.Binding{k.Retry, k.Skip, k.Back}
		}
		return []key.Binding{k.Next, k.Back}
	case app.ModeFinished:
		return []key.Binding{k.Next, k.Quit}
	default:
		return nil
	}
}

package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuidrill/internal/app"
	"github.com/verte-zerg/tuidrill/internal/vocab"
)

type stubCatalog struct {
	sets []vocab.Set
}

func (s stubCatalog) Entries() []vocab.Entry {
	out := make([]vocab.Entry, len(s.sets))
	for i, set := range s.sets {
		out[i] = vocab.Entry{ID: set.Name, Name: set.Name}
	}
	return out
}

func (s stubCatalog) Load(id string) (vocab.Set, error) {
	for _, set := range s.sets {
		if set.Name == id {
			return set, nil
		}
	}
	return vocab.Set{}, errors.New("not found")
}

func newTestModel() *Model {
	cat := stubCatalog{sets: []vocab.Set{{
		Name:     "Git basics",
		Language: "en",
		Items: []vocab.Item{
			{ID: "status", Prompt: "Show the working tree status", Answer: "git status"},
			{ID: "log", Prompt: "Show commit history", Answer: "git log"},
		},
	}}}
	return NewModel(app.New(cat, app.WithShuffle(false)), "/tmp/dicts")
}

func press(m *Model, msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter     = tea.KeyMsg{Type: tea.KeyEnter}
	esc       = tea.KeyMsg{Type: tea.KeyEsc}
	backspace = tea.KeyMsg{Type: tea.KeyBackspace}
	space     = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func TestModelDrillFlow(t *testing.T) {
	m := newTestModel()

	press(m, enter)
	if m.ctrl.Mode() != app.ModeDrilling {
		t.Fatalf("expected drilling, got %s", m.ctrl.Mode())
	}
	if !strings.Contains(m.View(), "Show the working tree status") {
		t.Fatalf("expected prompt in view")
	}

	press(m, runes("git"), space, runes("statux"), backspace, runes("s"), enter)
	snap := m.ctrl.Snapshot()
	if snap.Feedback == nil || !snap.Feedback.Correct {
		t.Fatalf("expected correct feedback, got %+v", snap.Feedback)
	}

	press(m, enter, runes("git lg"), enter)
	snap = m.ctrl.Snapshot()
	if snap.Feedback == nil || snap.Feedback.Correct {
		t.Fatalf("expected incorrect feedback, got %+v", snap.Feedback)
	}
	if !strings.Contains(m.View(), "Expected: git log") {
		t.Fatalf("expected answer hint in view")
	}

	press(m, runes("s"))
	if m.ctrl.Mode() != app.ModeFinished {
		t.Fatalf("expected finished, got %s", m.ctrl.Mode())
	}
	result, ok := m.Result()
	if !ok {
		t.Fatalf("expected result after finishing")
	}
	if result.Stats.Correct != 1 || result.Stats.Incorrect != 1 {
		t.Fatalf("unexpected result stats: %+v", result.Stats)
	}
	if !strings.Contains(m.View(), "Success rate 50.0%") {
		t.Fatalf("expected success rate in view")
	}

	press(m, enter)
	if m.ctrl.Mode() != app.ModeSelecting {
		t.Fatalf("expected selecting, got %s", m.ctrl.Mode())
	}
}

func TestModelRetryKey(t *testing.T) {
	m := newTestModel()
	press(m, enter, runes("nope"), enter, runes("r"))

	snap := m.ctrl.Snapshot()
	if snap.Feedback != nil || snap.Input != "" {
		t.Fatalf("expected retry to clear feedback and input, got %+v", snap)
	}
	// Without pending feedback "r" is just text.
	press(m, runes("r"))
	if got := m.ctrl.Snapshot().Input; got != "r" {
		t.Fatalf("expected typed r, got %q", got)
	}
}

func TestModelEscReturnsToSelection(t *testing.T) {
	m := newTestModel()
	press(m, enter, runes("k"))
	if got := m.ctrl.Snapshot().Input; got != "k" {
		t.Fatalf("expected k typed as text, got %q", got)
	}
	press(m, esc)
	if m.ctrl.Mode() != app.ModeSelecting {
		t.Fatalf("expected selecting, got %s", m.ctrl.Mode())
	}
}

func TestModelQuitKeys(t *testing.T) {
	m := newTestModel()
	if cmd := press(m, runes("q")); cmd == nil {
		t.Fatalf("expected quit command from selection")
	}
	press(m, enter)
	if cmd := press(m, runes("q")); cmd != nil {
		t.Fatalf("expected q to be typed while drilling")
	}
	if cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Fatalf("expected quit command from ctrl+c")
	}
}

func TestModelDrillingHeaderShowsLanguage(t *testing.T) {
	m := newTestModel()
	press(m, enter)
	if view := m.View(); !strings.Contains(view, "Git basics [en] · 1/2") {
		t.Fatalf("expected header with language tag, got %s", view)
	}
}

func TestModelEmptyCatalogView(t *testing.T) {
	m := NewModel(app.New(stubCatalog{}), "/tmp/dicts")
	press(m, enter, tea.KeyMsg{Type: tea.KeyDown})
	if m.ctrl.Mode() != app.ModeSelecting {
		t.Fatalf("expected selecting, got %s", m.ctrl.Mode())
	}
	view := m.View()
	if !containsAll(view, []string{app.NoticeEmptyCatalog, "/tmp/dicts"}) {
		t.Fatalf("expected empty catalog notice, got %s", view)
	}
}

func TestModelWindowSize(t *testing.T) {
	m := newTestModel()
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 12 {
		t.Fatalf("expected 12 lines, got %d", len(lines))
	}
}

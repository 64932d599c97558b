// Package tui provides the Bubble Tea drill interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tuidrill/internal/app"
	"github.com/verte-zerg/tuidrill/internal/session"
)

// Model implements the Bubble Tea drill UI on top of an app.Controller.
type Model struct {
	ctrl    *app.Controller
	keys    keyMap
	help    help.Model
	dictDir string

	width  int
	height int

	result *app.Finished
}

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	itemStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	promptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	inputStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	warnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAAD14"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	boxStyle       = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
)

const cursorGlyph = "▏"

// NewModel constructs a drill TUI model. dictDir is only used in hints.
func NewModel(ctrl *app.Controller, dictDir string) *Model {
	return &Model{
		ctrl:    ctrl,
		keys:    newKeyMap(),
		help:    help.New(),
		dictDir: dictDir,
	}
}

// Result returns the last finished session, if any.
func (m *Model) Result() (app.Finished, bool) {
	if m.result == nil {
		return app.Finished{}, false
	}
	return *m.result, true
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		ev, ok := m.decode(msg)
		if !ok {
			return m, nil
		}
		if m.ctrl.Dispatch(ev) {
			return m, tea.Quit
		}
		if fin, ok := m.ctrl.State().(*app.Finished); ok {
			result := *fin
			m.result = &result
		}
		return m, nil
	default:
		return m, nil
	}
}

// decode maps a key press onto a controller event for the current mode.
func (m *Model) decode(msg tea.KeyMsg) (app.Event, bool) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return app.Event{Kind: app.EventQuit}, true
	}
	snap := m.ctrl.Snapshot()
	switch snap.Mode {
	case app.ModeSelecting:
		switch {
		case key.Matches(msg, m.keys.Up):
			return app.Event{Kind: app.EventUp}, true
		case key.Matches(msg, m.keys.Down):
			return app.Event{Kind: app.EventDown}, true
		case key.Matches(msg, m.keys.Select):
			return app.Event{Kind: app.EventConfirm}, true
		case key.Matches(msg, m.keys.Quit):
			return app.Event{Kind: app.EventQuit}, true
		}
	case app.ModeDrilling:
		switch {
		case key.Matches(msg, m.keys.Back):
			return app.Event{Kind: app.EventBack}, true
		case key.Matches(msg, m.keys.Submit):
			return app.Event{Kind: app.EventConfirm}, true
		case snap.CanRetry && key.Matches(msg, m.keys.Retry):
			return app.Event{Kind: app.EventRetry}, true
		case snap.CanSkip && key.Matches(msg, m.keys.Skip):
			return app.Event{Kind: app.EventSkip}, true
		case key.Matches(msg, m.keys.Delete):
			return app.Event{Kind: app.EventDelete}, true
		case msg.Type == tea.KeySpace:
			return app.Event{Kind: app.EventType, Runes: []rune{' '}}, true
		case msg.Type == tea.KeyRunes:
			return app.Event{Kind: app.EventType, Runes: msg.Runes}, true
		}
	case app.ModeFinished:
		switch {
		case key.Matches(msg, m.keys.Back):
			return app.Event{Kind: app.EventBack}, true
		case key.Matches(msg, m.keys.Next):
			return app.Event{Kind: app.EventConfirm}, true
		case key.Matches(msg, m.keys.Quit):
			return app.Event{Kind: app.EventQuit}, true
		}
	}
	return app.Event{}, false
}

// View implements tea.Model.
func (m *Model) View() string {
	snap := m.ctrl.Snapshot()
	width := m.contentWidth()
	var content string
	switch snap.Mode {
	case app.ModeSelecting:
		content = m.viewSelecting(snap, width)
	case app.ModeDrilling:
		content = m.viewDrilling(snap, width)
	case app.ModeFinished:
		content = m.viewFinished(snap)
	}
	helpLine := m.help.ShortHelpView(m.keys.helpFor(snap))
	if m.width == 0 || m.height == 0 {
		return content + "\n\n" + helpLine
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, helpLine)
	return body + "\n" + footerLine
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 0
	}
	w := int(float64(m.width) * 0.70)
	if w < 1 {
		w = 1
	}
	return w
}

func (m *Model) viewSelecting(snap app.Snapshot, width int) string {
	lines := []string{titleStyle.Render("Select a dictionary"), ""}
	if snap.Notice != "" {
		lines = append(lines, warnStyle.Render(snap.Notice))
		if len(snap.Entries) == 0 && m.dictDir != "" {
			lines = append(lines, mutedStyle.Render(fmt.Sprintf("Add *.toml files to %s", m.dictDir)))
		}
		lines = append(lines, "")
	}
	for i, name := range snap.Entries {
		if width > 2 {
			name = runewidth.Truncate(name, width-2, "…")
		}
		if i == snap.Selected {
			lines = append(lines, selectedStyle.Render("> "+name))
			continue
		}
		lines = append(lines, itemStyle.Render("  "+name))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewDrilling(snap app.Snapshot, width int) string {
	name := snap.SetName
	if snap.Language != "" {
		name += " [" + snap.Language + "]"
	}
	header := fmt.Sprintf("%s · %d/%d", name, snap.Stats.Position+1, snap.Stats.Total)
	promptWidth := width
	if promptWidth > 4 {
		promptWidth -= 4
	}
	prompt := strings.Join(wrapText(snap.Prompt, promptWidth), "\n")

	lines := []string{
		headerStyle.Render(header),
		"",
		boxStyle.Render(promptStyle.Render(prompt)),
		"",
	}
	if snap.Feedback == nil {
		lines = append(lines, inputStyle.Render("> "+snap.Input+cursorGlyph))
	} else {
		lines = append(lines, mutedStyle.Render("> "+snap.Input))
		style := incorrectStyle
		if snap.Feedback.Correct {
			style = correctStyle
		}
		lines = append(lines, "", style.Render(snap.Feedback.Message))
	}
	lines = append(lines, "", renderFooter(snap.Stats))
	return strings.Join(lines, "\n")
}

func (m *Model) viewFinished(snap app.Snapshot) string {
	st := snap.Stats
	rate := fmt.Sprintf("Success rate %.1f%%", st.SuccessRate)
	lines := []string{
		titleStyle.Render("Session complete"),
		headerStyle.Render(snap.SetName),
		"",
		fmt.Sprintf("Answered %d/%d", st.Answered(), st.Total),
		fmt.Sprintf("Correct %d · Incorrect %d", st.Correct, st.Incorrect),
		fmt.Sprintf("Best streak %d", st.BestStreak),
		rateStyle(st.SuccessRate).Render(rate),
	}
	return strings.Join(lines, "\n")
}

func rateStyle(rate float64) lipgloss.Style {
	switch {
	case rate >= 80:
		return correctStyle
	case rate >= 60:
		return warnStyle
	default:
		return incorrectStyle
	}
}

func renderFooter(st session.Stats) string {
	if st.Total == 0 {
		return ""
	}
	segments := []string{
		fmt.Sprintf("Correct %d", st.Correct),
		fmt.Sprintf("Incorrect %d", st.Incorrect),
		fmt.Sprintf("Streak %d", st.Streak),
		fmt.Sprintf("Success %.1f%%", st.SuccessRate),
	}
	return footerStyle.Render(strings.Join(segments, " · "))
}

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/larder/internal/i18n"
)

func (m Model) handleActivityKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.activity.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.activity.ScrollDown(1)
	case key.Matches(msg, m.keys.Top):
		m.activity.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.activity.GotoBottom()
	case key.Matches(msg, m.keys.PrevPage):
		m.activity.PageUp()
	case key.Matches(msg, m.keys.NextPage):
		m.activity.PageDown()
	}
	return m, nil
}

// updateActivityViewport refreshes the log content, following the tail while
// the view is already at the bottom.
func (m *Model) updateActivityViewport() {
	if !m.ready {
		return
	}
	follow := m.activity.AtBottom() || m.activity.TotalLineCount() == 0
	m.activity.SetContent(m.formatActivity())
	if follow {
		m.activity.GotoBottom()
	}
}

func (m Model) formatActivity() string {
	styles := m.theme.Styles()
	if m.activityErr != nil {
		return styles.DangerText.Render(m.activityErr.Error())
	}
	if strings.TrimSpace(m.logPath) == "" || len(m.activityEntries) == 0 {
		return styles.FaintText.Render("No activity yet")
	}

	width := m.width - 4
	lines := make([]string, 0, len(m.activityEntries))
	for _, e := range m.activityEntries {
		line := truncate(e.Format(), width)
		switch {
		case !e.Structured:
			line = styles.FaintText.Render(line)
		case e.IsProblem():
			if strings.EqualFold(e.Level, "warn") {
				line = styles.WarningText.Render(line)
			} else {
				line = styles.DangerText.Render(line)
			}
		default:
			line = styles.Text.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// renderActivity renders the log tail.
func (m Model) renderActivity() string {
	title := m.locale.T(i18n.KeyActivity)
	if m.logPath != "" {
		title += " · " + truncate(m.logPath, 40)
	}
	return m.renderTitledBox(title, m.activity.View(), m.width, m.contentHeight(), true)
}

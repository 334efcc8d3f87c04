package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BgStyle renders segments on a fixed background. Lipgloss resets the
// background after every styled segment, which leaves gaps between words; see
// https://github.com/charmbracelet/lipgloss/discussions/78.
type BgStyle struct {
	bg    lipgloss.Color
	space string
}

// NewBgStyle creates a background helper for bgColor.
func NewBgStyle(bgColor string) BgStyle {
	bg := lipgloss.Color(bgColor)
	return BgStyle{bg: bg, space: lipgloss.NewStyle().Background(bg).Render(" ")}
}

// Render styles text word by word so the spaces keep the background too.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	styled := style.Background(b.bg)
	if !strings.Contains(text, " ") {
		return styled.Render(text)
	}
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = styled.Render(w)
		}
	}
	return strings.Join(words, b.space)
}

// Space returns one styled space.
func (b BgStyle) Space() string {
	return b.space
}

// Spaces returns n styled spaces.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Background(b.bg).Render(strings.Repeat(" ", n))
}

// Join joins already rendered parts with a styled separator.
func (b BgStyle) Join(parts []string, sep string) string {
	return strings.Join(parts, lipgloss.NewStyle().Background(b.bg).Render(sep))
}

// FillLine pads rendered content to width on the background.
func (b BgStyle) FillLine(content string, width int) string {
	return lipgloss.NewStyle().Background(b.bg).Width(width).Render(content)
}

// renderTitledBox draws content inside a ┌─ Title ─┐ frame of the given
// outer size. Focused boxes use the focus border and background.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColor, bgColor := m.theme.Border, m.theme.SurfaceAlt
	if focused {
		borderColor, bgColor = m.theme.BorderFocus, m.theme.FocusBg
	}
	if width < 4 {
		width = 4
	}
	if height < 2 {
		height = 2
	}
	bg := NewBgStyle(bgColor)
	border := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColor))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	inner := width - 2
	title = truncate(title, inner-4)
	titleWidth := lipgloss.Width(title)
	left := (inner - titleWidth - 2) / 2
	right := inner - titleWidth - 2 - left
	if left < 0 {
		left = 0
	}
	if right < 0 {
		right = 0
	}

	top := bg.Render("┌"+strings.Repeat("─", left), border) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", right)+"┐", border)
	bottom := bg.Render("└"+strings.Repeat("─", inner)+"┘", border)

	body := lipgloss.NewStyle().Width(inner).MaxWidth(inner).Background(lipgloss.Color(bgColor))
	lines := strings.Split(content, "\n")
	rows := make([]string, 0, height-2)
	for i := 0; i < height-2; i++ {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		rows = append(rows, bg.Render("│", border)+body.Render(line)+bg.Render("│", border))
	}
	return top + "\n" + strings.Join(rows, "\n") + "\n" + bottom
}

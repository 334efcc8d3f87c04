package ui

import (
	"strings"

	"github.com/five82/larder/internal/i18n"
)

// renderHeader renders the status bar: logo, counts, load state and locale.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	products := m.console.Products.Snapshot()
	berries := m.console.Berries.Snapshot()

	parts := []string{bg.Render(strings.ToLower(m.locale.T(i18n.KeyTitle)), styles.Logo)}

	for _, v := range viewOrder {
		label := m.viewLabel(v)
		if v == m.currentView {
			parts = append(parts, bg.Render("["+label+"]", styles.AccentText.Bold(true)))
		} else {
			parts = append(parts, bg.Render(label, styles.MutedText))
		}
	}

	parts = append(parts,
		bg.Render(m.locale.T(i18n.KeyProducts)+":", styles.MutedText)+bg.Space()+
			bg.Render(m.locale.Number(len(products.Products)), styles.Text),
		bg.Render(m.locale.T(i18n.KeyBerries)+":", styles.MutedText)+bg.Space()+
			bg.Render(m.locale.Number(len(berries.Berries)), styles.Text),
	)

	if products.Loading || berries.Loading {
		parts = append(parts, bg.Render("● "+m.locale.T(i18n.KeyLoading), styles.WarningText.Bold(true)))
	}

	maxErr := 60
	if compact {
		maxErr = 30
	}
	if msg := products.ErrorMessage(); msg != "" {
		parts = append(parts,
			bg.Render("ERROR", styles.DangerText)+bg.Space()+
				bg.Render(truncate(msg, maxErr), styles.DangerText))
	} else if berries.IsOffline() {
		parts = append(parts,
			bg.Render("OFFLINE", styles.DangerText)+bg.Space()+
				bg.Render(truncate(berries.LastError.Error(), maxErr), styles.DangerText))
	}

	if !compact && !berries.LastUpdated.IsZero() {
		parts = append(parts, bg.Render(berries.LastUpdated.Format("15:04:05"), styles.FaintText))
	}

	parts = append(parts, bg.Render(strings.ToUpper(m.locale.Code()), styles.InfoText))

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

func (m Model) viewLabel(v View) string {
	switch v {
	case ViewBerries:
		return m.locale.T(i18n.KeyBerries)
	case ViewActivity:
		return m.locale.T(i18n.KeyActivity)
	default:
		return m.locale.T(i18n.KeyProducts)
	}
}

// renderCommandBar renders the command hints for the current view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch {
	case m.searching:
		commands = []cmd{
			{"enter", "Apply"},
			{"esc", "Clear"},
		}
	case m.currentView == ViewProducts:
		commands = []cmd{
			{"/", "Search"},
			{"a", "Add"},
			{"e", "Edit"},
			{"x", "Delete"},
			{"[ ]", "Page"},
			{"s", "Size"},
			{"o", "Sort"},
			{"R", "Reset"},
			{"?", "More"},
		}
	case m.currentView == ViewBerries:
		commands = []cmd{
			{"/", "Search"},
			{"enter", "Detail"},
			{"[ ]", "Page"},
			{"s", "Size"},
			{"o", "Sort"},
			{"R", "Reset"},
			{"?", "More"},
		}
	default:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"g/G", "Top/Bottom"},
			{"p", "Products"},
			{"b", "Berries"},
			{"?", "More"},
		}
	}

	colon := bg.Render(":", styles.FaintText)
	segments := make([]string, 0, len(commands)+3)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	if view := m.activeView(); view != nil {
		if search := view.State().Search; search != "" && !m.searching {
			segments = append(segments, bg.Render("/"+truncate(search, 18), styles.AccentText))
		}
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText),
		bg.Render("L", styles.AccentText)+colon+bg.Render(m.localeName(), styles.FaintText))

	return styles.Header.Width(m.width).Render(bg.Join(segments, "  "))
}

// renderStatusLine shows the search input while searching, otherwise the
// last flash message.
func (m Model) renderStatusLine() string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := NewBgStyle(m.theme.Background)

	var content string
	switch {
	case m.searching:
		content = m.searchInput.View()
	case m.status != "":
		style := styles.SuccessText
		if m.statusError {
			style = styles.DangerText
		}
		content = bg.Render(m.status, style)
	}
	return bg.FillLine(content, m.width)
}

func (m Model) localeName() string {
	if m.locale.Code() == "id" {
		return m.locale.T(i18n.KeyIndonesia)
	}
	return m.locale.T(i18n.KeyEnglish)
}

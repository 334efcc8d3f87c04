package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/larder/internal/catalog"
	"github.com/five82/larder/internal/console"
	"github.com/five82/larder/internal/i18n"
	"github.com/five82/larder/internal/listview"
	"github.com/five82/larder/internal/remote"
	"github.com/five82/larder/internal/viewstate"
)

// column describes one table column. Width 0 takes the remaining space.
type column struct {
	title string
	width int
	right bool
}

// activeView returns the view state behind the current list, or nil.
func (m Model) activeView() *console.View {
	switch m.currentView {
	case ViewProducts:
		return m.console.ProductView
	case ViewBerries:
		return m.console.BerryView
	default:
		return nil
	}
}

func (m Model) selectedProduct() (catalog.Product, bool) {
	page := m.console.ProductPage(m.locale.Tag())
	if m.productRow < 0 || m.productRow >= len(page.Rows) {
		return catalog.Product{}, false
	}
	return page.Rows[m.productRow], true
}

func (m Model) selectedBerry() (remote.BerryRef, bool) {
	page := m.console.BerryPage(m.locale.Tag())
	if m.berryRow < 0 || m.berryRow >= len(page.Rows) {
		return remote.BerryRef{}, false
	}
	return page.Rows[m.berryRow], true
}

// handleListKey covers the keys both lists share. It reports whether the key
// was consumed.
func (m *Model) handleListKey(msg tea.KeyMsg, row *int, rows, totalPages int) (tea.Cmd, bool) {
	view := m.activeView()
	switch {
	case key.Matches(msg, m.keys.Up):
		if *row > 0 {
			*row--
		}
	case key.Matches(msg, m.keys.Down):
		if *row < rows-1 {
			*row++
		}
	case key.Matches(msg, m.keys.Top):
		*row = 0
	case key.Matches(msg, m.keys.Bottom):
		*row = clampRow(rows-1, rows)
	case key.Matches(msg, m.keys.NextPage):
		if view.Next(m.ctx, totalPages) {
			*row = 0
		}
	case key.Matches(msg, m.keys.PrevPage):
		if view.Prev(m.ctx) {
			*row = 0
		}
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.SetValue(view.State().Search)
		m.searchInput.CursorEnd()
		m.searchInput.Placeholder = m.locale.T(i18n.KeySearch)
		return tea.Batch(m.searchInput.Focus(), textinput.Blink), true
	case key.Matches(msg, m.keys.PageSize):
		view.CyclePageSize(m.ctx)
		*row = 0
	case key.Matches(msg, m.keys.SortOrder):
		view.ToggleSortOrder(m.ctx)
	case key.Matches(msg, m.keys.Reset):
		view.Reset(m.ctx)
		*row = 0
		m.setStatus(m.locale.T(i18n.KeyReset), false)
	default:
		return nil, false
	}
	m.revision = m.console.Revision()
	return nil, true
}

func (m Model) handleProductsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	page := m.console.ProductPage(m.locale.Tag())
	if cmd, ok := m.handleListKey(msg, &m.productRow, len(page.Rows), page.TotalPages); ok {
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Add):
		m.modal = newProductForm(m.ctx, m.console, m.locale, nil)
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Edit):
		if p, ok := m.selectedProduct(); ok {
			m.modal = newProductForm(m.ctx, m.console, m.locale, &p)
			return m, textinput.Blink
		}
	case key.Matches(msg, m.keys.Delete):
		if p, ok := m.selectedProduct(); ok {
			m.modal = newConfirmDelete(m.ctx, m.console, m.locale, p)
		}
	}
	return m, nil
}

func (m Model) handleBerriesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	page := m.console.BerryPage(m.locale.Tag())
	if cmd, ok := m.handleListKey(msg, &m.berryRow, len(page.Rows), page.TotalPages); ok {
		return m, cmd
	}

	if key.Matches(msg, m.keys.Confirm) {
		if b, ok := m.selectedBerry(); ok {
			m.modal = newBerryDetail(m.ctx, m.console, m.locale, b.Name)
		}
	}
	return m, nil
}

// handleSearchKey edits the search line. The filter follows every keystroke.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.activeView()
	switch msg.String() {
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		if view != nil {
			view.SetSearch(m.ctx, "")
		}
		m.resetRow()
		return m, nil
	}

	var cmd tea.Cmd
	before := m.searchInput.Value()
	m.searchInput, cmd = m.searchInput.Update(msg)
	if after := m.searchInput.Value(); after != before && view != nil {
		view.SetSearch(m.ctx, after)
		m.resetRow()
	}
	return m, cmd
}

func (m *Model) resetRow() {
	switch m.currentView {
	case ViewProducts:
		m.productRow = 0
	case ViewBerries:
		m.berryRow = 0
	}
	m.revision = m.console.Revision()
}

// renderProducts renders the product table.
func (m Model) renderProducts() string {
	page := m.console.ProductPage(m.locale.Tag())
	snap := m.console.Products.Snapshot()
	styles := m.theme.Styles()

	cols := []column{
		{title: m.locale.T(i18n.KeyNo), width: 5, right: true},
		{title: m.locale.T(i18n.KeyProductName)},
		{title: m.locale.T(i18n.KeyPrice), width: 10, right: true},
		{title: m.locale.T(i18n.KeyCategory), width: 18},
	}
	wide := m.width >= LayoutWideWidth
	if wide {
		cols = append(cols, column{title: m.locale.T(i18n.KeyRatingRate), width: 12, right: true})
	}

	rows := make([][]string, 0, len(page.Rows))
	for i, p := range page.Rows {
		row := []string{
			fmt.Sprintf("%d", page.RangeStart+i),
			p.Title,
			formatPrice(p.Price),
			p.Category,
		}
		if wide {
			row = append(row, fmt.Sprintf("%.1f (%d)", p.Rating.Rate, p.Rating.Count))
		}
		rows = append(rows, row)
	}

	empty := m.locale.T(i18n.KeyNoData)
	if snap.Loading && len(snap.Products) == 0 {
		empty = m.locale.T(i18n.KeyLoading)
	} else if msg := snap.ErrorMessage(); msg != "" && len(snap.Products) == 0 {
		empty = styles.DangerText.Render(m.locale.T(i18n.KeyLoadFailed, msg))
	}

	body := m.renderTable(cols, rows, m.productRow, empty, func(row, col int) (lipgloss.Style, bool) {
		if col == 3 && row < len(page.Rows) {
			return styles.BadgeStyle(page.Rows[row].Category), true
		}
		return lipgloss.Style{}, false
	})
	footer := m.renderFooter(page.TotalFiltered, page.TotalPages, page.RangeStart, page.RangeEnd, page.HasRange(), m.console.ProductView.State())
	return m.renderTitledBox(m.locale.T(i18n.KeyProducts), body+"\n"+footer, m.width, m.contentHeight(), true)
}

// renderBerries renders the berry table.
func (m Model) renderBerries() string {
	page := m.console.BerryPage(m.locale.Tag())
	snap := m.console.Berries.Snapshot()
	styles := m.theme.Styles()

	cols := []column{
		{title: m.locale.T(i18n.KeyNo), width: 5, right: true},
		{title: m.locale.T(i18n.KeyName)},
		{title: m.locale.T(i18n.KeyBerryID), width: 6, right: true},
	}
	rows := make([][]string, 0, len(page.Rows))
	for i, b := range page.Rows {
		id := ""
		if n := b.ID(); n > 0 {
			id = fmt.Sprintf("%d", n)
		}
		rows = append(rows, []string{fmt.Sprintf("%d", page.RangeStart+i), titleCase(b.Name), id})
	}

	empty := m.locale.T(i18n.KeyNoData)
	if snap.Loading {
		empty = m.locale.T(i18n.KeyLoading)
	} else if snap.LastError != nil && len(snap.Berries) == 0 {
		empty = styles.DangerText.Render(m.locale.T(i18n.KeyLoadFailed, shortError(snap.LastError)))
	}

	body := m.renderTable(cols, rows, m.berryRow, empty, nil)
	footer := m.renderFooter(page.TotalFiltered, page.TotalPages, page.RangeStart, page.RangeEnd, page.HasRange(), m.console.BerryView.State())
	return m.renderTitledBox(m.locale.T(i18n.KeyBerries), body+"\n"+footer, m.width, m.contentHeight(), true)
}

// renderTable lays out a header row and the visible slice of rows. cell may
// override the style of individual cells.
func (m Model) renderTable(cols []column, rows [][]string, selected int, empty string, cell func(row, col int) (lipgloss.Style, bool)) string {
	styles := m.theme.Styles()
	inner := m.width - 4
	widths := columnWidths(cols, inner)

	var b strings.Builder
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = alignCell(c.title, widths[i], c.right)
	}
	b.WriteString(styles.MutedText.Bold(true).Render(strings.Join(header, " ")))
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString(styles.FaintText.Render(empty))
		return b.String()
	}

	// header, footer and the box frame
	visible := m.contentHeight() - 5
	if visible < 1 {
		visible = 1
	}
	start := scrollStart(selected, len(rows), visible)
	end := min(start+visible, len(rows))

	lines := make([]string, 0, end-start)
	for r := start; r < end; r++ {
		cells := make([]string, len(cols))
		for c, col := range cols {
			text := ""
			if c < len(rows[r]) {
				text = rows[r][c]
			}
			if r != selected && cell != nil {
				if st, ok := cell(r, c); ok && text != "" {
					// badge padding takes two cells
					cells[c] = padRight(st.Render(truncate(text, widths[c]-2)), widths[c])
					continue
				}
			}
			cells[c] = alignCell(text, widths[c], col.right)
		}
		line := strings.Join(cells, " ")
		if r == selected {
			line = styles.Selected.Width(inner).Render(line)
		} else {
			line = styles.Text.Render(line)
		}
		lines = append(lines, line)
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

// renderFooter renders "Showing X to Y of Z results" plus page, size and sort.
func (m Model) renderFooter(total, totalPages, from, to int, hasRange bool, st viewstate.State) string {
	styles := m.theme.Styles()
	var parts []string
	if hasRange {
		parts = append(parts, styles.Text.Render(m.locale.T(i18n.KeyShowing, from, to, total)))
	} else {
		parts = append(parts, styles.FaintText.Render(m.locale.T(i18n.KeyNoData)))
	}
	if totalPages > 0 {
		prev, next := "‹", "›"
		prevStyle, nextStyle := styles.FaintText, styles.FaintText
		if listview.CanPrev(st.Page) {
			prevStyle = styles.AccentText
		}
		if listview.CanNext(st.Page, totalPages) {
			nextStyle = styles.AccentText
		}
		parts = append(parts, prevStyle.Render(prev)+" "+
			styles.MutedText.Render(m.locale.T(i18n.KeyPageOf, st.Page, totalPages))+" "+
			nextStyle.Render(next))
	}
	parts = append(parts,
		styles.MutedText.Render(m.locale.T(i18n.KeyItemsPerPage)+": ")+styles.Text.Render(fmt.Sprintf("%d", st.PageSize)))
	sort := m.locale.T(i18n.KeySortAsc)
	if st.Descending() {
		sort = m.locale.T(i18n.KeySortDesc)
	}
	parts = append(parts, styles.InfoText.Render(sort))
	return strings.Join(parts, styles.FaintText.Render("  •  "))
}

func columnWidths(cols []column, total int) []int {
	widths := make([]int, len(cols))
	fixed := len(cols) - 1 // separators
	flex := -1
	for i, c := range cols {
		if c.width == 0 {
			flex = i
			continue
		}
		widths[i] = c.width
		fixed += c.width
	}
	if flex >= 0 {
		widths[flex] = max(8, total-fixed)
	}
	return widths
}

func alignCell(text string, width int, right bool) string {
	if right {
		return padLeft(truncate(text, width), width)
	}
	return fit(text, width)
}

// scrollStart returns the first visible row so that selected stays in view.
func scrollStart(selected, count, visible int) int {
	if count <= visible || selected < visible {
		return 0
	}
	start := selected - visible + 1
	if start > count-visible {
		start = count - visible
	}
	return start
}

func formatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

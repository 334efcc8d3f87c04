package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the console.
type keyMap struct {
	// Global
	Quit        key.Binding
	Help        key.Binding
	CycleTheme  key.Binding
	ToggleLang  key.Binding
	Tab         key.Binding
	ShiftTab    key.Binding
	Escape      key.Binding
	ViewProduct key.Binding
	ViewBerry   key.Binding
	ViewLog     key.Binding

	// Rows and pages
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	NextPage key.Binding
	PrevPage key.Binding

	// List view state
	Search    key.Binding
	PageSize  key.Binding
	SortOrder key.Binding
	Reset     key.Binding

	// Products
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding

	// Modals
	Confirm key.Binding
	Yes     key.Binding
	No      key.Binding
	Left    key.Binding
	Right   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "Quit")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "Toggle help")),
		CycleTheme:  key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "Cycle theme")),
		ToggleLang:  key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "Switch language")),
		Tab:         key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "Next view")),
		ShiftTab:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "Previous view")),
		Escape:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "Close / cancel")),
		ViewProduct: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "Products")),
		ViewBerry:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "Berries")),
		ViewLog:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "Activity log")),

		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/up", "Move up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/down", "Move down")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "First row")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "Last row")),
		NextPage: key.NewBinding(key.WithKeys("]", "right", "pgdown"), key.WithHelp("]", "Next page")),
		PrevPage: key.NewBinding(key.WithKeys("[", "left", "pgup"), key.WithHelp("[", "Previous page")),

		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "Search")),
		PageSize:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "Page size")),
		SortOrder: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "Sort order")),
		Reset:     key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "Reset filters")),

		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "Add product")),
		Edit:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e/enter", "Edit product")),
		Delete: key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "Delete product")),

		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "Confirm")),
		Yes:     key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "Yes")),
		No:      key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "No")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("left", "Previous")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("right", "Next")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ViewProduct, k.ViewBerry, k.ViewLog, k.Escape},
		{k.Up, k.Down, k.Top, k.Bottom, k.NextPage, k.PrevPage},
		{k.Search, k.PageSize, k.SortOrder, k.Reset},
		{k.Add, k.Edit, k.Delete},
		{k.CycleTheme, k.ToggleLang, k.Help, k.Quit},
	}
}

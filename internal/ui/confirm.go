package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/larder/internal/catalog"
	"github.com/five82/larder/internal/console"
	"github.com/five82/larder/internal/i18n"
)

// confirmDelete asks before a product is removed.
type confirmDelete struct {
	ctx     context.Context
	console *console.Console
	locale  i18n.Locale
	product catalog.Product
}

func newConfirmDelete(ctx context.Context, c *console.Console, locale i18n.Locale, p catalog.Product) *confirmDelete {
	return &confirmDelete{ctx: ctx, console: c, locale: locale, product: p}
}

func (d *confirmDelete) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil, false
	}
	switch {
	case key.Matches(keyMsg, keys.Yes):
		d.console.DeleteProduct(d.ctx, d.product.ID)
		return d, statusCmd(d.locale.T(i18n.KeyDeleted, d.product.Title), false), true
	case key.Matches(keyMsg, keys.No):
		return d, nil, true
	}
	return d, nil, false
}

func (d *confirmDelete) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	body := styles.WarningText.Bold(true).Render(d.locale.T(i18n.KeyConfirmDelete, d.product.Title))
	return placeModal(theme, width, height, 56, body)
}

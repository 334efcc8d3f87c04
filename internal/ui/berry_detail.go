package ui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/larder/internal/console"
	"github.com/five82/larder/internal/i18n"
	"github.com/five82/larder/internal/remote"
)

// berryDetail shows one berry with a selector over the filtered names. The
// lookup only runs on enter; closing discards whatever was fetched.
type berryDetail struct {
	ctx     context.Context
	console *console.Console
	locale  i18n.Locale
	names   []string
	index   int
}

func newBerryDetail(ctx context.Context, c *console.Console, locale i18n.Locale, name string) *berryDetail {
	names := c.BerryNames(locale.Tag())
	idx := slices.Index(names, name)
	if idx < 0 {
		names = append([]string{name}, names...)
		idx = 0
	}
	c.OpenBerryDetail(name)
	return &berryDetail{ctx: ctx, console: c, locale: locale, names: names, index: idx}
}

func (d *berryDetail) selected() string {
	if d.index < 0 || d.index >= len(d.names) {
		return ""
	}
	return d.names[d.index]
}

func (d *berryDetail) move(delta int) {
	if len(d.names) == 0 {
		return
	}
	d.index = (d.index + delta + len(d.names)) % len(d.names)
	d.console.Berries.Select(d.selected())
}

func (d *berryDetail) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil, false
	}
	switch {
	case key.Matches(keyMsg, keys.Escape), key.Matches(keyMsg, keys.Quit):
		d.console.CloseBerryDetail()
		return d, nil, true
	case key.Matches(keyMsg, keys.Left):
		d.move(-1)
	case key.Matches(keyMsg, keys.Right):
		d.move(1)
	case key.Matches(keyMsg, keys.Confirm):
		if name := d.selected(); name != "" {
			return d, lookupBerryCmd(d.ctx, d.console, name), false
		}
	}
	return d, nil, false
}

func (d *berryDetail) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	detail := d.console.Berries.Detail()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(d.locale.T(i18n.KeyBerryDetail)))
	b.WriteString("\n\n")

	selector := styles.FaintText.Render("‹ ") +
		styles.Selected.Render(" "+titleCase(d.selected())+" ") +
		styles.FaintText.Render(" ›")
	if len(d.names) > 1 {
		selector += styles.FaintText.Render(fmt.Sprintf("  %d/%d", d.index+1, len(d.names)))
	}
	b.WriteString(selector + "   " + styles.AccentText.Render("enter: "+d.locale.T(i18n.KeyGo)))
	b.WriteString("\n\n")

	switch {
	case detail.Loading:
		b.WriteString(styles.WarningText.Render(d.locale.T(i18n.KeyLoading)))
	case detail.Err != nil && errors.Is(detail.Err, remote.ErrNotFound):
		b.WriteString(styles.WarningText.Render(d.locale.T(i18n.KeyBerryNotFound, detail.Name)))
	case detail.Err != nil:
		b.WriteString(styles.DangerText.Render(d.locale.T(i18n.KeyLoadFailed, shortError(detail.Err))))
	case detail.Found():
		b.WriteString(d.renderDetail(styles, *detail.Berry))
	default:
		b.WriteString(styles.FaintText.Render(d.locale.T(i18n.KeySelectBerry)))
	}

	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render(d.locale.T(i18n.KeyDetailHint, strings.ToLower(d.locale.T(i18n.KeyGo)))))
	return placeModal(theme, width, height, 64, b.String())
}

func (d *berryDetail) renderDetail(styles Styles, berry remote.BerryDetail) string {
	labelWidth := 20
	row := func(labelKey string, value string) string {
		return styles.MutedText.Render(padRight(d.locale.T(labelKey), labelWidth)) + styles.Text.Render(value)
	}
	section := func(title string) string {
		return styles.InfoText.Bold(true).Render(title)
	}

	lines := []string{
		row(i18n.KeyBerryName, titleCase(berry.Name)) + styles.FaintText.Render(fmt.Sprintf("  #%d", berry.ID)),
		"",
		section(d.locale.T(i18n.KeyGrowth)),
		row(i18n.KeyGrowthTime, fmt.Sprintf("%d h", berry.GrowthTime)),
		row(i18n.KeyMaxHarvest, d.locale.Number(berry.MaxHarvest)),
		row(i18n.KeySoilDryness, d.locale.Number(berry.SoilDryness)),
		"",
		section(d.locale.T(i18n.KeyPhysical)),
		row(i18n.KeySize, fmt.Sprintf("%s mm", d.locale.Number(berry.Size))),
		row(i18n.KeySmoothness, d.locale.Number(berry.Smoothness)),
		row(i18n.KeyFirmness, orDash(titleCase(berry.FirmnessName()))),
		row(i18n.KeyNaturalGiftPower, fmt.Sprintf("%d %s", berry.NaturalGiftPower, titleCase(berry.GiftTypeName()))),
		"",
		section(d.locale.T(i18n.KeyFlavors)),
	}

	flavors := berry.StrongFlavors()
	if len(flavors) == 0 {
		lines = append(lines, styles.FaintText.Render("-"))
	}
	for _, f := range flavors {
		bar := strings.Repeat("■", min(f.Potency/5, 10))
		lines = append(lines,
			styles.MutedText.Render(padRight(titleCase(f.Flavor.Name), labelWidth))+
				styles.BadgeStyle(f.Flavor.Name).Render(bar)+
				styles.Text.Render(fmt.Sprintf(" %d", f.Potency)))
	}
	return strings.Join(lines, "\n")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

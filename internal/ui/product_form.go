package ui

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/larder/internal/catalog"
	"github.com/five82/larder/internal/console"
	"github.com/five82/larder/internal/i18n"
)

// formField binds one text input to a product field.
type formField struct {
	name    string // catalog.Field* key
	label   string
	numeric bool
}

func productFormFields(locale i18n.Locale) []formField {
	return []formField{
		{name: catalog.FieldTitle, label: locale.T(i18n.KeyProductName)},
		{name: catalog.FieldPrice, label: locale.T(i18n.KeyPrice), numeric: true},
		{name: catalog.FieldDescription, label: locale.T(i18n.KeyDescription)},
		{name: catalog.FieldCategory, label: locale.T(i18n.KeyCategory)},
		{name: catalog.FieldImage, label: locale.T(i18n.KeyImage)},
		{name: catalog.FieldRatingRate, label: locale.T(i18n.KeyRatingRate), numeric: true},
		{name: catalog.FieldRatingCount, label: locale.T(i18n.KeyRatingCount), numeric: true},
	}
}

// productForm is the add/edit modal.
type productForm struct {
	ctx     context.Context
	console *console.Console
	locale  i18n.Locale

	editing *catalog.Product
	fields  []formField
	inputs  []textinput.Model
	focus   int
	errs    *catalog.ValidationError
	failure string
}

func newProductForm(ctx context.Context, c *console.Console, locale i18n.Locale, existing *catalog.Product) *productForm {
	f := &productForm{
		ctx:     ctx,
		console: c,
		locale:  locale,
		editing: existing,
		fields:  productFormFields(locale),
	}
	values := map[string]string{}
	if existing != nil {
		values = productValues(*existing)
	}
	f.inputs = make([]textinput.Model, len(f.fields))
	for i, field := range f.fields {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 256
		in.Placeholder = field.label
		in.SetValue(values[field.name])
		f.inputs[i] = in
	}
	f.inputs[0].Focus()
	return f
}

// productValues renders a product into form values.
func productValues(p catalog.Product) map[string]string {
	return map[string]string{
		catalog.FieldTitle:       p.Title,
		catalog.FieldPrice:       strconv.FormatFloat(p.Price, 'f', -1, 64),
		catalog.FieldDescription: p.Description,
		catalog.FieldCategory:    p.Category,
		catalog.FieldImage:       p.Image,
		catalog.FieldRatingRate:  strconv.FormatFloat(p.Rating.Rate, 'f', -1, 64),
		catalog.FieldRatingCount: strconv.Itoa(p.Rating.Count),
	}
}

// parseProductForm converts raw form values into a product. Numeric fields
// that do not parse are reported with notNumber; everything else goes through
// catalog.Validate.
func parseProductForm(values map[string]string, notNumber string) (catalog.Product, error) {
	verr := &catalog.ValidationError{}
	number := func(field string) float64 {
		raw := strings.TrimSpace(values[field])
		if raw == "" {
			return 0
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			verr.Add(field, notNumber)
			return 0
		}
		return v
	}

	p := catalog.Product{
		Title:       strings.TrimSpace(values[catalog.FieldTitle]),
		Price:       number(catalog.FieldPrice),
		Description: strings.TrimSpace(values[catalog.FieldDescription]),
		Category:    strings.TrimSpace(values[catalog.FieldCategory]),
		Image:       strings.TrimSpace(values[catalog.FieldImage]),
	}
	p.Rating.Rate = number(catalog.FieldRatingRate)

	rawCount := strings.TrimSpace(values[catalog.FieldRatingCount])
	if rawCount != "" {
		count, err := strconv.Atoi(rawCount)
		if err != nil {
			verr.Add(catalog.FieldRatingCount, notNumber)
		}
		p.Rating.Count = count
	}

	var rangeErr *catalog.ValidationError
	if err := catalog.Validate(p); errors.As(err, &rangeErr) {
		for field, msg := range rangeErr.Fields {
			verr.Add(field, msg)
		}
	}
	if len(verr.Fields) > 0 {
		return catalog.Product{}, verr
	}
	return p, nil
}

func (f *productForm) values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for i, field := range f.fields {
		out[field.name] = f.inputs[i].Value()
	}
	return out
}

func (f *productForm) setFocus(idx int) tea.Cmd {
	n := len(f.inputs)
	idx = (idx%n + n) % n
	f.inputs[f.focus].Blur()
	f.focus = idx
	return f.inputs[idx].Focus()
}

func (f *productForm) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		return f, cmd, false
	}

	switch {
	case key.Matches(keyMsg, keys.Escape):
		return f, nil, true
	case keyMsg.String() == "ctrl+s":
		return f.submit()
	case key.Matches(keyMsg, keys.Tab), keyMsg.String() == "down":
		return f, f.setFocus(f.focus + 1), false
	case key.Matches(keyMsg, keys.ShiftTab), keyMsg.String() == "up":
		return f, f.setFocus(f.focus - 1), false
	case key.Matches(keyMsg, keys.Confirm):
		if f.focus == len(f.inputs)-1 {
			return f.submit()
		}
		return f, f.setFocus(f.focus + 1), false
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd, false
}

func (f *productForm) submit() (Modal, tea.Cmd, bool) {
	p, err := parseProductForm(f.values(), f.locale.T(i18n.KeyMustBeNumber))
	if err != nil {
		f.errs = asValidation(err)
		f.failure = ""
		return f, f.focusFirstError(), false
	}

	if f.editing == nil {
		created, err := f.console.CreateProduct(f.ctx, p)
		if err != nil {
			return f.fail(err)
		}
		return f, statusCmd(f.locale.T(i18n.KeyCreated, created.Title), false), true
	}
	if err := f.console.UpdateProduct(f.ctx, f.editing.ID, p); err != nil {
		return f.fail(err)
	}
	return f, statusCmd(f.locale.T(i18n.KeySaved, p.Title), false), true
}

func (f *productForm) fail(err error) (Modal, tea.Cmd, bool) {
	if verr := asValidation(err); verr != nil {
		f.errs = verr
		return f, f.focusFirstError(), false
	}
	f.errs = nil
	f.failure = err.Error()
	return f, nil, false
}

func (f *productForm) focusFirstError() tea.Cmd {
	for i, field := range f.fields {
		if f.errs.Field(field.name) != "" {
			return f.setFocus(i)
		}
	}
	return nil
}

func asValidation(err error) *catalog.ValidationError {
	var verr *catalog.ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return nil
}

func (f *productForm) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	title := f.locale.T(i18n.KeyAddProduct)
	if f.editing != nil {
		title = f.locale.T(i18n.KeyEditProduct)
	}

	labelWidth := 0
	for _, field := range f.fields {
		labelWidth = max(labelWidth, lipgloss.Width(field.label))
	}
	modalWidth := 72
	inputWidth := modalWidth - labelWidth - 8

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(title))
	b.WriteString("\n\n")
	for i, field := range f.fields {
		label := styles.MutedText.Render(padRight(field.label, labelWidth))
		if i == f.focus {
			label = styles.AccentText.Render(padRight(field.label, labelWidth))
		}
		in := f.inputs[i]
		in.Width = inputWidth
		b.WriteString(label + "  " + in.View() + "\n")
		if msg := f.errs.Field(field.name); msg != "" {
			b.WriteString(strings.Repeat(" ", labelWidth+2) + styles.DangerText.Render(msg) + "\n")
		}
	}
	if f.failure != "" {
		b.WriteString("\n" + styles.DangerText.Render(truncate(f.failure, modalWidth-6)) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(f.locale.T(i18n.KeyFormHint,
		strings.ToLower(f.locale.T(i18n.KeyNext)),
		strings.ToLower(f.locale.T(i18n.KeySave)),
		strings.ToLower(f.locale.T(i18n.KeyCancel)))))

	return placeModal(theme, width, height, modalWidth, b.String())
}

package ui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/larder/internal/catalog"
	"github.com/five82/larder/internal/console"
	"github.com/five82/larder/internal/i18n"
	"github.com/five82/larder/internal/prefs"
	"github.com/five82/larder/internal/remote"
)

type stubGateway struct {
	berries remote.BerryPage
	details map[string]remote.BerryDetail
}

func (s *stubGateway) FetchProducts(context.Context) ([]catalog.Product, error) {
	return nil, nil
}

func (s *stubGateway) FetchBerries(context.Context, int, int) (remote.BerryPage, error) {
	return s.berries, nil
}

func (s *stubGateway) FetchBerryDetail(_ context.Context, name string) (remote.BerryDetail, error) {
	d, ok := s.details[name]
	if !ok {
		return remote.BerryDetail{}, remote.ErrNotFound
	}
	return d, nil
}

func product(id int64, title string) catalog.Product {
	return catalog.Product{
		ID: id, Title: title, Price: 10, Description: "d", Category: "fruit", Image: "i",
		Rating: catalog.Rating{Rate: 4, Count: 2},
	}
}

func newTestModel(t *testing.T, products ...catalog.Product) (Model, *console.Console) {
	t.Helper()
	gw := &stubGateway{
		berries: remote.BerryPage{Count: 2, Results: []remote.BerryRef{
			{Name: "oran", URL: "https://pokeapi.co/api/v2/berry/7/"},
			{Name: "cheri", URL: "https://pokeapi.co/api/v2/berry/1/"},
		}},
		details: map[string]remote.BerryDetail{
			"cheri": {ID: 1, Name: "cheri", GrowthTime: 3, MaxHarvest: 5, Size: 20},
		},
	}
	c := console.New(console.Options{Gateway: gw, Logger: zap.NewNop()})
	c.Products.Replace(products)

	m := New(Options{
		Context:    context.Background(),
		Console:    c,
		Logger:     zap.NewNop(),
		PrefsPath:  filepath.Join(t.TempDir(), "prefs.toml"),
		SkipWarmUp: true,
	})
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, c
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = send(t, m, runes(string(r)))
	}
	return m
}

func TestModel_SearchFiltersAsYouType(t *testing.T) {
	m, c := newTestModel(t, product(1, "Apple"), product(2, "Banana"), product(3, "Bandana"))

	m = send(t, m, runes("/"))
	if !m.searching {
		t.Fatalf("searching = false after /")
	}
	m = typeText(t, m, "ban")

	if got := c.ProductView.State().Search; got != "ban" {
		t.Fatalf("Search = %q, want %q", got, "ban")
	}
	page := c.ProductPage(m.locale.Tag())
	if page.TotalFiltered != 2 {
		t.Fatalf("TotalFiltered = %d, want 2", page.TotalFiltered)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.searching {
		t.Fatalf("searching = true after esc")
	}
	if got := c.ProductView.State().Search; got != "" {
		t.Fatalf("Search after esc = %q, want empty", got)
	}
}

func TestModel_PageNavigationGuards(t *testing.T) {
	var items []catalog.Product
	for i := 1; i <= 12; i++ {
		items = append(items, product(int64(i), strings.Repeat("p", i)))
	}
	m, c := newTestModel(t, items...)

	m = send(t, m, runes("]"))
	if got := c.ProductView.State().Page; got != 2 {
		t.Fatalf("Page = %d, want 2", got)
	}
	m = send(t, m, runes("]"))
	if got := c.ProductView.State().Page; got != 2 {
		t.Fatalf("Page past the end = %d, want 2", got)
	}
	m = send(t, m, runes("["))
	m = send(t, m, runes("["))
	if got := c.ProductView.State().Page; got != 1 {
		t.Fatalf("Page = %d, want 1", got)
	}

	send(t, m, runes("s"))
	if got := c.ProductView.State().PageSize; got != 30 {
		t.Fatalf("PageSize = %d, want 30", got)
	}
}

func TestModel_DeleteNeedsConfirmation(t *testing.T) {
	m, c := newTestModel(t, product(1, "Apple"), product(2, "Banana"))

	m = send(t, m, runes("x"))
	if _, ok := m.modal.(*confirmDelete); !ok {
		t.Fatalf("modal = %T, want *confirmDelete", m.modal)
	}
	m = send(t, m, runes("n"))
	if m.modal != nil {
		t.Fatalf("modal still open after n")
	}
	if c.Products.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Products.Len())
	}

	m = send(t, m, runes("x"))
	next, cmd := m.Update(runes("y"))
	m = next.(Model)
	if m.modal != nil {
		t.Fatalf("modal still open after y")
	}
	if c.Products.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Products.Len())
	}
	if _, err := c.Products.Get(1); err == nil {
		t.Fatalf("Apple still present; first row should have been deleted")
	}
	if cmd == nil {
		t.Fatalf("expected a status command")
	}
	if msg, ok := cmd().(statusMsg); !ok || msg.isErr {
		t.Fatalf("cmd() = %#v, want success statusMsg", msg)
	}
}

func TestModel_AddProductThroughForm(t *testing.T) {
	m, c := newTestModel(t, product(1, "Apple"))

	m = send(t, m, runes("a"))
	form, ok := m.modal.(*productForm)
	if !ok {
		t.Fatalf("modal = %T, want *productForm", m.modal)
	}
	values := productValues(product(0, "Cherry"))
	for i, field := range form.fields {
		form.inputs[i].SetValue(values[field.name])
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.modal != nil {
		t.Fatalf("form still open after a valid submit")
	}
	if c.Products.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Products.Len())
	}
	if got := c.Products.Products()[0].Title; got != "Cherry" {
		t.Fatalf("first product = %q, want Cherry (created items are prepended)", got)
	}
}

func TestModel_FormKeepsInvalidInput(t *testing.T) {
	m, c := newTestModel(t, product(1, "Apple"))

	m = send(t, m, runes("e"))
	form, ok := m.modal.(*productForm)
	if !ok {
		t.Fatalf("modal = %T, want *productForm", m.modal)
	}
	form.inputs[1].SetValue("cheap")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.modal == nil {
		t.Fatalf("form closed on invalid input")
	}
	if msg := form.errs.Field(catalog.FieldPrice); msg == "" {
		t.Fatalf("price error missing")
	}
	if form.focus != 1 {
		t.Fatalf("focus = %d, want the price field", form.focus)
	}
	got, err := c.Products.Get(1)
	if err != nil || got.Price != 10 {
		t.Fatalf("product changed: %+v, %v", got, err)
	}
}

func TestParseProductForm(t *testing.T) {
	base := productValues(product(0, "Kiwi"))

	p, err := parseProductForm(base, "nan")
	if err != nil {
		t.Fatalf("parseProductForm() error = %v", err)
	}
	if p.Title != "Kiwi" || p.Price != 10 || p.Rating.Count != 2 {
		t.Fatalf("parseProductForm() = %+v", p)
	}

	bad := map[string]string{}
	for k, v := range base {
		bad[k] = v
	}
	bad[catalog.FieldRatingCount] = "many"
	bad[catalog.FieldTitle] = "  "
	_, err = parseProductForm(bad, "nan")
	verr := asValidation(err)
	if verr == nil {
		t.Fatalf("error = %v, want *catalog.ValidationError", err)
	}
	if got := verr.Field(catalog.FieldRatingCount); got != "nan" {
		t.Fatalf("count error = %q, want %q", got, "nan")
	}
	if verr.Field(catalog.FieldTitle) == "" {
		t.Fatalf("title error missing")
	}
}

func TestModel_BerryDetailLookupAndClose(t *testing.T) {
	m, c := newTestModel(t)
	if err := c.LoadBerries(context.Background()); err != nil {
		t.Fatalf("LoadBerries() error = %v", err)
	}

	m = send(t, m, runes("b"))
	if m.currentView != ViewBerries {
		t.Fatalf("currentView = %v, want berries", m.currentView)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	detail, ok := m.modal.(*berryDetail)
	if !ok {
		t.Fatalf("modal = %T, want *berryDetail", m.modal)
	}
	// sorted ascending, so cheri is first
	if got := detail.selected(); got != "cheri" {
		t.Fatalf("selected = %q, want cheri", got)
	}
	if c.Berries.Detail().Loading {
		t.Fatalf("opening the modal must not start a lookup")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if cmd == nil {
		t.Fatalf("enter returned no lookup command")
	}
	m = send(t, m, cmd())
	if !c.Berries.Detail().Found() {
		t.Fatalf("detail not found after lookup: %+v", c.Berries.Detail())
	}
	if !strings.Contains(m.View(), "Cheri") {
		t.Fatalf("view does not show the berry name")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.modal != nil {
		t.Fatalf("modal still open after esc")
	}
	if c.Berries.Detail().Open || c.Berries.Detail().Berry != nil {
		t.Fatalf("detail kept after close: %+v", c.Berries.Detail())
	}
}

func TestModel_MissingBerryShowsNotFound(t *testing.T) {
	m, c := newTestModel(t)
	if err := c.LoadBerries(context.Background()); err != nil {
		t.Fatalf("LoadBerries() error = %v", err)
	}
	m = send(t, m, runes("b"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, runes("l")) // oran
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, next.(Model), cmd())

	if m.statusError {
		t.Fatalf("not-found must not raise an error status")
	}
	want := m.locale.T(i18n.KeyBerryNotFound, "oran")
	if !strings.Contains(m.View(), want) {
		t.Fatalf("view missing %q", want)
	}
}

func TestModel_ToggleLocaleAndThemePersist(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, runes("L"))
	if got := m.locale.Code(); got != "id" {
		t.Fatalf("locale = %q, want id", got)
	}
	m = send(t, m, runes("T"))

	p, err := prefs.Load(m.prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load() error = %v", err)
	}
	if p.Locale != "id" {
		t.Fatalf("saved locale = %q, want id", p.Locale)
	}
	if p.Theme != m.theme.Name || p.Theme == "Nightfox" {
		t.Fatalf("saved theme = %q, want %q", p.Theme, m.theme.Name)
	}
}

func TestModel_ModalsFollowLocale(t *testing.T) {
	m, c := newTestModel(t, product(1, "Apple"))
	if err := c.LoadBerries(context.Background()); err != nil {
		t.Fatalf("LoadBerries() error = %v", err)
	}
	m = send(t, m, runes("L"))

	m = send(t, m, runes("a"))
	if out := m.View(); !strings.Contains(out, "tab: berikutnya") || strings.Contains(out, "tab: next") {
		t.Fatalf("form hint not translated:\n%s", out)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	m = send(t, m, runes("b"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, next.(Model), cmd())

	out := m.View()
	for _, want := range []string{"Pertumbuhan", "Fisik", "esc tutup"} {
		if !strings.Contains(out, want) {
			t.Fatalf("berry detail missing %q:\n%s", want, out)
		}
	}
	for _, stale := range []string{"Growth", "Physical", "esc close"} {
		if strings.Contains(out, stale) {
			t.Fatalf("berry detail still shows %q", stale)
		}
	}
}

func TestModel_ViewShowsRange(t *testing.T) {
	m, _ := newTestModel(t, product(1, "Apple"), product(2, "Banana"))

	out := m.View()
	if !strings.Contains(out, "Showing 1 to 2 of 2 results") {
		t.Fatalf("view missing range footer:\n%s", out)
	}

	empty, _ := newTestModel(t)
	if !strings.Contains(empty.View(), "No data") {
		t.Fatalf("empty view missing No data")
	}
}

func TestScrollStart(t *testing.T) {
	tests := []struct {
		selected, count, visible, want int
	}{
		{0, 5, 10, 0},
		{3, 20, 5, 0},
		{7, 20, 5, 3},
		{19, 20, 5, 15},
	}
	for _, tt := range tests {
		if got := scrollStart(tt.selected, tt.count, tt.visible); got != tt.want {
			t.Fatalf("scrollStart(%d, %d, %d) = %d, want %d", tt.selected, tt.count, tt.visible, got, tt.want)
		}
	}
}

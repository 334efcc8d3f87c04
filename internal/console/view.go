package console

import (
	"context"

	"github.com/five82/larder/internal/persist"
	"github.com/five82/larder/internal/viewstate"
)

// View is one list's view state plus the blob it is saved under. Every
// setter saves after mutating.
type View struct {
	name  string
	store *viewstate.Store
	save  func(ctx context.Context, name string, v any)
}

func newView(name string, save func(ctx context.Context, name string, v any)) *View {
	return &View{name: name, store: viewstate.NewStore(), save: save}
}

// Name returns the blob name the view persists to.
func (v *View) Name() string { return v.name }

// State returns the current view state.
func (v *View) State() viewstate.State { return v.store.State() }

// Subscribe registers fn for view state changes.
func (v *View) Subscribe(fn func(viewstate.State)) func() { return v.store.Subscribe(fn) }

// SetSearch changes the filter text and returns to page 1.
func (v *View) SetSearch(ctx context.Context, search string) {
	v.store.SetSearch(search)
	v.persist(ctx)
}

// SetPage moves to page.
func (v *View) SetPage(ctx context.Context, page int) {
	v.store.SetPage(page)
	v.persist(ctx)
}

// SetPageSize changes the page size and returns to page 1.
func (v *View) SetPageSize(ctx context.Context, size int) error {
	if err := v.store.SetPageSize(size); err != nil {
		return err
	}
	v.persist(ctx)
	return nil
}

// CyclePageSize moves to the next allowed page size.
func (v *View) CyclePageSize(ctx context.Context) int {
	size := v.store.CyclePageSize()
	v.persist(ctx)
	return size
}

// SetSortOrder sets the sort direction.
func (v *View) SetSortOrder(ctx context.Context, order viewstate.SortOrder) error {
	if err := v.store.SetSortOrder(order); err != nil {
		return err
	}
	v.persist(ctx)
	return nil
}

// SetSortBy sets the sort field. Only fields the view can sort on are accepted.
func (v *View) SetSortBy(ctx context.Context, field string) error {
	if err := v.store.SetSortBy(field); err != nil {
		return err
	}
	v.persist(ctx)
	return nil
}

// ToggleSortOrder flips the sort direction.
func (v *View) ToggleSortOrder(ctx context.Context) viewstate.SortOrder {
	order := v.store.ToggleSortOrder()
	v.persist(ctx)
	return order
}

// Next advances a page unless already on the last one.
func (v *View) Next(ctx context.Context, totalPages int) bool {
	if !v.store.NextPage(totalPages) {
		return false
	}
	v.persist(ctx)
	return true
}

// Prev goes back a page unless already on the first one.
func (v *View) Prev(ctx context.Context) bool {
	if !v.store.PrevPage() {
		return false
	}
	v.persist(ctx)
	return true
}

// Reset restores the default view state.
func (v *View) Reset(ctx context.Context) {
	v.store.Reset()
	v.persist(ctx)
}

func (v *View) restore(ctx context.Context, c *Console) {
	var st viewstate.State
	if err := persist.LoadJSON(ctx, c.backend, v.name, &st); err != nil {
		c.restoreFailed(ctx, v.name, err)
		return
	}
	v.store.Restore(st)
}

func (v *View) persist(ctx context.Context) {
	v.save(ctx, v.name, v.store.State())
}

package console

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/five82/larder/internal/catalog"
	"github.com/five82/larder/internal/listview"
	"github.com/five82/larder/internal/persist"
	"github.com/five82/larder/internal/reference"
	"github.com/five82/larder/internal/remote"
	"github.com/five82/larder/internal/viewstate"
)

// Options configure a Console.
type Options struct {
	Gateway    remote.Gateway
	Backend    persist.Backend
	Logger     *zap.Logger
	BerryLimit int
}

// Console is the boundary between the stores and everything that drives
// them. Mutations go through it so each one is followed by a save.
type Console struct {
	Products    *catalog.Store
	Berries     *reference.Store
	ProductView *View
	BerryView   *View

	gateway    remote.Gateway
	backend    persist.Backend
	log        *zap.Logger
	berryLimit int
	revision   atomic.Uint64
}

type productBlob struct {
	Products []catalog.Product `json:"products"`
}

// New wires the stores to the gateway and backend.
func New(opts Options) *Console {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	backend := opts.Backend
	if backend == nil {
		backend = persist.NewMemory()
	}
	limit := opts.BerryLimit
	if limit <= 0 {
		limit = reference.DefaultLimit
	}

	c := &Console{
		Products:   catalog.NewStore(),
		Berries:    &reference.Store{},
		gateway:    opts.Gateway,
		backend:    backend,
		log:        logger.Named("console"),
		berryLimit: limit,
	}
	c.ProductView = newView(persist.ProductViewBlob, c.saveJSON)
	c.BerryView = newView(persist.BerryViewBlob, c.saveJSON)

	c.Products.Subscribe(c.bump)
	c.ProductView.Subscribe(func(viewstate.State) { c.bump() })
	c.BerryView.Subscribe(func(viewstate.State) { c.bump() })
	return c
}

// Revision changes whenever products or either view state change. Renderers
// use it to skip recomputing pages.
func (c *Console) Revision() uint64 {
	return c.revision.Load()
}

func (c *Console) bump() {
	c.revision.Add(1)
}

// Restore loads persisted state. Missing blobs keep the defaults; unreadable
// ones are logged and skipped.
func (c *Console) Restore(ctx context.Context) {
	var blob productBlob
	if err := persist.LoadJSON(ctx, c.backend, persist.ProductBlob, &blob); err != nil {
		c.restoreFailed(ctx, persist.ProductBlob, err)
	} else if len(blob.Products) > 0 {
		c.Products.Replace(blob.Products)
	}
	c.ProductView.restore(ctx, c)
	c.BerryView.restore(ctx, c)
}

// LoadProducts seeds the catalog from the gateway unless it already holds
// products.
func (c *Console) LoadProducts(ctx context.Context) error {
	if c.gateway == nil {
		return fmt.Errorf("no gateway configured")
	}
	if c.Products.Len() > 0 {
		return nil
	}
	if err := c.Products.Load(ctx, c.gateway); err != nil {
		c.log.Warn("product seed failed", zap.Error(err))
		return err
	}
	c.log.Info("products seeded", zap.Int("count", c.Products.Len()))
	c.saveProducts(ctx)
	return nil
}

// LoadBerries fetches the berry listing once per session.
func (c *Console) LoadBerries(ctx context.Context) error {
	if c.gateway == nil {
		return fmt.Errorf("no gateway configured")
	}
	if !c.Berries.NeedsLoad() {
		return nil
	}
	c.Berries.BeginLoad()
	c.bump()
	page, err := c.gateway.FetchBerries(ctx, c.berryLimit, 0)
	if err != nil {
		err = fmt.Errorf("load berries: %w", err)
		c.Berries.Update(nil, err)
		c.bump()
		c.log.Warn("berry listing failed", zap.Error(err))
		return err
	}
	c.Berries.Update(&page, nil)
	c.bump()
	c.log.Info("berries loaded", zap.Int("count", len(page.Results)), zap.Int("total", page.Count))
	return nil
}

// WarmUp runs both remote loads concurrently. A failure in one does not
// cancel the other; the joined error is returned.
func (c *Console) WarmUp(ctx context.Context) error {
	var g errgroup.Group
	var productErr, berryErr error
	g.Go(func() error {
		productErr = c.LoadProducts(ctx)
		return nil
	})
	g.Go(func() error {
		berryErr = c.LoadBerries(ctx)
		return nil
	})
	_ = g.Wait()
	return errors.Join(productErr, berryErr)
}

// CreateProduct validates p, stores it with a fresh ID and saves.
func (c *Console) CreateProduct(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	if err := catalog.Validate(p); err != nil {
		return catalog.Product{}, err
	}
	created := c.Products.Create(p)
	c.log.Info("product created", zap.Int64("id", created.ID), zap.String("title", created.Title))
	c.saveProducts(ctx)
	return created, nil
}

// UpdateProduct validates p and replaces the product with the given ID.
func (c *Console) UpdateProduct(ctx context.Context, id int64, p catalog.Product) error {
	if err := catalog.Validate(p); err != nil {
		return err
	}
	if err := c.Products.Update(id, p); err != nil {
		return err
	}
	c.log.Info("product updated", zap.Int64("id", id))
	c.saveProducts(ctx)
	return nil
}

// DeleteProduct removes the product with the given ID. Unknown IDs are a
// no-op and nothing is saved. When the delete empties the last page the view
// steps back to the new last page.
func (c *Console) DeleteProduct(ctx context.Context, id int64) bool {
	if !c.Products.Delete(id) {
		return false
	}
	c.log.Info("product deleted", zap.Int64("id", id))
	c.saveProducts(ctx)

	// row counts do not depend on the collation tag
	page := c.ProductPage(language.English)
	if page.TotalPages > 0 && c.ProductView.State().Page > page.TotalPages {
		c.ProductView.SetPage(ctx, page.TotalPages)
	}
	return true
}

// ProductPage runs the list pipeline over the catalog.
func (c *Console) ProductPage(locale language.Tag) listview.Page[catalog.Product] {
	return listview.Apply(c.Products.Products(), catalog.Product.Name, c.ProductView.State(), locale)
}

// BerryPage runs the list pipeline over the berry listing.
func (c *Console) BerryPage(locale language.Tag) listview.Page[remote.BerryRef] {
	return listview.Apply(c.Berries.Snapshot().Berries, berryName, c.BerryView.State(), locale)
}

// BerryNames returns every berry name that passes the current filter, in the
// current sort order. The detail selector offers these.
func (c *Console) BerryNames(locale language.Tag) []string {
	st := c.BerryView.State()
	refs := listview.Filter(c.Berries.Snapshot().Berries, berryName, st.Search)
	listview.Sort(refs, berryName, st.Descending(), locale)
	names := make([]string, 0, len(refs))
	for _, r := range refs {
		names = append(names, r.Name)
	}
	return names
}

// OpenBerryDetail starts a detail session for name.
func (c *Console) OpenBerryDetail(name string) reference.Detail {
	return c.Berries.OpenDetail(name)
}

// LookupBerry fetches the detail for name into the open session. Lookups for a
// session that was closed meanwhile are dropped.
func (c *Console) LookupBerry(ctx context.Context, name string) error {
	if c.gateway == nil {
		return fmt.Errorf("no gateway configured")
	}
	session, err := c.Berries.BeginLookup(name)
	if err != nil {
		return err
	}
	detail, err := c.gateway.FetchBerryDetail(ctx, name)
	if err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			c.log.Info("berry not found", zap.String("name", name))
		} else {
			c.log.Warn("berry lookup failed", zap.String("name", name), zap.Error(err))
		}
		c.Berries.FinishLookup(session, nil, err)
		return err
	}
	c.Berries.FinishLookup(session, &detail, nil)
	return nil
}

// CloseBerryDetail ends the detail session and discards its result.
func (c *Console) CloseBerryDetail() {
	c.Berries.CloseDetail()
}

// ResetViews restores both lists to their default view state.
func (c *Console) ResetViews(ctx context.Context) {
	c.ProductView.Reset(ctx)
	c.BerryView.Reset(ctx)
}

// Close releases the backend.
func (c *Console) Close() error {
	return c.backend.Close()
}

func (c *Console) saveProducts(ctx context.Context) {
	c.saveJSON(ctx, persist.ProductBlob, productBlob{Products: c.Products.Products()})
}

func (c *Console) saveJSON(ctx context.Context, name string, v any) {
	if err := persist.SaveJSON(ctx, c.backend, name, v); err != nil {
		c.log.Error("save failed", zap.String("blob", name), zap.Error(err))
		return
	}
	c.log.Debug("saved", zap.String("blob", name))
}

func berryName(b remote.BerryRef) string {
	return b.Name
}

// restoreFailed logs a blob that could not be restored. A blob that does not
// decode is dropped so the next start begins from defaults.
func (c *Console) restoreFailed(ctx context.Context, name string, err error) {
	if errors.Is(err, persist.ErrNoBlob) {
		return
	}
	c.log.Warn("restore failed", zap.String("blob", name), zap.Error(err))
	if !errors.Is(err, persist.ErrCorrupt) {
		return
	}
	if derr := c.backend.Delete(ctx, name); derr != nil {
		c.log.Warn("drop corrupt blob failed", zap.String("blob", name), zap.Error(derr))
	}
}

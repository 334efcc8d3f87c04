package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/larder/internal/console"
	"github.com/five82/larder/internal/i18n"
	"github.com/five82/larder/internal/viewstate"
)

// listFlags override the persisted view state for one list. Only flags the
// user set are applied, and applying them saves them like the TUI would.
type listFlags struct {
	search   string
	page     int
	pageSize int
	sortBy   string
	desc     bool
}

func (f *listFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.search, "search", "", "filter by name (case-insensitive substring)")
	cmd.Flags().IntVar(&f.page, "page", 0, "page number")
	cmd.Flags().IntVar(&f.pageSize, "page-size", 0, "rows per page (10, 30 or 50)")
	cmd.Flags().StringVar(&f.sortBy, "sort-by", viewstate.SortName, "sort field (name)")
	cmd.Flags().BoolVar(&f.desc, "desc", false, "sort names descending")
}

func (f *listFlags) apply(ctx context.Context, cmd *cobra.Command, view *console.View) error {
	flags := cmd.Flags()
	if flags.Changed("search") {
		view.SetSearch(ctx, f.search)
	}
	if flags.Changed("page-size") {
		if err := view.SetPageSize(ctx, f.pageSize); err != nil {
			return WrapExitError(ExitCommandError, "page-size", err)
		}
	}
	if flags.Changed("sort-by") {
		if err := view.SetSortBy(ctx, f.sortBy); err != nil {
			return WrapExitError(ExitCommandError, "sort-by", err)
		}
	}
	if flags.Changed("desc") {
		order := viewstate.Asc
		if f.desc {
			order = viewstate.Desc
		}
		if err := view.SetSortOrder(ctx, order); err != nil {
			return WrapExitError(ExitCommandError, "desc", err)
		}
	}
	if flags.Changed("page") {
		view.SetPage(ctx, f.page)
	}
	return nil
}

type productRow struct {
	No       int     `json:"no"`
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

type berryRow struct {
	No   int    `json:"no"`
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type pageResult[T any] struct {
	Rows       []T             `json:"rows"`
	Total      int             `json:"total"`
	TotalPages int             `json:"totalPages"`
	From       int             `json:"from"`
	To         int             `json:"to"`
	State      viewstate.State `json:"state"`
}

// NewProductsCommand prints one page of the product catalog.
func NewProductsCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &listFlags{}
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Print a page of the product catalog",
		Long: `Print one page of the product catalog using the saved search, page size and
sort order. The catalog is seeded from the product API on first use.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProducts(cmd, rootOpts, flags)
		},
	}
	flags.bind(cmd)
	return cmd
}

func runProducts(cmd *cobra.Command, opts *RootOptions, flags *listFlags) error {
	ctx := cmd.Context()
	session, err := opts.open(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = session.Close() }()

	c := session.Console
	if err := c.LoadProducts(ctx); err != nil {
		return WrapExitError(ExitCommandError, "load products", err)
	}
	if err := flags.apply(ctx, cmd, c.ProductView); err != nil {
		return err
	}

	locale := i18n.Resolve(session.Prefs.Locale)
	page := c.ProductPage(locale.Tag())
	result := pageResult[productRow]{
		Rows:       make([]productRow, 0, len(page.Rows)),
		Total:      page.TotalFiltered,
		TotalPages: page.TotalPages,
		From:       page.RangeStart,
		To:         page.RangeEnd,
		State:      c.ProductView.State(),
	}
	for i, p := range page.Rows {
		result.Rows = append(result.Rows, productRow{
			No: page.RangeStart + i, ID: p.ID, Title: p.Title, Price: p.Price, Category: p.Category,
		})
	}

	out := formatter{format: opts.Format, w: cmd.OutOrStdout()}
	if out.format == "json" {
		return out.json(result)
	}
	rows := make([][]string, 0, len(result.Rows))
	for _, r := range result.Rows {
		rows = append(rows, []string{
			fmt.Sprint(r.No), r.Title, fmt.Sprintf("%.2f", r.Price), r.Category,
		})
	}
	return printPage(out, locale, []string{
		locale.T(i18n.KeyNo), locale.T(i18n.KeyProductName), locale.T(i18n.KeyPrice), locale.T(i18n.KeyCategory),
	}, rows, result.Total, result.TotalPages, result.From, result.To, result.State)
}

// NewBerriesCommand prints one page of the berry listing.
func NewBerriesCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &listFlags{}
	cmd := &cobra.Command{
		Use:   "berries",
		Short: "Print a page of the berry listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBerries(cmd, rootOpts, flags)
		},
	}
	flags.bind(cmd)
	return cmd
}

func runBerries(cmd *cobra.Command, opts *RootOptions, flags *listFlags) error {
	ctx := cmd.Context()
	session, err := opts.open(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = session.Close() }()

	c := session.Console
	if err := c.LoadBerries(ctx); err != nil {
		return WrapExitError(ExitCommandError, "load berries", err)
	}
	if err := flags.apply(ctx, cmd, c.BerryView); err != nil {
		return err
	}

	locale := i18n.Resolve(session.Prefs.Locale)
	page := c.BerryPage(locale.Tag())
	result := pageResult[berryRow]{
		Rows:       make([]berryRow, 0, len(page.Rows)),
		Total:      page.TotalFiltered,
		TotalPages: page.TotalPages,
		From:       page.RangeStart,
		To:         page.RangeEnd,
		State:      c.BerryView.State(),
	}
	for i, b := range page.Rows {
		result.Rows = append(result.Rows, berryRow{No: page.RangeStart + i, ID: b.ID(), Name: b.Name})
	}

	out := formatter{format: opts.Format, w: cmd.OutOrStdout()}
	if out.format == "json" {
		return out.json(result)
	}
	rows := make([][]string, 0, len(result.Rows))
	for _, r := range result.Rows {
		rows = append(rows, []string{fmt.Sprint(r.No), r.Name, fmt.Sprint(r.ID)})
	}
	return printPage(out, locale, []string{
		locale.T(i18n.KeyNo), locale.T(i18n.KeyName), locale.T(i18n.KeyBerryID),
	}, rows, result.Total, result.TotalPages, result.From, result.To, result.State)
}

func printPage(out formatter, locale i18n.Locale, headers []string, rows [][]string, total, totalPages, from, to int, st viewstate.State) error {
	if len(rows) == 0 {
		return out.line("%s", locale.T(i18n.KeyNoData))
	}
	if err := out.table(headers, rows); err != nil {
		return err
	}
	sortLabel := locale.T(i18n.KeySortAsc)
	if st.Descending() {
		sortLabel = locale.T(i18n.KeySortDesc)
	}
	return out.line("%s · %s · %s",
		locale.T(i18n.KeyShowing, from, to, total),
		locale.T(i18n.KeyPageOf, st.Page, totalPages),
		sortLabel)
}

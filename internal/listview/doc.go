// Package listview derives the rows a list screen shows from the full
// collection and the screen's view state.
//
// The pipeline runs in three steps:
//
//  1. Filter: case-insensitive substring match on the display name.
//  2. Sort: locale-aware collation on the display name, stable, with the
//     comparison inverted for descending order.
//  3. Paginate: a fixed-size window selected by the 1-based page number.
//
// Every function is pure. Apply is cheap enough to call on every render, so
// callers re-run it whenever the collection or the view state changes rather
// than caching pages.
//
// An empty result has zero pages and no valid range; callers render a "no
// data" state instead of "Showing 1 to 0 of 0". Requesting a page past the end
// returns no rows and no error. Guarding next/previous navigation is up to the
// caller (see CanNext and CanPrev).
package listview

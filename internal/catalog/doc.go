// Package catalog owns the editable product collection.
//
// The Store keeps products in display order (newest first until the list
// pipeline re-sorts them) and applies every mutation atomically. Readers get
// cloned slices, so a Snapshot never changes under the caller.
//
// The collection is seeded once per session through a SeedFetcher when it is
// empty. Persistence is not the store's concern: callers save after each
// mutation and restore with Replace at startup.
//
// Validate implements the presence and range checks of the product form and
// reports them as a *ValidationError keyed by field name.
package catalog

// Package reference holds the read-only berry catalog and the detail lookup
// session shown over it.
//
// The listing is fetched once per session and kept in a mutex-guarded
// snapshot, the same way the product store keeps its seed. A failed fetch keeps
// whatever data was already there and records the error along with a count of
// consecutive failures.
//
// A detail session is opened for one selected name. Lookups are never
// deduplicated: the last response to arrive within a session wins. Closing the
// session discards the result, and late responses belonging to a closed
// session are ignored.
//
// The zero Store is ready to use.
package reference

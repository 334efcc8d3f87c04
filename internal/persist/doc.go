// Package persist stores the console's state as named JSON blobs.
//
// There are three blobs: the product collection and one view state per list
// screen. Callers save explicitly after each mutation and load once at start.
// SQLite (pure Go driver) is the on-disk backend; Memory backs tests and
// ephemeral sessions.
package persist

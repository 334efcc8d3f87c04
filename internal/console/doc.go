// Package console is the boundary every user action passes through.
//
// A Console owns the product catalog, the berry reference store and one View
// per list. Each mutating call changes the store and then saves the affected
// blob to the persist.Backend; save failures are logged and never returned.
// Remote loads record their failures in the stores so the UI can render an
// empty list with a message instead of failing.
package console

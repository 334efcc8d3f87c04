// Package viewstate holds the UI-only parameters of a list screen: search
// text, current page, page size and sort.
//
// Changing the search text or the page size always re-anchors to page 1, so
// a shrinking result set never leaves the user on a page past the end. The
// store does not clamp the page against the result count; that is left to
// the list pipeline and to the NextPage/PrevPage guards.
package viewstate

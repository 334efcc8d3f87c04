// Package ui provides the Bubble Tea terminal interface for larder.
//
// The model renders three views over a console.Console:
//
//   - Products: the editable catalog with search, paging, sort, add, edit and delete
//   - Berries: the reference listing with a detail lookup modal
//   - Activity: the tail of the application log
//
// Rendering never mutates state. Key handlers call into the console, which
// saves after every change, and remote work runs as tea.Cmd functions that
// report back through messages. A periodic tick picks up changes made by those
// commands via console.Revision.
//
// Themes and the active locale are persisted to the prefs file whenever the
// user switches them.
package ui

// Package logtail reads the tail of larder's JSON log for the Activity view.
//
// Read uses a ring buffer so only the last maxLines are held in memory no
// matter how large the file grows. ReadEntries parses each line as a zap JSON
// entry; lines that are not JSON are kept as unstructured entries so nothing
// disappears from the view.
//
// A missing log file is not an error.
package logtail

// Package truncate clips text to fit a token limit.
//
// The budgeting core treats entries as atomic and never splits content
// itself; truncation is a pre-processing step a caller applies before
// handing content to the store. The session package uses KeepStart to clip
// oversized files when Config.ClipOversizedFiles is set.
//
//	clipped, wasClipped := truncate.KeepStart(contents, 10000, nil)
//
// Clipping works on runes (not bytes) and binary-searches for the largest
// piece that fits, leaving a marker where content was removed. The clipped
// result always fits within the given limit.
package truncate

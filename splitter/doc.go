// Package splitter provides API for splitting a string on whitespace
// without throwing the whitespace away.
//
// The Splitter returns a Segment for each Next iteration.
// A Segment is a maximal run of whitespace or non-whitespace characters,
// so concatenating every Segment rebuilds the original string.
package splitter

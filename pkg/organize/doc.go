// Package organize drives an organize run: it walks each source directory,
// classifies every regular file and hands matched files to the mover.
//
// A run never aborts because of a single file. Missing source directories,
// unreadable subdirectories and failed moves are reported as failed outcomes
// and the walk goes on. Only configuration problems (no classifier, no
// sources, unusable keyword destinations) are returned as errors, and those
// are detected before any file is touched.
//
// The files of a source directory are listed before any of them is moved,
// so files moved into a destination nested inside the source are not seen
// twice. A path is handled at most once per run even when sources overlap.
package organize

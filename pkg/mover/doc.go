// Package mover relocates a single file into a destination directory.
//
// The destination directory is created on demand. When a file with the same
// name already exists there, the incoming file is renamed with a timestamp
// suffix inserted before its extension:
//
//	report.pdf -> report_20240102153045.pdf
//
// The existing file is never overwritten. A move is a single rename; when
// source and destination live on different devices the mover copies the
// file and then removes the source.
//
// Move never returns an error value. Every failure is reported as a failed
// types.Outcome carrying a coded error.
package mover

// Package filesystem provides filesystem implementations for sortie.
//
// This package contains implementations of the types.FS interface:
// the standard OS filesystem used by the CLI, and an afero-backed
// filesystem used by tests that run against memory.
package filesystem

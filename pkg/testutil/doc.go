// Package testutil provides utilities for testing sortie components.
//
// Key components:
//   - TestEnvironment: isolated config and state directories plus a
//     filesystem, either in memory or under t.TempDir
//   - file helpers that work on any types.FS, so the same fixtures serve
//     the afero memory filesystem and the real one
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; use EnvIsolated when the code under test goes
//     through the os package (rules store, config, CLI)
//   - Define test data inline
package testutil

// Package testutil provides utilities for testing templatize components.
//
// Key components:
//   - MemFS: an afero in-memory filesystem paired with its types.FS view
//   - Disk helpers: create files with explicit permission bits under t.TempDir()
//
// Usage guidelines:
//   - Prefer MemFS for substitution and discovery tests
//   - Use real disk helpers only where permission bits or umask matter
//   - All test data should be defined inline, not in external files
package testutil

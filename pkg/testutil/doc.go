// Package testutil provides fixtures for testing reactspring components.
//
// Key components:
//   - NewTestFS: in-memory filesystem backed by afero
//   - WriteTree / ReadTree: declare and inspect whole directory trees inline
//   - FaultyFS: wraps a filesystem and fails chosen operations on chosen paths
//   - WriteTemplates: a small but complete template root (frontend variants
//     and every backend language/build tool pair)
//
// Usage guidelines:
//   - Tests use the in-memory filesystem unless they exercise OS behavior
//   - All test data is defined inline, not in external files
package testutil

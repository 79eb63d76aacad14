// Package filesystem provides filesystem implementations for the generator.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem used for real runs, and an afero-backed one used by
// tests and by dry runs that materialize into memory.
package filesystem

// Package filesystem provides filesystem implementations for photosort.
//
// This package contains the FS interface used by the variable providers,
// the replicators and the sort engine, with an OS implementation and an
// afero-backed implementation used for in-memory tests.
package filesystem

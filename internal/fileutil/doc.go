// Package fileutil walks a directory into the entry forest that arbor renders.
//
// Walk differs from filepath.WalkDir in three ways that matter for display:
//   - it builds a parent/child tree instead of a flat callback stream
//   - it records per-entry read errors on the entry and keeps going
//   - it can dereference symlinks, descending into linked directories
//     once per resolved path so cycles terminate
//
// Only fatal errors (the root is missing or is not a directory) fail the walk.
// Non-fatal errors are returned in WalkResult.Errors and attached to the
// entry they belong to.
//
// Sibling order is whatever the filesystem returns; ordering is the
// listing package's job.
package fileutil

// Package types defines the interfaces shared across templatize packages.
// The filesystem abstraction lives here so that the template, evaluator and
// manifest packages can be exercised against an in-memory filesystem.
package types

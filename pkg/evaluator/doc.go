// Package evaluator owns a collection of templates and renders them in
// order against one FieldSet.
//
// A collection is built either from a manifest, which may name templates
// explicitly or point at a directory to scan, or by scanning a directory
// directly. Default source and destination directories are applied once,
// after construction, and never replace a directory an entry set itself.
//
// Evaluation is fail-fast: the first template that fails stops the batch
// and files already written stay in place.
package evaluator

// Package fields turns a structured payload into the ordered list of
// placeholder substitutions applied to templates.
//
// A payload is decoded into a Value (a tagged variant of scalar, object and
// array) that keeps object keys in declaration order. Flatten then walks the
// Value depth first and emits one Field per scalar leaf:
//
//	{"user": {"name": "ada", "langs": ["go", "c"]}}
//
// becomes
//
//	USER_NAME=ada
//	USER_LANGS_0=go
//	USER_LANGS_1=c
//
// Names are never de-duplicated or validated; the order of the FieldSet is
// the order in which substitutions run.
package fields

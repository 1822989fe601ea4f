// Package template renders a single template file.
//
// A Template names a source file, the directory its output lands in and an
// optional replacement file name. Rendering walks the FieldSet in order and
// replaces every literal %NAME% occurrence with the field value; each field
// operates on the output of the previous one, so a value that itself looks
// like a placeholder can be consumed by a later field.
//
// When ResolveFromEnv is set the field value is treated as the name of an
// environment variable and replaced by that variable's value, falling back to
// the literal value when the variable is absent. The environment is always
// passed in explicitly as a snapshot.
package template

package fields

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/templatize/pkg/errors"
	"github.com/arthur-debert/templatize/pkg/logging"
	"github.com/arthur-debert/templatize/pkg/types"
)

// Field is a single substitution: every %Name% in a template is replaced
// by Value.
type Field struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Value string `json:"value" yaml:"value" toml:"value"`
}

// String returns the NAME=value form
func (f Field) String() string {
	return f.Name + "=" + f.Value
}

// FieldSet is an ordered sequence of fields. Order is substitution order.
type FieldSet []Field

// Names returns the field names in order, duplicates included.
func (fs FieldSet) Names() []string {
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.Name
	}
	return names
}

// Lookup returns the value of the first field with the given name.
func (fs FieldSet) Lookup(name string) (string, bool) {
	for _, f := range fs {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// FromJSON flattens a JSON document.
func FromJSON(data []byte) (FieldSet, error) {
	v, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFieldsParse, "failed to parse JSON fields")
	}
	return Flatten(v, ""), nil
}

// FromReader flattens a JSON document read from r.
func FromReader(r io.Reader) (FieldSet, error) {
	v, err := ParseReader(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFieldsParse, "failed to parse JSON fields")
	}
	return Flatten(v, ""), nil
}

// FromYAML flattens a YAML document.
func FromYAML(data []byte) (FieldSet, error) {
	v, err := ParseYAML(data)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFieldsParse, "failed to parse YAML fields")
	}
	return Flatten(v, ""), nil
}

// FromStruct flattens any value that encoding/json can marshal, using its
// JSON representation.
func FromStruct(s interface{}) (FieldSet, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to marshal value")
	}
	return FromJSON(data)
}

// FromFile loads and flattens a fields file. Files ending in .yaml or .yml
// are decoded as YAML; everything else as JSON.
func FromFile(fsys types.FS, path string) (FieldSet, error) {
	logger := logging.GetLogger("fields")

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFieldsLoad, "failed to read fields file %s", path).
			WithDetail("path", path)
	}

	var fs FieldSet
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		fs, err = FromYAML(data)
	default:
		fs, err = FromJSON(data)
	}
	if err != nil {
		if tErr, ok := err.(*errors.TemplatizeError); ok {
			tErr.WithDetail("path", path)
		}
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Int("fields", len(fs)).
		Msg("loaded fields")

	return fs, nil
}

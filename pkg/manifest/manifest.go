// Package manifest decodes template manifests.
//
// A manifest lists the templates to render and the default directories that
// apply to entries which do not name their own:
//
//	{
//	  "defaultSourceDir": "templates",
//	  "defaultDestDir": "out",
//	  "templates": [
//	    {"sourceFile": "app.conf", "destName": "app.prod.conf"},
//	    {"sourceFile": "secrets.env", "resolveFromEnvironment": true}
//	  ]
//	}
//
// JSON (with comments), YAML and TOML are accepted; the format is chosen by
// file extension. Older key spellings are accepted as aliases.
package manifest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/templatize/pkg/config"
	"github.com/arthur-debert/templatize/pkg/errors"
	"github.com/arthur-debert/templatize/pkg/logging"
	"github.com/arthur-debert/templatize/pkg/types"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
	"github.com/tidwall/jsonc"
)

// Format is a manifest encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Key aliases, in lookup order.
var (
	defaultSourceDirKeys = []string{"defaultSourceDir", "default_relative_dir", "parent"}
	defaultDestDirKeys   = []string{"defaultDestDir", "default_dest_dir"}
	templateListKeys     = []string{"templates", "files"}

	sourceFileKeys = []string{"sourceFile", "file_name", "src"}
	sourceDirKeys  = []string{"sourceDir", "relative_dir"}
	destDirKeys    = []string{"destDir", "dest_dir", "dest"}
	destNameKeys   = []string{"destName", "alt_dest_name"}
	resolveEnvKeys = []string{"resolveFromEnvironment", "eval_env", "eval_as_env"}
)

// Entry is one template declared by a manifest.
type Entry struct {
	SourceFile             string `json:"sourceFile" yaml:"sourceFile" toml:"sourceFile"`
	SourceDir              string `json:"sourceDir,omitempty" yaml:"sourceDir,omitempty" toml:"sourceDir,omitempty"`
	DestDir                string `json:"destDir,omitempty" yaml:"destDir,omitempty" toml:"destDir,omitempty"`
	DestName               string `json:"destName,omitempty" yaml:"destName,omitempty" toml:"destName,omitempty"`
	ResolveFromEnvironment bool   `json:"resolveFromEnvironment,omitempty" yaml:"resolveFromEnvironment,omitempty" toml:"resolveFromEnvironment,omitempty"`
}

// Manifest is a decoded manifest document.
type Manifest struct {
	DefaultSourceDir string  `json:"defaultSourceDir,omitempty" yaml:"defaultSourceDir,omitempty" toml:"defaultSourceDir,omitempty"`
	DefaultDestDir   string  `json:"defaultDestDir,omitempty" yaml:"defaultDestDir,omitempty" toml:"defaultDestDir,omitempty"`
	Templates        []Entry `json:"templates" yaml:"templates" toml:"templates"`
}

// FormatFromPath picks the manifest format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.Newf(errors.ErrConfigParse, "unsupported manifest extension %q", filepath.Ext(path)).
		WithDetail("path", path)
}

// Load reads and decodes the manifest at path.
func Load(fsys types.FS, path string) (*Manifest, error) {
	logger := logging.GetLogger("manifest")

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read manifest %s", path).
			WithDetail("path", path)
	}

	m, err := Parse(data, format)
	if err != nil {
		if tErr, ok := err.(*errors.TemplatizeError); ok {
			tErr.WithDetail("path", path)
		}
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Str("format", string(format)).
		Int("templates", len(m.Templates)).
		Str("defaultSourceDir", m.DefaultSourceDir).
		Str("defaultDestDir", m.DefaultDestDir).
		Msg("loaded manifest")

	return m, nil
}

// Parse decodes manifest data in the given format.
func Parse(data []byte, format Format) (*Manifest, error) {
	var parser koanf.Parser
	switch format {
	case FormatJSON:
		data = jsonc.ToJSON(data)
		parser = json.Parser()
	case FormatYAML:
		parser = yaml.Parser()
	case FormatTOML:
		parser = toml.Parser()
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unsupported manifest format %q", format)
	}

	k := koanf.New(".")
	if err := k.Load(config.Bytes(data), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s manifest", format)
	}

	m := &Manifest{
		DefaultSourceDir: firstString(k, defaultSourceDirKeys),
		DefaultDestDir:   firstString(k, defaultDestDirKeys),
	}

	listKey := firstKey(k, templateListKeys)
	if listKey == "" {
		return m, nil
	}

	tables, err := tableList(k.Get(listKey))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigValid, "invalid %q list", listKey)
	}

	for i, table := range tables {
		entry, err := decodeEntry(table)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "invalid entry %s[%d]", listKey, i).
				WithDetail("index", i)
		}
		m.Templates = append(m.Templates, entry)
	}

	return m, nil
}

func decodeEntry(table map[string]interface{}) (Entry, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(table, ""), nil); err != nil {
		return Entry{}, err
	}

	entry := Entry{
		SourceFile: firstString(k, sourceFileKeys),
		SourceDir:  firstString(k, sourceDirKeys),
		DestDir:    firstString(k, destDirKeys),
		DestName:   firstString(k, destNameKeys),
	}
	if key := firstKey(k, resolveEnvKeys); key != "" {
		entry.ResolveFromEnvironment = k.Bool(key)
	}

	if entry.SourceFile == "" {
		return Entry{}, fmt.Errorf("missing required key %q", sourceFileKeys[0])
	}

	return entry, nil
}

func firstKey(k *koanf.Koanf, keys []string) string {
	for _, key := range keys {
		if k.Exists(key) {
			return key
		}
	}
	return ""
}

func firstString(k *koanf.Koanf, keys []string) string {
	if key := firstKey(k, keys); key != "" {
		return k.String(key)
	}
	return ""
}

// tableList normalises the decoded template list into plain maps.
func tableList(v interface{}) ([]map[string]interface{}, error) {
	switch list := v.(type) {
	case nil:
		return nil, nil
	case []map[string]interface{}:
		return list, nil
	case []interface{}:
		out := make([]map[string]interface{}, 0, len(list))
		for i, item := range list {
			table, ok := item.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("entry %d is a %T, expected an object", i, item)
			}
			out = append(out, table)
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected a list of objects, got %T", v)
}

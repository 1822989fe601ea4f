package manifest

import (
	"testing"

	"github.com/arthur-debert/templatize/pkg/errors"
	"github.com/arthur-debert/templatize/pkg/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wantFull = &Manifest{
	DefaultSourceDir: "templates",
	DefaultDestDir:   "out",
	Templates: []Entry{
		{SourceFile: "app.conf", DestName: "app.prod.conf"},
		{SourceFile: "secrets.env", SourceDir: "private", DestDir: "etc", ResolveFromEnvironment: true},
	},
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{
			name:   "json",
			format: FormatJSON,
			input: `{
  "defaultSourceDir": "templates",
  "defaultDestDir": "out",
  "templates": [
    {"sourceFile": "app.conf", "destName": "app.prod.conf"},
    {"sourceFile": "secrets.env", "sourceDir": "private", "destDir": "etc", "resolveFromEnvironment": true}
  ]
}`,
		},
		{
			name:   "jsonc_with_comments_and_trailing_commas",
			format: FormatJSON,
			input: `{
  // where templates live
  "defaultSourceDir": "templates",
  "defaultDestDir": "out", /* rendered output */
  "templates": [
    {"sourceFile": "app.conf", "destName": "app.prod.conf",},
    {"sourceFile": "secrets.env", "sourceDir": "private", "destDir": "etc", "resolveFromEnvironment": true},
  ],
}`,
		},
		{
			name:   "yaml",
			format: FormatYAML,
			input: `
defaultSourceDir: templates
defaultDestDir: out
templates:
  - sourceFile: app.conf
    destName: app.prod.conf
  - sourceFile: secrets.env
    sourceDir: private
    destDir: etc
    resolveFromEnvironment: true
`,
		},
		{
			name:   "toml",
			format: FormatTOML,
			input: `
defaultSourceDir = "templates"
defaultDestDir = "out"

[[templates]]
sourceFile = "app.conf"
destName = "app.prod.conf"

[[templates]]
sourceFile = "secrets.env"
sourceDir = "private"
destDir = "etc"
resolveFromEnvironment = true
`,
		},
		{
			name:   "legacy_keys",
			format: FormatJSON,
			input: `{
  "default_relative_dir": "templates",
  "default_dest_dir": "out",
  "files": [
    {"file_name": "app.conf", "alt_dest_name": "app.prod.conf"},
    {"file_name": "secrets.env", "relative_dir": "private", "dest_dir": "etc", "eval_as_env": true}
  ]
}`,
		},
		{
			name:   "oldest_keys",
			format: FormatJSON,
			input: `{
  "parent": "templates",
  "default_dest_dir": "out",
  "templates": [
    {"src": "app.conf", "alt_dest_name": "app.prod.conf"},
    {"src": "secrets.env", "relative_dir": "private", "dest": "etc", "eval_env": true}
  ]
}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input), tt.format)
			require.NoError(t, err)
			if diff := cmp.Diff(wantFull, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseDefaultsOnly(t *testing.T) {
	got, err := Parse([]byte(`{"defaultSourceDir": "tpl"}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "tpl", got.DefaultSourceDir)
	assert.Empty(t, got.DefaultDestDir)
	assert.Empty(t, got.Templates)

	got, err = Parse([]byte(`{}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, &Manifest{}, got)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
		code   errors.ErrorCode
	}{
		{"malformed_json", FormatJSON, `{"templates": [`, errors.ErrConfigParse},
		{"malformed_yaml", FormatYAML, "templates: [\n", errors.ErrConfigParse},
		{"malformed_toml", FormatTOML, "[[templates]\n", errors.ErrConfigParse},
		{"unknown_format", Format("ini"), "", errors.ErrConfigParse},
		{"missing_source_file", FormatJSON, `{"templates": [{"destDir": "out"}]}`, errors.ErrConfigValid},
		{"list_is_not_a_list", FormatJSON, `{"templates": "app.conf"}`, errors.ErrConfigValid},
		{"entry_is_not_an_object", FormatJSON, `{"templates": ["app.conf"]}`, errors.ErrConfigValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input), tt.format)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"m.json":         FormatJSON,
		"m.JSONC":        FormatJSON,
		"dir/m.yaml":     FormatYAML,
		"m.yml":          FormatYAML,
		"/abs/path.toml": FormatTOML,
	}
	for path, want := range tests {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("manifest.ini")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoad(t *testing.T) {
	mem := testutil.NewMemFS()
	mem.WriteFile(t, "/cfg/templatize.yml", "defaultDestDir: out\nfiles:\n  - sourceFile: a\n", 0644)
	mem.WriteFile(t, "/cfg/broken.json", `{"templates": [{}]}`, 0644)

	m, err := Load(mem.FS, "/cfg/templatize.yml")
	require.NoError(t, err)
	assert.Equal(t, "out", m.DefaultDestDir)
	assert.Equal(t, []Entry{{SourceFile: "a"}}, m.Templates)

	_, err = Load(mem.FS, "/cfg/missing.json")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))

	_, err = Load(mem.FS, "/cfg/broken.json")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	assert.Equal(t, "/cfg/broken.json", errors.GetErrorDetails(err)["path"])
}

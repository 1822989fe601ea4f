package template

import (
	stderrors "errors"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/templatize/pkg/errors"
	"github.com/arthur-debert/templatize/pkg/fields"
	"github.com/arthur-debert/templatize/pkg/logging"
	"github.com/arthur-debert/templatize/pkg/types"
)

// Spec describes a template before its content is loaded.
type Spec struct {
	FileName       string
	SourceDir      string
	DestDir        string
	DestName       string
	ResolveFromEnv bool
}

// Template is one render job: a source file plus where its output goes.
type Template struct {
	Spec

	fs      types.FS
	content string
}

// New creates a template and loads its content immediately. A missing or
// unreadable source is an error.
func New(fsys types.FS, fileName, sourceDir, destDir string) (*Template, error) {
	t := &Template{
		Spec: Spec{FileName: fileName, SourceDir: sourceDir, DestDir: destDir},
		fs:   fsys,
	}

	data, err := fsys.ReadFile(t.SourcePath())
	if err != nil {
		code := errors.ErrFileAccess
		if stderrors.Is(err, fs.ErrNotExist) {
			code = errors.ErrFileNotFound
		}
		return nil, errors.Wrapf(err, code, "failed to read template %s", t.SourcePath()).
			WithDetail("path", t.SourcePath())
	}
	t.content = string(data)

	return t, nil
}

// FromPath creates a template from a file path, using the file's directory
// as the source directory and leaving the destination unset.
func FromPath(fsys types.FS, path string) (*Template, error) {
	return New(fsys, filepath.Base(path), filepath.Dir(path), "")
}

// Declare creates a template without loading it. Content is read by
// ApplySourceDir once the source directory is final.
func Declare(fsys types.FS, spec Spec) *Template {
	return &Template{Spec: spec, fs: fsys}
}

// ApplySourceDir sets the source directory if none was given and re-reads
// the content. A failed read leaves the template empty, which makes
// Evaluate a no-op.
func (t *Template) ApplySourceDir(dir string) {
	if t.SourceDir == "" {
		t.SourceDir = dir
	}

	data, err := t.fs.ReadFile(t.SourcePath())
	if err != nil {
		logger := logging.GetLogger("template")
		logger.Debug().
			Err(err).
			Str("source", t.SourcePath()).
			Msg("template content unavailable, it will be skipped")
		t.content = ""
		return
	}
	t.content = string(data)
}

// ApplyDestDir sets the destination directory if none was given.
func (t *Template) ApplyDestDir(dir string) {
	if t.DestDir == "" {
		t.DestDir = dir
	}
}

// SourcePath returns the full path of the source file.
func (t *Template) SourcePath() string {
	return filepath.Join(t.SourceDir, t.FileName)
}

// DestPath returns where the rendered output is written. An empty
// destination directory means the current directory.
func (t *Template) DestPath() string {
	name := t.FileName
	if t.DestName != "" {
		name = t.DestName
	}
	return filepath.Join(t.destDir(), name)
}

func (t *Template) destDir() string {
	if t.DestDir == "" {
		return "."
	}
	return t.DestDir
}

// Loaded reports whether the template has content to render.
func (t *Template) Loaded() bool {
	return t.content != ""
}

// Render applies fields to the template content in order and returns the
// result. The stored content is not modified.
func (t *Template) Render(fieldSet fields.FieldSet, env Environment) (string, error) {
	text := t.content

	for _, f := range fieldSet {
		re, err := compilePlaceholder(f.Name)
		if err != nil {
			return "", err
		}
		text = re.ReplaceAllLiteralString(text, t.replacement(f, env))
	}

	return text, nil
}

func (t *Template) replacement(f fields.Field, env Environment) string {
	if !t.ResolveFromEnv {
		return f.Value
	}
	if v, ok := env.Lookup(f.Value); ok {
		return v
	}
	return f.Value
}

// Evaluate renders the template and writes the result, copying the source
// file's permission bits onto the output. A template without content is
// skipped without error.
func (t *Template) Evaluate(fieldSet fields.FieldSet, env Environment) error {
	logger := logging.GetLogger("template")

	if !t.Loaded() {
		logger.Debug().Str("source", t.SourcePath()).Msg("skipping template without content")
		return nil
	}

	text, err := t.Render(fieldSet, env)
	if err != nil {
		return err
	}

	destDir := t.destDir()
	if err := t.fs.MkdirAll(destDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create destination directory %s", destDir).
			WithDetail("path", destDir)
	}

	destPath := t.DestPath()

	var mode fs.FileMode
	copyMode := supportsPermissions()
	if copyMode {
		info, err := t.fs.Stat(t.SourcePath())
		if err != nil {
			return errors.Wrapf(err, errors.ErrPermission, "failed to read permissions of %s", t.SourcePath()).
				WithDetail("path", t.SourcePath())
		}
		mode = info.Mode() & permissionBits
	}

	file, err := t.fs.Create(destPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "failed to create %s", destPath).
			WithDetail("path", destPath)
	}

	if copyMode {
		if err := t.fs.Chmod(destPath, mode); err != nil {
			_ = file.Close()
			return errors.Wrapf(err, errors.ErrPermission, "failed to set permissions on %s", destPath).
				WithDetail("path", destPath).
				WithDetail("mode", mode.String())
		}
	}

	if _, err := io.WriteString(file, text); err != nil {
		_ = file.Close()
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", destPath).
			WithDetail("path", destPath)
	}
	if err := file.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", destPath).
			WithDetail("path", destPath)
	}

	logger.Debug().
		Str("source", t.SourcePath()).
		Str("dest", destPath).
		Int("fields", len(fieldSet)).
		Bool("env", t.ResolveFromEnv).
		Msg("rendered template")

	return nil
}

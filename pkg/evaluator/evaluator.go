package evaluator

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/templatize/pkg/errors"
	"github.com/arthur-debert/templatize/pkg/fields"
	"github.com/arthur-debert/templatize/pkg/logging"
	"github.com/arthur-debert/templatize/pkg/manifest"
	"github.com/arthur-debert/templatize/pkg/template"
	"github.com/arthur-debert/templatize/pkg/types"
)

// Evaluator is an ordered collection of templates with shared defaults.
type Evaluator struct {
	DefaultSourceDir string
	DefaultDestDir   string
	Templates        []*template.Template

	fs types.FS
}

// New creates an empty collection.
func New(fsys types.FS) *Evaluator {
	return &Evaluator{fs: fsys}
}

// FromDirectory scans path recursively. Every regular file becomes a
// template rendered in place: its destination is its own directory.
func FromDirectory(fsys types.FS, path string) (*Evaluator, error) {
	logger := logging.GetLogger("evaluator")

	e := New(fsys)
	err := e.walk(path, func(dir, name string) (*template.Template, error) {
		return template.New(fsys, name, dir, dir)
	})
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("dir", path).
		Int("templates", len(e.Templates)).
		Msg("discovered templates")

	return e, nil
}

// FromManifest builds a collection from the manifest at path. When the
// manifest lists no templates but names a default source directory, that
// directory is scanned instead. Defaults are then applied to every template.
func FromManifest(fsys types.FS, path string) (*Evaluator, error) {
	m, err := manifest.Load(fsys, path)
	if err != nil {
		return nil, err
	}
	return FromManifestData(fsys, m)
}

// FromManifestData builds a collection from an already decoded manifest.
func FromManifestData(fsys types.FS, m *manifest.Manifest) (*Evaluator, error) {
	logger := logging.GetLogger("evaluator")

	e := New(fsys)
	e.DefaultSourceDir = m.DefaultSourceDir
	e.DefaultDestDir = m.DefaultDestDir

	for _, entry := range m.Templates {
		e.Templates = append(e.Templates, template.Declare(fsys, template.Spec{
			FileName:       entry.SourceFile,
			SourceDir:      entry.SourceDir,
			DestDir:        entry.DestDir,
			DestName:       entry.DestName,
			ResolveFromEnv: entry.ResolveFromEnvironment,
		}))
	}

	if len(e.Templates) == 0 {
		if e.DefaultSourceDir == "" {
			return e, nil
		}
		err := e.walk(e.DefaultSourceDir, func(dir, name string) (*template.Template, error) {
			return template.FromPath(fsys, filepath.Join(dir, name))
		})
		if err != nil {
			return nil, err
		}
		logger.Debug().
			Str("dir", e.DefaultSourceDir).
			Int("templates", len(e.Templates)).
			Msg("discovered templates from default source directory")
	}

	e.applyDefaults()

	return e, nil
}

// applyDefaults fills empty directories on every template and reloads its
// content from the final source location.
func (e *Evaluator) applyDefaults() {
	for _, t := range e.Templates {
		t.ApplySourceDir(e.DefaultSourceDir)
		t.ApplyDestDir(e.DefaultDestDir)
	}
}

// Add appends a template to the collection.
func (e *Evaluator) Add(t *template.Template) {
	e.Templates = append(e.Templates, t)
}

// Evaluate renders every template in order and stops at the first failure.
func (e *Evaluator) Evaluate(fieldSet fields.FieldSet, env template.Environment) error {
	logger := logging.GetLogger("evaluator")
	done := logging.LogOperationStart(logger, "evaluate")
	defer done()

	for i, t := range e.Templates {
		if err := t.Evaluate(fieldSet, env); err != nil {
			logger.Error().
				Err(err).
				Int("index", i).
				Str("source", t.SourcePath()).
				Msg("template evaluation failed")
			return err
		}
	}

	logger.Info().
		Int("templates", len(e.Templates)).
		Int("fields", len(fieldSet)).
		Msg("evaluated templates")

	return nil
}

// SetResolveFromEnv forces environment resolution on every template.
func (e *Evaluator) SetResolveFromEnv(on bool) {
	for _, t := range e.Templates {
		t.ResolveFromEnv = on
	}
}

type templateFactory func(dir, name string) (*template.Template, error)

// walk descends into every directory below root and hands each regular
// file to newTemplate. Symlinks to regular files count as files; symlinked
// directories and dangling links are skipped so a link cycle cannot recurse.
// Entries are visited in the order ReadDir returns them.
func (e *Evaluator) walk(root string, newTemplate templateFactory) error {
	entries, err := e.fs.ReadDir(root)
	if err != nil {
		code := errors.ErrFileAccess
		if stderrors.Is(err, fs.ErrNotExist) {
			code = errors.ErrFileNotFound
		}
		return errors.Wrapf(err, code, "failed to read template directory %s", root).
			WithDetail("path", root)
	}

	for _, entry := range entries {
		mode := entry.Type()
		if mode&fs.ModeSymlink != 0 {
			info, err := e.fs.Stat(filepath.Join(root, entry.Name()))
			if err != nil || info.IsDir() {
				continue
			}
			mode = info.Mode().Type()
		}

		switch {
		case mode.IsDir():
			if err := e.walk(filepath.Join(root, entry.Name()), newTemplate); err != nil {
				return err
			}
		case mode.IsRegular():
			t, err := newTemplate(root, entry.Name())
			if err != nil {
				return err
			}
			e.Templates = append(e.Templates, t)
		}
	}

	return nil
}

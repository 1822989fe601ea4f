package cli

import (
	"github.com/arthur-debert/templatize/pkg/errors"
	"github.com/arthur-debert/templatize/pkg/evaluator"
	"github.com/arthur-debert/templatize/pkg/fields"
	"github.com/arthur-debert/templatize/pkg/types"
	"github.com/spf13/cobra"
)

// sourceFlags are the flags selecting where templates come from.
type sourceFlags struct {
	manifest string
	dir      string
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.manifest, "manifest", "m", "", MsgFlagManifest)
	cmd.Flags().StringVarP(&s.dir, "dir", "d", "", MsgFlagDir)
}

// resolve merges the flags over the configured defaults. A flag given on
// the command line replaces both configured sources.
func (s *sourceFlags) resolve(cmd *cobra.Command, a *app) (manifest, dir string, err error) {
	manifest, dir = a.cfg.Manifest, a.cfg.Dir
	if cmd.Flags().Changed("manifest") || cmd.Flags().Changed("dir") {
		manifest, dir = s.manifest, s.dir
	}

	switch {
	case manifest != "" && dir != "":
		return "", "", errors.New(errors.ErrInvalidInput, MsgErrBothSources)
	case manifest == "" && dir == "":
		return "", "", errors.New(errors.ErrInvalidInput, MsgErrNoSource)
	}
	return manifest, dir, nil
}

// build creates the template collection the flags point at.
func (s *sourceFlags) build(cmd *cobra.Command, a *app, fsys types.FS) (*evaluator.Evaluator, error) {
	manifest, dir, err := s.resolve(cmd, a)
	if err != nil {
		return nil, err
	}
	if manifest != "" {
		return evaluator.FromManifest(fsys, manifest)
	}
	return evaluator.FromDirectory(fsys, dir)
}

// loadFields reads a field file, or standard input for "-".
func loadFields(cmd *cobra.Command, fsys types.FS, path string) (fields.FieldSet, error) {
	if path == "-" {
		return fields.FromReader(cmd.InOrStdin())
	}
	return fields.FromFile(fsys, path)
}

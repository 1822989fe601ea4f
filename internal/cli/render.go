package cli

import (
	"fmt"

	"github.com/arthur-debert/templatize/pkg/errors"
	"github.com/arthur-debert/templatize/pkg/template"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		source     sourceFlags
		fieldsPath string
		resolveEnv bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: MsgRenderShort,
		Long:  MsgRenderLong,
		Example: `  # Render every template listed in a manifest
  templatize render --manifest templatize.json --fields values.json

  # Render a directory in place, resolving values from the environment
  templatize render --dir ./conf --fields values.yaml --env

  # Preview without touching the filesystem
  templatize render -m templatize.yaml -f values.json --dry-run -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("fields") {
				fieldsPath = a.cfg.Fields
			}
			if fieldsPath == "" {
				return errors.New(errors.ErrInvalidInput, MsgErrNoFields)
			}
			if !cmd.Flags().Changed("env") {
				resolveEnv = a.cfg.Env
			}

			fsys := a.fs()

			fieldSet, err := loadFields(cmd, fsys, fieldsPath)
			if err != nil {
				return err
			}

			e, err := source.build(cmd, a, fsys)
			if err != nil {
				return err
			}
			if resolveEnv {
				e.SetResolveFromEnv(true)
			}

			log.Info().
				Str("fields", fieldsPath).
				Int("field_count", len(fieldSet)).
				Int("templates", len(e.Templates)).
				Bool("dry_run", a.dryRun).
				Msg("Rendering templates")

			if err := e.Evaluate(fieldSet, template.EnvironmentFromOS()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			p := printerFor(out)
			if a.dryRun {
				_, _ = fmt.Fprintln(out, p.Warning(MsgDryRunNotice))
				writePlanText(out, p, e.Plan())
			}
			_, _ = fmt.Fprint(out, p.Success(fmt.Sprintf(MsgRenderedFormat, rendered(e.Plan()))))

			return nil
		},
	}

	source.register(cmd)
	cmd.Flags().StringVarP(&fieldsPath, "fields", "f", "", MsgFlagFields)
	cmd.Flags().BoolVar(&resolveEnv, "env", false, MsgFlagEnv)

	return cmd
}

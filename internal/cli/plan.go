package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arthur-debert/templatize/pkg/errors"
	"github.com/arthur-debert/templatize/pkg/evaluator"
	"github.com/arthur-debert/templatize/pkg/style"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// planDocument is the structured form of the plan. TOML needs a table at
// the top level, the other encoders follow for a uniform shape.
type planDocument struct {
	Templates []evaluator.PlanEntry `json:"templates" yaml:"templates" toml:"templates"`
}

func newPlanCmd(a *app) *cobra.Command {
	var (
		source sourceFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: MsgPlanShort,
		Example: `  templatize plan --manifest templatize.toml
  templatize plan --dir ./conf --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Format
			}

			e, err := source.build(cmd, a, a.fs())
			if err != nil {
				return err
			}

			return writePlan(cmd.OutOrStdout(), format, e.Plan())
		},
	}

	source.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "o", "text", MsgFlagFormat)

	return cmd
}

func writePlan(w io.Writer, format string, plan []evaluator.PlanEntry) error {
	doc := planDocument{Templates: plan}

	var (
		data []byte
		err  error
	)
	switch format {
	case "", "text":
		writePlanText(w, printerFor(w), plan)
		return nil
	case "json":
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	case "yaml", "yml":
		data, err = yaml.Marshal(doc)
	case "toml":
		data, err = toml.Marshal(doc)
	default:
		return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownFormat, format).
			WithDetail("format", format)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to encode plan as %s", format)
	}

	_, err = w.Write(data)
	return err
}

func writePlanText(w io.Writer, p *style.Printer, plan []evaluator.PlanEntry) {
	if len(plan) == 0 {
		_, _ = fmt.Fprintln(w, p.Muted(MsgNoTemplates))
		return
	}
	for _, entry := range plan {
		line := fmt.Sprintf(MsgPlanItemFormat, p.Key(entry.Source), p.Value(entry.Dest))
		if entry.Env {
			line += p.Muted(MsgPlanEnvTag)
		}
		if entry.Skip {
			line += p.Muted(MsgPlanSkipTag)
		}
		_, _ = fmt.Fprintln(w, line)
	}
}

// rendered counts the entries that produce output.
func rendered(plan []evaluator.PlanEntry) int {
	n := 0
	for _, entry := range plan {
		if !entry.Skip {
			n++
		}
	}
	return n
}

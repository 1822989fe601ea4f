package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFieldsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fields PATH",
		Short: MsgFieldsShort,
		Example: `  templatize fields values.json
  echo '{"db": {"host": "localhost"}}' | templatize fields -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fieldSet, err := loadFields(cmd, a.fs(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			p := printerFor(out)
			for _, f := range fieldSet {
				_, _ = fmt.Fprintf(out, "%s=%s\n", p.Key(f.Name), p.Value(f.Value))
			}
			return nil
		},
	}
}

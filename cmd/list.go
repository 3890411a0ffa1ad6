package cmd

import (
	"fmt"
	"strings"

	"prtl/internal/app"
	"prtl/internal/cli"

	"github.com/spf13/cobra"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var (
		outputFormat string
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every stored portal",
		Long: `List every stored portal, sorted by tag.

Output formats:
  text   one line per portal, the default tag marked (default)
  table  bordered table
  plain  borderless columns for grep and awk
  json   object mapping tag to path
  yaml   mapping of tag to path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := cli.OutputFormat(outputFormat)
			if asJSON {
				format = cli.OutputFormatJSON
			}
			return runCommand(cmd, opts, app.ListCommand{Format: format})
		},
	}

	names := make([]string, len(cli.ValidOutputFormats))
	for i, f := range cli.ValidOutputFormats {
		names[i] = string(f)
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", string(cli.OutputFormatText),
		fmt.Sprintf("Output format (%s)", strings.Join(names, ", ")))
	cmd.Flags().BoolVar(&asJSON, "json", false, "Shorthand for --output json")
	cmd.MarkFlagsMutuallyExclusive("output", "json")
	_ = cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(names, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

package cmd

import (
	"prtl/internal/app"

	"github.com/spf13/cobra"
)

func newGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get [tag]",
		Short: "Print the path stored under a tag",
		Long: `Print the path stored under [tag] followed by a newline.

Without a tag the configured default tag is used. Nothing is printed to
stdout when the tag is unknown, so the output is safe to pass to cd:

  cd "$(prtl get work)"`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeTagArg(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			var tag string
			if len(args) == 1 {
				tag = args[0]
			}
			return runCommand(cmd, opts, app.GetCommand{Tag: tag})
		},
	}
}

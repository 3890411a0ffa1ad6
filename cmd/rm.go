package cmd

import (
	"prtl/internal/app"

	"github.com/spf13/cobra"
)

func newRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "rm <tag>",
		Aliases:           []string{"remove", "delete"},
		Short:             "Forget the portal stored under a tag",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeTagArg(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, opts, app.RemoveCommand{Tag: args[0]})
		},
	}
}

package cmd

import (
	"prtl/internal/app"

	"github.com/spf13/cobra"
)

func newSetCmd(opts *rootOptions) *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "set <path>",
		Short: "Store a directory under a tag",
		Long: `Store the canonical absolute form of <path> under a tag.

The path must exist. Relative paths are resolved against the current
directory and symlinks are followed. Without --tag the portal is stored
under the configured default tag. Setting an existing tag overwrites it.`,
		Example: `  prtl set . -t work
  prtl set ../other --tag other
  prtl set /srv/data`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, opts, app.SetCommand{Path: args[0], Tag: tag})
		},
	}

	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Tag to store the path under (default: the configured default tag)")
	_ = cmd.RegisterFlagCompletionFunc("tag", completeTags(opts))

	return cmd
}

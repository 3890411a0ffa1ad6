package cmd

import (
	"prtl/internal/app"
	"prtl/internal/shell"

	"github.com/spf13/cobra"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	kinds := make([]string, 0, len(shell.SupportedKinds()))
	for _, k := range shell.SupportedKinds() {
		kinds = append(kinds, k.String())
	}

	return &cobra.Command{
		Use:   "ez-init [shell]",
		Short: "Install the 'p' shorthand into your shell profile",
		Long: `Install a small shell function named 'p' that wraps prtl.

'p get <tag>' changes the current shell's directory to the stored path
and 'p set <path> -t <tag>' stores one. Other subcommands need the full
prtl binary.

Your home directory is searched for matching profile files and you are
asked which one to use. The function is written to a script next to the
chosen profile and a 'source' line is appended to the profile.

Supported shells: bash (default), zsh.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			return runCommand(cmd, opts, app.InitCommand{Shell: name})
		},
	}
}

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"prtl/internal/app"
	"prtl/internal/cli"
	"prtl/internal/config"
	"prtl/internal/portal"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (invalid path, invalid arguments, IO failure).
	ExitCodeError = 1
	// ExitCodeNotFound indicates the requested tag has no portal.
	ExitCodeNotFound = 2
	// ExitCodeConfig indicates the config file could not be loaded or stored.
	ExitCodeConfig = 3
)

// rootOptions holds the persistent flags shared by all subcommands.
type rootOptions struct {
	configPath string
	debug      bool
	quiet      bool
}

// newRootCmd builds the full command tree. Each call returns an independent
// tree with its own flag state.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:     "prtl",
		Version: appVersion,
		Short:   "Bookmark directories by tag and jump back to them",
		Long: `prtl associates short tags with directories ("portals") so you can
get back to them later.

  prtl set . -t work     # remember the current directory as "work"
  prtl get work          # print the path stored under "work"
  prtl list              # show every portal

A child process cannot change your shell's directory, so install the 'p'
shorthand with 'prtl ez-init' and use 'p get work' to jump.`,
		// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
		SilenceUsage: true,
		// Errors are printed once by Execute, always to stderr.
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config-path", defaultConfigPath(), "Configuration directory (env: "+config.ConfigDirEnvVar+")")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress non-essential output")

	root.AddCommand(newSetCmd(opts))
	root.AddCommand(newGetCmd(opts))
	root.AddCommand(newListCmd(opts))
	root.AddCommand(newRemoveCmd(opts))
	root.AddCommand(newInitCmd(opts))
	root.AddCommand(newVersionCmd())

	return root
}

// appVersion is injected by main at startup.
var appVersion = "dev"

// rootCmd represents the base command for the prtl application.
var rootCmd = newRootCmd()

// defaultConfigPath returns the config directory, or an empty string when
// it cannot be determined so the error surfaces when a command runs.
func defaultConfigPath() string {
	dir, err := config.DefaultConfigDir()
	if err != nil {
		return ""
	}
	return dir
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return appVersion
}

// Execute is the main entry point for the CLI application.
// It runs the root command, prints any error to stderr and exits with the
// matching exit code.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "prtl version %s\n" .Version}}`)

	if code := executeRoot(rootCmd); code != ExitCodeSuccess {
		os.Exit(code)
	}
}

// executeRoot runs root and reports a failure once on its stderr.
func executeRoot(root *cobra.Command) int {
	err := root.Execute()
	if err != nil {
		printError(root.ErrOrStderr(), err)
	}
	return getExitCode(err)
}

// printError writes err as a single red line.
func printError(w io.Writer, err error) {
	fmt.Fprintln(w, cli.FormatError(err))
}

// getExitCode determines the appropriate exit code based on the error type.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}

	var notFound *portal.TagNotFoundError
	if errors.As(err, &notFound) {
		return ExitCodeNotFound
	}

	var loadErr *portal.LoadError
	if errors.As(err, &loadErr) {
		return ExitCodeConfig
	}

	var storeErr *portal.StoreError
	if errors.As(err, &storeErr) {
		return ExitCodeConfig
	}

	return ExitCodeError
}

// newApplication builds the application for one command invocation, wiring
// the command's output streams.
func newApplication(cmd *cobra.Command, opts *rootOptions) (*app.Application, error) {
	if opts.configPath == "" {
		return nil, fmt.Errorf("could not determine config directory; pass --config-path or set %s", config.ConfigDirEnvVar)
	}
	cfg := app.NewConfig(opts.debug, opts.configPath)
	cfg.Quiet = opts.quiet
	cfg.Stdout = cmd.OutOrStdout()
	cfg.Stderr = cmd.ErrOrStderr()
	return app.NewApplication(cfg)
}

// runCommand executes one typed command as a load, dispatch, store transaction.
func runCommand(cmd *cobra.Command, opts *rootOptions, command app.Command) error {
	application, err := newApplication(cmd, opts)
	if err != nil {
		return err
	}
	return application.Run(cmd.Context(), command)
}

// completeTags provides shell completion for stored tags. It ignores the
// positional arguments, so it also serves flags such as `set . -t`.
func completeTags(opts *rootOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if opts.configPath == "" {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		cfg, err := portal.NewStorage(opts.configPath).Load()
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return cfg.Tags(), cobra.ShellCompDirectiveNoFileComp
	}
}

// completeTagArg completes a tag only as the first positional argument.
func completeTagArg(opts *rootOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	tags := completeTags(opts)
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return tags(cmd, args, toComplete)
	}
}

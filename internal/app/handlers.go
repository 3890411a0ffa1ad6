package app

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"prtl/internal/cli"
	"prtl/internal/portal"
	"prtl/internal/resolver"
	"prtl/internal/shell"
	"prtl/pkg/logging"

	"github.com/briandowns/spinner"
)

func (a *Application) runSet(cfg *portal.PortalConfig, c SetCommand) error {
	canonical, err := resolver.Canonicalize(c.Path)
	if err != nil {
		return err
	}

	tag := cfg.ResolveTag(c.Tag)
	cfg.Put(tag, canonical)
	logging.Info("App", "Set portal %q to %s", tag, canonical)
	return nil
}

func (a *Application) runGet(cfg *portal.PortalConfig, c GetCommand) error {
	tag := cfg.ResolveTag(c.Tag)
	path, ok := cfg.Get(tag)
	if !ok {
		return &portal.TagNotFoundError{Tag: tag}
	}
	_, err := fmt.Fprintln(a.config.Stdout, path)
	return err
}

func (a *Application) runList(cfg *portal.PortalConfig, c ListCommand) error {
	format := c.Format
	if format == "" {
		format = cli.OutputFormatText
	}
	if err := cli.ValidateOutputFormat(string(format)); err != nil {
		return err
	}
	return cli.NewLister(format, a.config.Stdout).Render(cfg)
}

func (a *Application) runRemove(cfg *portal.PortalConfig, c RemoveCommand) error {
	tag := cfg.ResolveTag(c.Tag)
	if !cfg.Delete(tag) {
		return &portal.TagNotFoundError{Tag: tag}
	}
	if !a.config.Quiet {
		fmt.Fprintf(a.config.Stderr, "Removed prtl with tag %s\n", tag)
	}
	return nil
}

func (a *Application) runInit(ctx context.Context, c InitCommand) error {
	name := c.Shell
	if strings.TrimSpace(name) == "" {
		name = string(shell.DefaultKind)
	}

	kind, ok := shell.ParseKind(name)
	if !ok {
		supported := make([]string, 0, len(shell.SupportedKinds()))
		for _, k := range shell.SupportedKinds() {
			supported = append(supported, k.String())
		}
		fmt.Fprintln(a.config.Stderr, cli.FormatWarning(fmt.Sprintf(
			"shell %q is not supported. Supported shells: %s", name, strings.Join(supported, ", "))))
		return nil
	}

	searcher := a.config.Searcher
	if searcher == nil {
		locator, err := shell.NewLocator()
		if err != nil {
			return err
		}
		searcher = locator
	}
	if !a.config.Quiet {
		searcher = &spinnerSearcher{inner: searcher, cfg: a.config}
	}

	prompter := a.config.Prompter
	if prompter == nil {
		rp, err := shell.NewReadlinePrompter()
		if err != nil {
			return err
		}
		defer func() {
			if err := rp.Close(); err != nil {
				logging.Error("App", err, "Failed to release the terminal")
			}
		}()
		prompter = rp
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	result, err := shell.Setup(kind, searcher, prompter, shell.NewInstaller())
	if err != nil {
		return err
	}

	fmt.Fprintln(a.config.Stderr, cli.FormatSuccess(fmt.Sprintf(
		"Installed the '%s' shorthand into %s", shell.DefaultFuncName, result.Profile)))
	fmt.Fprintf(a.config.Stderr, "Restart your shell or run:\n  source %s\n", result.Profile)
	return nil
}

// spinnerSearcher shows a spinner on stderr while the wrapped searcher runs.
type spinnerSearcher struct {
	inner shell.ProfileSearcher
	cfg   *Config
}

func (s *spinnerSearcher) Locate(kind shell.Kind) iter.Seq[string] {
	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(s.cfg.Stderr))
	sp.Suffix = fmt.Sprintf(" Searching for %s profiles...", kind)
	sp.Start()
	paths := slices.Collect(s.inner.Locate(kind))
	sp.Stop()
	return slices.Values(paths)
}

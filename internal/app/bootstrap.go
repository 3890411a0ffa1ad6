package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"prtl/internal/cli"
	"prtl/internal/config"
	"prtl/internal/portal"
	"prtl/pkg/logging"
)

// Application runs prtl commands against one portal store.
//
// Every Run is a single transaction: load the config, apply the command in
// memory, store the config. The config value is passed explicitly through
// the command handlers; nothing is cached between runs.
//
// Example usage:
//
//	cfg := app.NewConfig(false, configDir)
//	application, err := app.NewApplication(cfg)
//	if err != nil {
//	    return err
//	}
//	return application.Run(ctx, app.GetCommand{Tag: "work"})
type Application struct {
	config  *Config
	storage *portal.Storage
}

// NewApplication creates an application from cfg and configures logging.
// Logging goes to cfg.Stderr at warn level, the level named by PRTL_LOG_LEVEL,
// or debug level when cfg.Debug is set.
func NewApplication(cfg *Config) (*Application, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if strings.TrimSpace(cfg.ConfigPath) == "" {
		return nil, errors.New("config path is required")
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}

	appLogLevel := logging.LevelWarn
	if name := os.Getenv(config.LogLevelEnvVar); name != "" {
		level, ok := logging.ParseLevel(name)
		if !ok {
			fmt.Fprintln(cfg.Stderr, cli.FormatWarning(fmt.Sprintf("ignoring unknown %s %q", config.LogLevelEnvVar, name)))
		}
		appLogLevel = level
	}
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}
	var logOutput io.Writer = cfg.Stderr
	if cfg.Quiet && !cfg.Debug {
		logOutput = io.Discard
	}
	logging.InitForCLI(appLogLevel, logOutput)

	return &Application{
		config:  cfg,
		storage: portal.NewStorage(cfg.ConfigPath),
	}, nil
}

// Storage returns the store the application reads and writes.
func (a *Application) Storage() *portal.Storage {
	return a.storage
}

// Run executes cmd as one load, dispatch, store sequence.
//
// The config is stored after every successful command, read-only ones
// included, matching the behaviour users of earlier versions rely on. A
// failing command returns before the store, so nothing it touched is
// persisted.
func (a *Application) Run(ctx context.Context, cmd Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg, err := a.storage.Load()
	if err != nil {
		logging.Debug("App", "Failed to load config: %v", err)
		return err
	}

	if err := a.dispatch(ctx, cfg, cmd); err != nil {
		logging.Debug("App", "Command %T failed: %v", cmd, err)
		return err
	}

	if err := a.storage.Store(cfg); err != nil {
		logging.Debug("App", "Failed to store config: %v", err)
		return err
	}
	return nil
}

func (a *Application) dispatch(ctx context.Context, cfg *portal.PortalConfig, cmd Command) error {
	switch c := cmd.(type) {
	case SetCommand:
		return a.runSet(cfg, c)
	case GetCommand:
		return a.runGet(cfg, c)
	case ListCommand:
		return a.runList(cfg, c)
	case RemoveCommand:
		return a.runRemove(cfg, c)
	case InitCommand:
		return a.runInit(ctx, c)
	case nil:
		return errors.New("no command given")
	default:
		return fmt.Errorf("unsupported command %T", cmd)
	}
}

package main

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/scx/internal/shared"
	"github.com/desertthunder/scx/internal/soundcloud"
	"github.com/urfave/cli/v3"
)

const defaultConfigPath = "config.toml"

func main() {
	logger := shared.NewLogger(nil)
	runner := NewRunner(RunnerOpts{Logger: logger})

	err := newApp(runner).Run(context.Background(), os.Args)
	if cerr := runner.Close(); cerr != nil {
		logger.Warn("failed to close database", "error", cerr)
	}

	if err == nil {
		return
	}

	var apiErr *soundcloud.RemoteAPIError
	switch {
	case errors.Is(err, shared.ErrNotImplemented):
		logger.Warn("not implemented")
		os.Exit(0)
	case errors.As(err, &apiErr) && !apiErr.Transport():
		logger.Fatal("soundcloud rejected the request", "status", apiErr.StatusCode, "url", apiErr.URL, "message", apiErr.Message)
	default:
		logger.Fatalf("application error: %v", err)
	}
}

func newApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "scx",
		Usage:   "Authorize, inspect and upload to SoundCloud from the terminal",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   defaultConfigPath,
				Sources: cli.EnvVars("SCX_CONFIG"),
			},
			&cli.BoolFlag{
				Name:    "sandbox",
				Usage:   "Use the sandbox-soundcloud.com hosts",
				Sources: cli.EnvVars("SCX_SANDBOX"),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
		},
		Before:   r.Before,
		Commands: r.register(),
	}
}

// Before loads configuration and applies global flags ahead of every command.
func (r *Runner) Before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.Bool("verbose") {
		shared.SetLogLevel(r.logger, log.DebugLevel)
	}

	path := cmd.String("config")
	r.configPath = path

	if !r.configFixed {
		if _, err := os.Stat(path); err == nil {
			config, err := shared.LoadConfig(path)
			if err != nil {
				return ctx, err
			}
			r.config = config
			r.logger.Debug("loaded config", "path", path)
		} else {
			r.logger.Debug("config file not found, using defaults", "path", path)
		}
	}

	if cmd.IsSet("sandbox") {
		sandbox := cmd.Bool("sandbox")
		r.config.Credentials.SoundCloud.Sandbox = sandbox
		if r.client != nil {
			r.client.SetSandbox(sandbox)
		}
	}

	return ctx, nil
}

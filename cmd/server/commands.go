package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/phrazzld/taskio-api/internal/config"
	"github.com/phrazzld/taskio-api/internal/platform/logger"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// cliOptions holds the persistent flags shared by every command.
type cliOptions struct {
	configFile  string
	envFile     string
	watchConfig bool
}

func (o *cliOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadWithOptions(config.Options{
		ConfigFile: o.configFile,
		EnvFile:    o.envFile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:           "taskio-server",
		Short:         "Taskio task and work-log API server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "path to a YAML config file (default: taskio.yaml in . or ./config)")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "path to a dotenv file (default: .env if present)")

	root.AddCommand(
		newServeCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)
	return root
}

func newServeCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			log, err := logger.SetupWithWriter(cfg.Server, cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("failed to set up logger: %w", err)
			}
			log.Info("server configuration loaded",
				"port", cfg.Server.Port,
				"log_level", cfg.Server.LogLevel,
				"api_prefix", cfg.Server.APIPrefix,
				"rate_limit", cfg.RateLimit.Enabled,
				"version", version)

			if opts.watchConfig {
				watchLogLevel(opts.configFile, log)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app, err := newApplication(cfg, log)
			if err != nil {
				return err
			}
			return app.Run(ctx)
		},
	}
	cmd.Flags().BoolVar(&opts.watchConfig, "watch-config", false, "reload the log level when the config file changes")
	return cmd
}

// watchLogLevel applies log level changes from the config file while the
// server runs.
func watchLogLevel(configFile string, log *slog.Logger) {
	err := config.Watch(configFile,
		func(cfg *config.Config) {
			if err := logger.SetLevel(cfg.Server.LogLevel); err != nil {
				log.Warn("ignoring invalid log level from config reload", "error", err)
				return
			}
			log.Info("log level reloaded", "log_level", cfg.Server.LogLevel)
		},
		func(err error) {
			log.Warn("config reload rejected", "error", err)
		})

	switch {
	case errors.Is(err, config.ErrNoConfigFile):
		log.Warn("--watch-config given but no config file is in use")
	case err != nil:
		log.Warn("config watch disabled", "error", err)
	default:
		log.Info("watching config file for log level changes")
	}
}

func newConfigCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			out, err := cfg.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = io.WriteString(cmd.OutOrStdout(), version+"\n")
		},
	}
}

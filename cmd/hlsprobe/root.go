package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aleister1102/hlsprobe/internal/config"
	"github.com/aleister1102/hlsprobe/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// errNoLinks marks a run that finished cleanly but found nothing.
var errNoLinks = errors.New("no m3u8 links found")

const (
	exitError   = 1
	exitNoLinks = 2
)

type rootOptions struct {
	configPath string
	logLevel   string
}

// runtimeEnv is the loaded configuration and logger shared by subcommands.
type runtimeEnv struct {
	cfg    *config.GlobalConfig
	logger zerolog.Logger
}

// NewRootCmd creates the root command for hlsprobe.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "hlsprobe",
		Short: "Find HLS manifest links on web pages",
		Long: `hlsprobe loads a page in a headless Chromium, watches its network traffic
and scans its scripts, player objects and markup for .m3u8 manifest links.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML or JSON config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Override the configured log level")

	cmd.AddCommand(NewServeCmd(opts))
	cmd.AddCommand(NewExtractCmd(opts))
	cmd.AddCommand(NewScanCmd(opts))

	return cmd
}

// loadRuntime loads and validates configuration, then builds the logger.
func loadRuntime(opts *rootOptions) (*runtimeEnv, error) {
	cfg, err := config.LoadGlobalConfig(opts.configPath, zerolog.Nop())
	if err != nil {
		return nil, err
	}

	if opts.logLevel != "" {
		cfg.LogConfig.LogLevel = opts.logLevel
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	zLogger, err := logger.New(cfg.LogConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &runtimeEnv{cfg: cfg, logger: zLogger}, nil
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if errors.Is(err, errNoLinks) {
		return exitNoLinks
	}
	return exitError
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

package main

import (
	"os/signal"
	"syscall"

	"github.com/aleister1102/hlsprobe/internal/extractor"
	"github.com/aleister1102/hlsprobe/internal/server"
	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command.
func NewServeCmd(opts *rootOptions) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP extraction endpoint",
		Long: `Serve GET /api/extract?url=... and POST /api/extract {"url": "..."}.
Every request renders the page in its own browser session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := loadRuntime(opts)
			if err != nil {
				return err
			}
			if listen != "" {
				env.cfg.ServerConfig.ListenAddress = listen
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			ext := extractor.NewExtractor(
				extractor.NewRodLauncher(env.cfg.BrowserConfig, env.logger),
				env.cfg.BrowserConfig,
				env.cfg.ExtractorConfig,
				env.logger,
			)
			return server.NewServer(env.cfg.ServerConfig, ext, env.logger).Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "Listen address, overrides server.listen_address")
	return cmd
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/server"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long:  `Start an HTTP server that exposes the resume analysis endpoints.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), opts, "stdout")
			if err != nil {
				return err
			}
			defer a.Close()

			srv := server.New(server.Config{
				Port:         a.cfg.Server.Port,
				Version:      version,
				StaticDir:    a.cfg.Server.StaticDir,
				ReadTimeout:  a.cfg.Server.ReadTimeout,
				WriteTimeout: a.cfg.Server.WriteTimeout,
				RateLimit:    a.cfg.RateLimiter(),
			}, server.Dependencies{
				Analyzer: a.analyzer,
				Backend:  a.backend,
				Metrics:  a.metrics,
				Logger:   a.logger,
			})
			return srv.Start(cmd.Context())
		},
	}

	cmd.Flags().Int("port", 8000, "Port to listen on")
	cmd.Flags().String("static-dir", "", "Directory served under /static/")
	_ = opts.viper.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	_ = opts.viper.BindPFlag("server.static-dir", cmd.Flags().Lookup("static-dir"))

	return cmd
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/site-server/internal/config"
	"github.com/preston-bernstein/site-server/internal/logging"
	"github.com/preston-bernstein/site-server/internal/server"
)

type rootOptions struct {
	envFiles []string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "site-server",
		Short:        "Serve the client bundle configured from the environment",
		Version:      appVersion,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", []string{".env"},
		"dotenv files to read before the process environment (earlier files win)")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	})
	root.AddCommand(newConfigCmd(opts))
	return root
}

func (o *rootOptions) snapshot() (*config.Snapshot, error) {
	snap, err := config.LoadSnapshot(o.envFiles...)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}
	return snap, nil
}

func runServe(parent context.Context, opts *rootOptions) error {
	snap, err := opts.snapshot()
	if err != nil {
		return err
	}
	cfg, loadErr := config.Load(snap)

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: cfg.ServiceName,
		Version: appVersion,
	})
	if loadErr != nil {
		logging.Error(logger, "invalid configuration", loadErr)
		return loadErr
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"rechub/internal/catalog"
	"rechub/internal/logging"
	"rechub/internal/poster/cache"
	"rechub/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the recommendation web server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			store, err := cache.Open(cfg.CacheDBPath())
			if err != nil {
				return fmt.Errorf("open poster cache: %w", err)
			}
			defer store.Close()

			resolver, err := newResolver(cfg, store, logger)
			if err != nil {
				return err
			}

			library := server.NewLibrary()
			if cat, err := catalog.Load(cfg.Paths.DataFile); err != nil {
				if !errors.Is(err, fs.ErrNotExist) {
					logger.Warn("catalog unusable, starting unloaded",
						logging.String("path", cfg.Paths.DataFile),
						logging.Error(err))
				}
			} else {
				library.Replace(cat)
				logger.Info("catalog loaded",
					logging.String("path", cfg.Paths.DataFile),
					logging.Int("items", cat.Len()))
			}

			srv, err := server.New(cfg, library, resolver, logger)
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}

			runCtx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return srv.Start(runCtx)
		},
	}
}

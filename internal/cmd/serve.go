package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nikolayk812/klimatshop/internal/backup"
	"github.com/nikolayk812/klimatshop/internal/config"
	"github.com/nikolayk812/klimatshop/internal/notify"
	"github.com/nikolayk812/klimatshop/internal/repository"
	"github.com/nikolayk812/klimatshop/internal/server"
	"github.com/nikolayk812/klimatshop/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the shop HTTP API server",
	Long: `Start the HTTP server which provides:
- REST API for products, cart, orders, feedback and projects
- Backup management endpoints
- Health check endpoint`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("zap.NewProduction: %w", err)
	}
	defer logger.Sync() //nolint:errcheck
	log := logger.Sugar()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("config.LoadConfig: %w", err)
	}

	ctx := cmd.Context()

	store, err := repository.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		return fmt.Errorf("repository.Connect: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Warnw("closing mongo connection failed", "err", err)
		}
	}()

	log.Infow("connected to mongo", "database", cfg.Mongo.Database)

	notifier, err := notify.New(cfg.Telegram.Token, cfg.Telegram.OwnerChatID, log)
	if err != nil {
		return fmt.Errorf("notify.New: %w", err)
	}

	catalog := service.NewCatalog(repository.NewProduct(store.DB), repository.NewProject(store.DB), log)
	cart := service.NewCart(repository.NewCart(store.DB), repository.NewProduct(store.DB), log)
	orders := service.NewOrders(repository.NewOrder(store.DB), repository.NewCart(store.DB), notifier, log)
	feedback := service.NewFeedback(repository.NewFeedback(store.DB), notifier, log)
	backups := backup.New(store.DB, cfg.Backup.Dir, log)

	srv := server.NewServer(catalog, cart, orders, feedback, backups, store, log)

	log.Infow("starting http server", "addr", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("srv.Start: %w", err)
	}

	return nil
}

package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nikolayk812/klimatshop/internal/backup"
	"github.com/nikolayk812/klimatshop/internal/bot"
	"github.com/nikolayk812/klimatshop/internal/config"
	"github.com/nikolayk812/klimatshop/internal/repository"
	"github.com/nikolayk812/klimatshop/internal/service"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Start the Telegram admin bot",
	Long: `Start the Telegram admin bot which lets the shop owner manage
products and installation projects, inspect statistics and
create or restore database backups. Access is limited to the
configured admin user.`,
	RunE: runBot,
}

func init() {
	rootCmd.AddCommand(botCmd)
}

func runBot(cmd *cobra.Command, args []string) error {
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

	if cfg.Telegram.Token == "" {
		return fmt.Errorf("telegram token is not configured")
	}
	if cfg.Telegram.AdminID == 0 {
		return fmt.Errorf("telegram admin id is not configured")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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

	catalog := service.NewCatalog(repository.NewProduct(store.DB), repository.NewProject(store.DB), log)
	backups := backup.New(store.DB, cfg.Backup.Dir, log)

	engine := bot.NewEngine(catalog, backups, cfg.Telegram.SessionTTL, log)

	b, err := bot.New(cfg.Telegram.Token, cfg.Telegram.AdminID, engine, log)
	if err != nil {
		return fmt.Errorf("bot.New: %w", err)
	}

	b.Run(ctx)
	return nil
}

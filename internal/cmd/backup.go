package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nikolayk812/klimatshop/internal/backup"
	"github.com/nikolayk812/klimatshop/internal/config"
	"github.com/nikolayk812/klimatshop/internal/repository"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage database backups",
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Export all collections to JSON files",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBackupManager(cmd.Context(), func(ctx context.Context, m *backup.Manager) error {
			info, err := m.Create(ctx)
			if err != nil {
				return fmt.Errorf("m.Create: %w", err)
			}

			fmt.Println("✅ Backup created")
			for name, count := range info.Collections {
				fmt.Printf("  %s: %d documents\n", name, count)
			}
			return nil
		})
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Replace collection contents from the backup files",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBackupManager(cmd.Context(), func(ctx context.Context, m *backup.Manager) error {
			restored, err := m.Restore(ctx)
			if err != nil {
				return fmt.Errorf("m.Restore: %w", err)
			}

			fmt.Println("✅ Backup restored")
			for name, count := range restored {
				fmt.Printf("  %s: %d documents\n", name, count)
			}
			return nil
		})
	},
}

var backupStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show document counts per collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBackupManager(cmd.Context(), func(ctx context.Context, m *backup.Manager) error {
			status, err := m.GetStatus(ctx)
			if err != nil {
				return fmt.Errorf("m.GetStatus: %w", err)
			}

			for name, count := range status.Collections {
				fmt.Printf("  %s: %d documents\n", name, count)
			}
			fmt.Printf("Total: %d documents\n", status.Total)
			return nil
		})
	},
}

func init() {
	backupCmd.AddCommand(backupCreateCmd, backupRestoreCmd, backupStatusCmd)
	rootCmd.AddCommand(backupCmd)
}

func withBackupManager(ctx context.Context, fn func(context.Context, *backup.Manager) error) error {
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

	store, err := repository.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		return fmt.Errorf("repository.Connect: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = store.Close(closeCtx)
	}()

	return fn(ctx, backup.New(store.DB, cfg.Backup.Dir, log))
}

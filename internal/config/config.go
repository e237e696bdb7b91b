package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Mongo    MongoConfig    `mapstructure:"mongo"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Backup   BackupConfig   `mapstructure:"backup"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type TelegramConfig struct {
	Token string `mapstructure:"token"`
	// AdminID is the single Telegram user allowed into the admin bot.
	AdminID int64 `mapstructure:"admin_id"`
	// OwnerChatID receives order and feedback notifications.
	OwnerChatID int64 `mapstructure:"owner_chat_id"`
	// SessionTTL bounds how long an abandoned admin conversation stays in memory.
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

type BackupConfig struct {
	Dir string `mapstructure:"dir"`
}

// LoadConfig reads config.yaml if present and lets KLIMATSHOP_* environment
// variables override everything. The original deployment ran on env vars alone,
// so a missing file is not an error.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./")
	v.AddConfigPath("/etc/klimatshop/")

	v.SetEnvPrefix("KLIMATSHOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8000")
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "klimatshop")
	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.admin_id", 0)
	v.SetDefault("telegram.owner_chat_id", 0)
	v.SetDefault("telegram.session_ttl", 30*time.Minute)
	v.SetDefault("backup.dir", "./data")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

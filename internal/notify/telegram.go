package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/nikolayk812/klimatshop/internal/domain"
	"github.com/nikolayk812/klimatshop/internal/port"
)

// Telegram pushes messages to the shop owner's chat. A nil *Telegram is a
// working no-op notifier, so the gateway stays optional.
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
	log    *zap.SugaredLogger
}

var _ port.Notifier = (*Telegram)(nil)

// New creates the notifier. An empty token returns nil: notifications are off.
func New(token string, chatID int64, logger *zap.SugaredLogger) (*Telegram, error) {
	if token == "" {
		return nil, nil
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("tgbotapi.NewBotAPI: %w", err)
	}

	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	logger.Infow("telegram notifier authorized", "username", api.Self.UserName)

	return &Telegram{
		api:    api,
		chatID: chatID,
		log:    logger,
	}, nil
}

func (t *Telegram) Notify(_ context.Context, text string) error {
	if t == nil {
		return nil
	}

	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML

	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("api.Send: %w: %w", err, domain.ErrNotification)
	}

	return nil
}

package bot

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Bot drives the admin panel over the Telegram Bot API, delegating all
// conversation logic to the Engine.
type Bot struct {
	api     *tgbotapi.BotAPI
	engine  *Engine
	adminID int64
	client  *http.Client
	log     *zap.SugaredLogger
}

// New creates the admin bot. If token is empty, returns nil (bot is optional).
func New(token string, adminID int64, engine *Engine, logger *zap.SugaredLogger) (*Bot, error) {
	if token == "" {
		return nil, nil // bot is optional
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("tgbotapi.NewBotAPI: %w", err)
	}

	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	bot := &Bot{
		api:     api,
		engine:  engine,
		adminID: adminID,
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     logger,
	}

	bot.log.Infow("telegram bot authorized", "username", api.Self.UserName)
	return bot, nil
}

// Run starts the bot's update loop. It blocks until context is cancelled.
func (b *Bot) Run(ctx context.Context) {
	if b == nil {
		return
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	b.log.Info("telegram admin bot started")

	for {
		select {
		case <-ctx.Done():
			b.log.Info("telegram bot: context cancelled, stopping")
			b.api.StopReceivingUpdates()
			return
		case update := <-updates:
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	if userID != b.adminID {
		b.send(chatID, Reply{Text: "❌ У вас нет прав доступа к админ панели"})
		return
	}

	var reply Reply
	switch {
	case msg.IsCommand() && msg.Command() == "start":
		reply = b.engine.Start(ctx, userID)
	case len(msg.Photo) > 0:
		ref, err := b.downloadPhoto(ctx, msg.Photo)
		if err != nil {
			b.log.Errorw("downloading photo failed", "user_id", userID, "err", err)
			b.send(chatID, Reply{Text: "❌ Не удалось загрузить изображение, попробуйте еще раз"})
			return
		}
		reply = b.engine.HandlePhoto(ctx, userID, ref)
	case msg.Text != "":
		reply = b.engine.HandleText(ctx, userID, msg.Text)
	default:
		return
	}

	b.send(chatID, reply)
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// Always acknowledge to stop the client-side spinner.
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		b.log.Warnw("answering callback failed", "err", err)
	}

	userID := cb.From.ID
	if userID != b.adminID {
		return
	}
	if cb.Message == nil {
		return
	}

	reply := b.engine.HandleSelect(ctx, userID, cb.Data)
	chatID := cb.Message.Chat.ID

	// Edit the menu message in place when there is a keyboard to show,
	// otherwise send a fresh message so the prompt is not lost on re-edit.
	if markup, ok := replyMarkup(reply); ok {
		edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, cb.Message.MessageID, reply.Text, markup)
		if _, err := b.api.Send(edit); err != nil {
			b.log.Warnw("editing message failed", "chat_id", chatID, "err", err)
			b.send(chatID, reply)
		}
		return
	}

	b.send(chatID, reply)
}

func (b *Bot) send(chatID int64, reply Reply) {
	msg := tgbotapi.NewMessage(chatID, reply.Text)
	if markup, ok := replyMarkup(reply); ok {
		msg.ReplyMarkup = markup
	}

	if _, err := b.api.Send(msg); err != nil {
		b.log.Warnw("sending message failed", "chat_id", chatID, "err", err)
	}
}

// downloadPhoto fetches the largest size of a received photo and encodes it as
// a data URI, the image reference format stored alongside products and
// projects.
func (b *Bot) downloadPhoto(ctx context.Context, sizes []tgbotapi.PhotoSize) (string, error) {
	if len(sizes) == 0 {
		return "", fmt.Errorf("no photo sizes")
	}

	largest := sizes[len(sizes)-1]
	url, err := b.api.GetFileDirectURL(largest.FileID)
	if err != nil {
		return "", fmt.Errorf("api.GetFileDirectURL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("client.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("io.ReadAll: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data), nil
}

// replyMarkup renders the reply's menu or explicit options as an inline
// keyboard, one button per row.
func replyMarkup(reply Reply) (tgbotapi.InlineKeyboardMarkup, bool) {
	options := reply.Options
	if len(options) == 0 {
		options = menuOptions(reply.Menu)
	}
	if len(options) == 0 {
		return tgbotapi.InlineKeyboardMarkup{}, false
	}

	rows := lo.Map(options, func(o Option, _ int) []tgbotapi.InlineKeyboardButton {
		return tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(o.Label, o.Data))
	})

	return tgbotapi.NewInlineKeyboardMarkup(rows...), true
}

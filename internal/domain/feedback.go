package domain

import "time"

type Feedback struct {
	ID      string
	Name    string
	Phone   string
	Message string

	TelegramUserID   string
	TelegramUserName string

	CreatedAt time.Time
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nikolayk812/klimatshop/internal/domain"
	"github.com/nikolayk812/klimatshop/internal/port"
)

type Feedback struct {
	feedback port.FeedbackRepository
	notifier port.Notifier
	log      *zap.SugaredLogger
}

func NewFeedback(feedback port.FeedbackRepository, notifier port.Notifier, logger *zap.SugaredLogger) *Feedback {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Feedback{
		feedback: feedback,
		notifier: notifier,
		log:      logger,
	}
}

// Submit stores the form and alerts the owner. A failed alert is logged and
// swallowed: the form is already persisted.
func (s *Feedback) Submit(ctx context.Context, form domain.Feedback) (domain.Feedback, error) {
	var zero domain.Feedback

	if form.Name == "" {
		return zero, fmt.Errorf("name is required: %w", domain.ErrValidation)
	}
	if form.Phone == "" {
		return zero, fmt.Errorf("phone is required: %w", domain.ErrValidation)
	}

	form.ID = uuid.NewString()
	form.CreatedAt = time.Now().UTC()

	if err := s.feedback.InsertFeedback(ctx, form); err != nil {
		return zero, fmt.Errorf("feedback.InsertFeedback: %w", err)
	}

	if err := s.notifier.Notify(ctx, formatFeedbackNotification(form)); err != nil {
		s.log.Warnw("feedback notification failed", "feedback_id", form.ID, "err", err)
	}

	return form, nil
}

func formatFeedbackNotification(form domain.Feedback) string {
	return fmt.Sprintf(`🔔 <b>Новая заявка с сайта</b>

👤 <b>Имя:</b> %s
📞 <b>Телефон:</b> %s
💬 <b>Сообщение:</b> %s

🕐 <b>Время:</b> %s`,
		form.Name, form.Phone, form.Message, form.CreatedAt.Format("02.01.2006 15:04"))
}

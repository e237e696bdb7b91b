package port

import (
	"context"

	"github.com/nikolayk812/klimatshop/internal/domain"
)

type FeedbackRepository interface {
	ListFeedback(ctx context.Context) ([]domain.Feedback, error)

	InsertFeedback(ctx context.Context, feedback domain.Feedback) error
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikolayk812/klimatshop/internal/domain"
	"github.com/nikolayk812/klimatshop/internal/port"
)

type feedbackRepository struct {
	col *mongo.Collection
}

func NewFeedback(db *mongo.Database) port.FeedbackRepository {
	return &feedbackRepository{
		col: db.Collection(CollectionFeedback),
	}
}

type feedbackDoc struct {
	ID               string    `bson:"_id"`
	Name             string    `bson:"name"`
	Phone            string    `bson:"phone"`
	Message          string    `bson:"message"`
	TelegramUserID   string    `bson:"telegram_user_id,omitempty"`
	TelegramUserName string    `bson:"telegram_user_name,omitempty"`
	CreatedAt        time.Time `bson:"created_at"`
}

func (r *feedbackRepository) ListFeedback(ctx context.Context) ([]domain.Feedback, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("col.Find: %w", err)
	}

	var docs []feedbackDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("cursor.All: %w", err)
	}

	return lo.Map(docs, func(doc feedbackDoc, _ int) domain.Feedback {
		return domain.Feedback{
			ID:               doc.ID,
			Name:             doc.Name,
			Phone:            doc.Phone,
			Message:          doc.Message,
			TelegramUserID:   doc.TelegramUserID,
			TelegramUserName: doc.TelegramUserName,
			CreatedAt:        doc.CreatedAt,
		}
	}), nil
}

func (r *feedbackRepository) InsertFeedback(ctx context.Context, feedback domain.Feedback) error {
	doc := feedbackDoc{
		ID:               feedback.ID,
		Name:             feedback.Name,
		Phone:            feedback.Phone,
		Message:          feedback.Message,
		TelegramUserID:   feedback.TelegramUserID,
		TelegramUserName: feedback.TelegramUserName,
		CreatedAt:        feedback.CreatedAt,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("col.InsertOne: %w", err)
	}

	return nil
}

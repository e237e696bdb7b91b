package service_test

import (
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikolayk812/klimatshop/internal/domain"
	"github.com/nikolayk812/klimatshop/internal/service"
)

func TestFeedback_Submit(t *testing.T) {
	tests := []struct {
		name    string
		form    domain.Feedback
		wantErr error
	}{
		{
			name: "full form: ok",
			form: domain.Feedback{
				Name:    gofakeit.Name(),
				Phone:   gofakeit.Phone(),
				Message: gofakeit.Sentence(8),
			},
		},
		{
			name: "message is optional",
			form: domain.Feedback{
				Name:  gofakeit.Name(),
				Phone: gofakeit.Phone(),
			},
		},
		{
			name:    "missing name: validation error",
			form:    domain.Feedback{Phone: gofakeit.Phone()},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "missing phone: validation error",
			form:    domain.Feedback{Name: gofakeit.Name()},
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeFeedbackRepo{}
			notifier := &fakeNotifier{}
			svc := service.NewFeedback(repo, notifier, nil)

			stored, err := svc.Submit(t.Context(), tt.form)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.feedback)
				return
			}
			require.NoError(t, err)

			assert.NotEmpty(t, stored.ID)
			assert.False(t, stored.CreatedAt.IsZero())
			require.Len(t, repo.feedback, 1)

			require.Len(t, notifier.texts, 1)
			assert.Contains(t, notifier.texts[0], "Новая заявка")
			assert.Contains(t, notifier.texts[0], tt.form.Name)
		})
	}
}

func TestFeedback_Submit_notificationFailureIsSoft(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	notifier := &fakeNotifier{err: errors.New("telegram down")}
	svc := service.NewFeedback(repo, notifier, nil)

	_, err := svc.Submit(t.Context(), domain.Feedback{
		Name:  gofakeit.Name(),
		Phone: gofakeit.Phone(),
	})
	require.NoError(t, err)
	assert.Len(t, repo.feedback, 1)
}

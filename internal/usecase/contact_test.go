package usecase_test

import (
	"context"
	"strings"
	"testing"

	"portfolio-analytics/internal/domain"
	"portfolio-analytics/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestContactUseCase_SubmitMessage_Success(t *testing.T) {
	ctx := context.Background()
	contactRepo := &ContactRepositoryMock{}
	uc := usecase.NewContactUseCase(contactRepo)

	msg := &domain.ContactMessage{
		Name:    "  Jamie  ",
		Email:   "jamie@example.com",
		Message: "Hi, saw your projects page.",
	}

	contactRepo.On("Create", ctx, msg).Return(nil)

	err := uc.SubmitMessage(ctx, msg)

	assert.NoError(t, err)
	assert.Equal(t, "Jamie", msg.Name)
	contactRepo.AssertCalled(t, "Create", ctx, msg)
}

func TestContactUseCase_SubmitMessage_Validation(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		msg  domain.ContactMessage
		want error
	}{
		{"empty name", domain.ContactMessage{Email: "a@b.com", Message: "hi"}, domain.ErrInvalidContactName},
		{"long name", domain.ContactMessage{Name: strings.Repeat("x", 101), Email: "a@b.com", Message: "hi"}, domain.ErrInvalidContactName},
		{"empty email", domain.ContactMessage{Name: "A", Message: "hi"}, domain.ErrInvalidContactEmail},
		{"no at sign", domain.ContactMessage{Name: "A", Email: "ab.com", Message: "hi"}, domain.ErrInvalidContactEmail},
		{"no domain dot", domain.ContactMessage{Name: "A", Email: "a@bcom", Message: "hi"}, domain.ErrInvalidContactEmail},
		{"trailing dot", domain.ContactMessage{Name: "A", Email: "a@b.com.", Message: "hi"}, domain.ErrInvalidContactEmail},
		{"empty message", domain.ContactMessage{Name: "A", Email: "a@b.com"}, domain.ErrInvalidContactMessage},
		{"long message", domain.ContactMessage{Name: "A", Email: "a@b.com", Message: strings.Repeat("y", 5001)}, domain.ErrInvalidContactMessage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			contactRepo := &ContactRepositoryMock{}
			uc := usecase.NewContactUseCase(contactRepo)

			err := uc.SubmitMessage(ctx, &tc.msg)

			assert.ErrorIs(t, err, tc.want)
			contactRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

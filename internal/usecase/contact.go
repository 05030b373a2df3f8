package usecase

import (
	"context"
	"strings"

	"portfolio-analytics/internal/domain"
)

const (
	maxContactNameLength    = 100
	maxContactEmailLength   = 254
	maxContactMessageLength = 5000
)

// ContactUseCase реализует бизнес-логику контактной формы.
type ContactUseCase struct {
	contactRepo domain.ContactRepository
}

// NewContactUseCase создает новый экземпляр ContactUseCase.
func NewContactUseCase(contactRepo domain.ContactRepository) domain.ContactUseCase {
	return &ContactUseCase{
		contactRepo: contactRepo,
	}
}

// SubmitMessage валидирует и сохраняет сообщение.
func (uc *ContactUseCase) SubmitMessage(ctx context.Context, msg *domain.ContactMessage) error {
	// Валидация входных данных
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)

	if msg.Name == "" || len(msg.Name) > maxContactNameLength {
		return domain.ErrInvalidContactName
	}
	if !validEmail(msg.Email) {
		return domain.ErrInvalidContactEmail
	}
	if msg.Message == "" || len(msg.Message) > maxContactMessageLength {
		return domain.ErrInvalidContactMessage
	}

	return uc.contactRepo.Create(ctx, msg)
}

// validEmail проверяет минимальную форму адреса: local@domain с точкой
// в доменной части.
func validEmail(email string) bool {
	if email == "" || len(email) > maxContactEmailLength {
		return false
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domainPart := email[at+1:]
	return strings.Contains(domainPart, ".") && !strings.HasPrefix(domainPart, ".") && !strings.HasSuffix(domainPart, ".")
}

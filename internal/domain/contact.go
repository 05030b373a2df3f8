package domain

import (
	"context"
	"time"
)

// ContactMessage представляет сообщение, отправленное через контактную форму.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

// ContactRepository определяет контракт для хранилища сообщений.
type ContactRepository interface {
	Create(ctx context.Context, msg *ContactMessage) error
}

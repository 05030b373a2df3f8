package domain

import (
	"context"
	"time"
)

// RepoUseCase определяет бизнес-логику для работы со списком репозиториев:
// загрузка через кеш, фильтрация, классификация и сортировка.
type RepoUseCase interface {
	GetRepositories(ctx context.Context) ([]*Repository, error)
	RefreshRepositories(ctx context.Context) error
	InvalidateCache()
}

// StatsUseCase определяет бизнес-логику для построения агрегата статистики.
type StatsUseCase interface {
	GetStats(ctx context.Context) (*StatsAggregate, error)
	GetRateLimit(ctx context.Context) (*RateLimit, error)
}

// ContactUseCase определяет бизнес-логику контактной формы.
type ContactUseCase interface {
	SubmitMessage(ctx context.Context, msg *ContactMessage) error
}

// CalendarProvider порождает календарь активности. Реализация по умолчанию
// синтетическая: форма повторяет реальный heatmap, но данные не берутся из
// аккаунта (см. SyntheticCalendar).
type CalendarProvider interface {
	Generate(now time.Time) []ContributionWeek
}

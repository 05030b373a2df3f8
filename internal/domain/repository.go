package domain

import (
	"context"
	"time"
)

// Category определяет семантическую категорию репозитория.
// Категория вычисляется классификатором и никогда не приходит из API.
type Category string

const (
	CategoryShowcase     Category = "showcase"
	CategoryPersonal     Category = "personal"
	CategoryContribution Category = "contribution"
	CategoryFork         Category = "fork"
)

// Priority возвращает приоритет категории для сортировки (больше — выше).
func (c Category) Priority() int {
	switch c {
	case CategoryShowcase:
		return 4
	case CategoryPersonal:
		return 3
	case CategoryContribution:
		return 2
	case CategoryFork:
		return 1
	default:
		return 0
	}
}

// Repository представляет репозиторий пользователя GitHub.
// Необязательные поля (description, homepage, language) моделируются
// указателями: отсутствие значения — типизированное состояние, а не "".
type Repository struct {
	ID           int64
	Name         string
	FullName     string
	Description  *string
	HTMLURL      string
	Homepage     *string
	Language     *string
	LanguagesURL string
	Topics       []string
	Stars        int
	Forks        int
	CreatedAt    time.Time
	UpdatedAt    time.Time
	PushedAt     time.Time
	Archived     bool
	Fork         bool
	Private      bool
	Category     Category
}

// EngagementScore возвращает суммарную вовлеченность (звезды + форки).
func (r *Repository) EngagementScore() int {
	return r.Stars + r.Forks
}

// HasHomepage сообщает, задан ли непустой URL демо/домашней страницы.
func (r *Repository) HasHomepage() bool {
	return r.Homepage != nil && *r.Homepage != ""
}

// GitHubGateway определяет контракт для получения данных из GitHub API.
type GitHubGateway interface {
	GetUser(ctx context.Context, login string) (*UserProfile, error)
	GetRepositories(ctx context.Context, login string) ([]*Repository, error)
	GetLanguages(ctx context.Context, languagesURL string) (map[string]int64, error)
	GetRateLimit(ctx context.Context) (*RateLimit, error)
}

// RepoCache определяет контракт одноэлементного TTL-кеша списка репозиториев.
type RepoCache interface {
	Get(ctx context.Context, load func(context.Context) ([]*Repository, error)) ([]*Repository, error)
	Prefetch(ctx context.Context, load func(context.Context) ([]*Repository, error)) error
	Invalidate()
}

package usecase

import (
	"context"
	"sort"

	"portfolio-analytics/internal/domain"

	"github.com/sirupsen/logrus"
)

// RepoUseCase реализует загрузку, фильтрацию, классификацию и сортировку
// списка репозиториев. Сеть прикрыта TTL-кешем.
type RepoUseCase struct {
	gateway  domain.GitHubGateway
	cache    domain.RepoCache
	login    string
	excluded map[string]bool
	logger   *logrus.Logger
}

// NewRepoUseCase создает новый экземпляр RepoUseCase.
func NewRepoUseCase(gateway domain.GitHubGateway, cache domain.RepoCache, login string, excludedRepos []string, logger *logrus.Logger) domain.RepoUseCase {
	excluded := make(map[string]bool, len(excludedRepos))
	for _, name := range excludedRepos {
		excluded[name] = true
	}

	return &RepoUseCase{
		gateway:  gateway,
		cache:    cache,
		login:    login,
		excluded: excluded,
		logger:   logger,
	}
}

// GetRepositories возвращает подходящие репозитории: классифицированные
// и отсортированные, из кеша при попадании в TTL.
func (uc *RepoUseCase) GetRepositories(ctx context.Context) ([]*domain.Repository, error) {
	return uc.cache.Get(ctx, uc.load)
}

// RefreshRepositories прогревает кеш (хук префетча для оркестрации).
func (uc *RepoUseCase) RefreshRepositories(ctx context.Context) error {
	uc.cache.Invalidate()
	return uc.cache.Prefetch(ctx, uc.load)
}

// InvalidateCache сбрасывает кеш без обращения к сети.
func (uc *RepoUseCase) InvalidateCache() {
	uc.cache.Invalidate()
}

func (uc *RepoUseCase) load(ctx context.Context) ([]*domain.Repository, error) {
	fetched, err := uc.gateway.GetRepositories(ctx, uc.login)
	if err != nil {
		return nil, err
	}

	repos := uc.filter(fetched)
	for _, r := range repos {
		r.Category = Classify(r)
	}
	sortRepositories(repos)

	uc.logger.WithFields(logrus.Fields{
		"fetched":  len(fetched),
		"eligible": len(repos),
	}).Info("Repository list refreshed")

	return repos, nil
}

// filter отбрасывает приватные, архивные, без демо-ссылки и исключенные
// по имени репозитории.
func (uc *RepoUseCase) filter(repos []*domain.Repository) []*domain.Repository {
	eligible := make([]*domain.Repository, 0, len(repos))
	for _, r := range repos {
		if r.Private || r.Archived {
			continue
		}
		if !r.HasHomepage() {
			continue
		}
		if uc.excluded[r.Name] {
			continue
		}
		eligible = append(eligible, r)
	}
	return eligible
}

// sortRepositories упорядочивает: приоритет категории, затем вовлеченность,
// затем давность обновления. Стабильная сортировка сохраняет исходный
// порядок при полном равенстве ключей.
func sortRepositories(repos []*domain.Repository) {
	sort.SliceStable(repos, func(i, j int) bool {
		if pi, pj := repos[i].Category.Priority(), repos[j].Category.Priority(); pi != pj {
			return pi > pj
		}
		if ei, ej := repos[i].EngagementScore(), repos[j].EngagementScore(); ei != ej {
			return ei > ej
		}
		return repos[i].UpdatedAt.After(repos[j].UpdatedAt)
	})
}

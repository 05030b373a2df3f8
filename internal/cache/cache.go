package cache

import (
	"context"
	"sync"
	"time"

	"portfolio-analytics/internal/domain"

	"golang.org/x/sync/singleflight"
)

// Ключ единственного слота кеша; внешний слой оркестрации использует его
// для инвалидации и префетча.
const RepoListKey = "github:repos"

// RepoCache реализует domain.RepoCache: одноэлементный TTL-кеш
// отфильтрованного списка репозиториев. Конкурентные обновления
// схлопываются в один запрос к загрузчику через singleflight.
type RepoCache struct {
	mu        sync.Mutex
	group     singleflight.Group
	ttl       time.Duration
	repos     []*domain.Repository
	fetchedAt time.Time
}

// NewRepoCache создает кеш с заданным временем жизни.
func NewRepoCache(ttl time.Duration) *RepoCache {
	return &RepoCache{ttl: ttl}
}

// Get возвращает кешированный список, если он свежий, иначе вызывает load
// и сохраняет результат. Ошибка загрузчика не затирает предыдущий слот.
func (c *RepoCache) Get(ctx context.Context, load func(context.Context) ([]*domain.Repository, error)) ([]*domain.Repository, error) {
	if repos, ok := c.fresh(); ok {
		return repos, nil
	}

	v, err, _ := c.group.Do(RepoListKey, func() (interface{}, error) {
		// Повторная проверка: другой вызов мог уже обновить слот
		if repos, ok := c.fresh(); ok {
			return repos, nil
		}

		repos, err := load(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.repos = repos
		c.fetchedAt = time.Now()
		c.mu.Unlock()

		return repos, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]*domain.Repository), nil
}

// Prefetch прогревает кеш, не возвращая данные (хук для оркестрации).
func (c *RepoCache) Prefetch(ctx context.Context, load func(context.Context) ([]*domain.Repository, error)) error {
	_, err := c.Get(ctx, load)
	return err
}

// Invalidate сбрасывает слот; следующий Get пойдет в сеть.
func (c *RepoCache) Invalidate() {
	c.mu.Lock()
	c.repos = nil
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
}

func (c *RepoCache) fresh() ([]*domain.Repository, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.repos == nil || time.Since(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return c.repos, true
}

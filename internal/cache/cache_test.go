package cache_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"portfolio-analytics/internal/cache"
	"portfolio-analytics/internal/domain"

	"github.com/stretchr/testify/assert"
)

func repoList(name string) []*domain.Repository {
	return []*domain.Repository{{Name: name}}
}

func TestRepoCache_HitWithinTTL(t *testing.T) {
	ctx := context.Background()
	c := cache.NewRepoCache(time.Minute)

	calls := 0
	load := func(context.Context) ([]*domain.Repository, error) {
		calls++
		return repoList("cached"), nil
	}

	first, err := c.Get(ctx, load)
	assert.NoError(t, err)
	second, err := c.Get(ctx, load)
	assert.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestRepoCache_ExpiryTriggersReload(t *testing.T) {
	ctx := context.Background()
	c := cache.NewRepoCache(30 * time.Millisecond)

	calls := 0
	load := func(context.Context) ([]*domain.Repository, error) {
		calls++
		return repoList("reloaded"), nil
	}

	_, err := c.Get(ctx, load)
	assert.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	_, err = c.Get(ctx, load)
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRepoCache_InvalidateForcesReload(t *testing.T) {
	ctx := context.Background()
	c := cache.NewRepoCache(time.Minute)

	calls := 0
	load := func(context.Context) ([]*domain.Repository, error) {
		calls++
		return repoList("fresh"), nil
	}

	_, _ = c.Get(ctx, load)
	c.Invalidate()
	_, _ = c.Get(ctx, load)

	assert.Equal(t, 2, calls)
}

func TestRepoCache_ErrorDoesNotPoisonSlot(t *testing.T) {
	ctx := context.Background()
	c := cache.NewRepoCache(time.Minute)

	repos, err := c.Get(ctx, func(context.Context) ([]*domain.Repository, error) {
		return nil, assert.AnError
	})
	assert.Error(t, err)
	assert.Nil(t, repos)

	repos, err = c.Get(ctx, func(context.Context) ([]*domain.Repository, error) {
		return repoList("recovered"), nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "recovered", repos[0].Name)
}

// Конкурентные обновления должны схлопываться в один вызов загрузчика.
func TestRepoCache_ConcurrentRefreshCollapses(t *testing.T) {
	ctx := context.Background()
	c := cache.NewRepoCache(time.Minute)

	var calls int32
	load := func(context.Context) ([]*domain.Repository, error) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(20 * time.Millisecond)
		return repoList("shared"), nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repos, err := c.Get(ctx, load)
			assert.NoError(t, err)
			assert.Equal(t, "shared", repos[0].Name)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestRepoCache_Prefetch(t *testing.T) {
	ctx := context.Background()
	c := cache.NewRepoCache(time.Minute)

	calls := 0
	load := func(context.Context) ([]*domain.Repository, error) {
		calls++
		return repoList("warm"), nil
	}

	assert.NoError(t, c.Prefetch(ctx, load))

	repos, err := c.Get(ctx, load)
	assert.NoError(t, err)
	assert.Equal(t, "warm", repos[0].Name)
	assert.Equal(t, 1, calls)
}

package usecase_test

import (
	"context"
	"io"
	"testing"
	"time"

	"portfolio-analytics/internal/cache"
	"portfolio-analytics/internal/domain"
	"portfolio-analytics/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func eligibleRepo(name string, stars int) *domain.Repository {
	return &domain.Repository{
		Name:      name,
		Homepage:  strPtr("https://" + name + ".example.com"),
		Stars:     stars,
		CreatedAt: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		PushedAt:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRepoUseCase_FilterRules(t *testing.T) {
	ctx := context.Background()
	gateway := &GitHubGatewayMock{}

	private := eligibleRepo("private", 0)
	private.Private = true
	archived := eligibleRepo("archived", 0)
	archived.Archived = true
	noHomepage := eligibleRepo("no-homepage", 0)
	noHomepage.Homepage = nil
	emptyHomepage := eligibleRepo("empty-homepage", 0)
	emptyHomepage.Homepage = strPtr("")
	excluded := eligibleRepo("old-experiment", 0)
	keep := eligibleRepo("keeper", 1)

	gateway.On("GetRepositories", ctx, "octocat").Return(
		[]*domain.Repository{private, archived, noHomepage, emptyHomepage, excluded, keep}, nil)

	uc := usecase.NewRepoUseCase(gateway, cache.NewRepoCache(time.Minute), "octocat", []string{"old-experiment"}, testLogger())

	repos, err := uc.GetRepositories(ctx)

	assert.NoError(t, err)
	assert.Len(t, repos, 1)
	assert.Equal(t, "keeper", repos[0].Name)
	assert.NotEmpty(t, repos[0].Category)
}

func TestRepoUseCase_SortOrder(t *testing.T) {
	ctx := context.Background()
	gateway := &GitHubGatewayMock{}

	// personal уступает showcase даже при большей вовлеченности
	personal := eligibleRepo("personal-big", 4)
	showcase := eligibleRepo("showcase-small", 1)
	showcase.Topics = []string{"showcase"}

	// Две personal с равными звездами: свежее обновление выше
	olderUpdate := eligibleRepo("older-update", 3)
	olderUpdate.UpdatedAt = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	newerUpdate := eligibleRepo("newer-update", 3)
	newerUpdate.UpdatedAt = time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)

	gateway.On("GetRepositories", ctx, "octocat").Return(
		[]*domain.Repository{personal, olderUpdate, newerUpdate, showcase}, nil)

	uc := usecase.NewRepoUseCase(gateway, cache.NewRepoCache(time.Minute), "octocat", nil, testLogger())

	repos, err := uc.GetRepositories(ctx)

	assert.NoError(t, err)
	names := make([]string, len(repos))
	for i, r := range repos {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"showcase-small", "personal-big", "newer-update", "older-update"}, names)
}

func TestRepoUseCase_SortIsStable(t *testing.T) {
	ctx := context.Background()
	gateway := &GitHubGatewayMock{}

	same := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	first := eligibleRepo("first", 2)
	first.UpdatedAt = same
	second := eligibleRepo("second", 2)
	second.UpdatedAt = same

	gateway.On("GetRepositories", ctx, "octocat").Return(
		[]*domain.Repository{first, second}, nil)

	uc := usecase.NewRepoUseCase(gateway, cache.NewRepoCache(time.Minute), "octocat", nil, testLogger())

	repos, err := uc.GetRepositories(ctx)

	assert.NoError(t, err)
	assert.Equal(t, "first", repos[0].Name)
	assert.Equal(t, "second", repos[1].Name)
}

func TestRepoUseCase_CacheHitSkipsGateway(t *testing.T) {
	ctx := context.Background()
	gateway := &GitHubGatewayMock{}

	gateway.On("GetRepositories", ctx, "octocat").Return(
		[]*domain.Repository{eligibleRepo("keeper", 1)}, nil).Once()

	uc := usecase.NewRepoUseCase(gateway, cache.NewRepoCache(time.Minute), "octocat", nil, testLogger())

	_, err := uc.GetRepositories(ctx)
	assert.NoError(t, err)
	_, err = uc.GetRepositories(ctx)
	assert.NoError(t, err)

	gateway.AssertNumberOfCalls(t, "GetRepositories", 1)
}

func TestRepoUseCase_FetchErrorPropagates(t *testing.T) {
	ctx := context.Background()
	gateway := &GitHubGatewayMock{}

	apiErr := &domain.APIError{StatusCode: 503, Status: "503 Service Unavailable", URL: "u", Message: "down"}
	gateway.On("GetRepositories", ctx, "octocat").Return(nil, apiErr)

	uc := usecase.NewRepoUseCase(gateway, cache.NewRepoCache(time.Minute), "octocat", nil, testLogger())

	repos, err := uc.GetRepositories(ctx)

	assert.Nil(t, repos)
	assert.ErrorAs(t, err, new(*domain.APIError))
}

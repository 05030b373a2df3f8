package usecase_test

import (
	"context"

	"portfolio-analytics/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Моки контрактов domain для юнит-тестов

type GitHubGatewayMock struct {
	mock.Mock
}

func (m *GitHubGatewayMock) GetUser(ctx context.Context, login string) (*domain.UserProfile, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *GitHubGatewayMock) GetRepositories(ctx context.Context, login string) ([]*domain.Repository, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Repository), args.Error(1)
}

func (m *GitHubGatewayMock) GetLanguages(ctx context.Context, languagesURL string) (map[string]int64, error) {
	args := m.Called(ctx, languagesURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *GitHubGatewayMock) GetRateLimit(ctx context.Context) (*domain.RateLimit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateLimit), args.Error(1)
}

type ContactRepositoryMock struct {
	mock.Mock
}

func (m *ContactRepositoryMock) Create(ctx context.Context, msg *domain.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

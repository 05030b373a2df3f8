package usecase_test

import (
	"testing"
	"time"

	"portfolio-analytics/internal/domain"
	"portfolio-analytics/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestClassify_ShowcaseByTopic(t *testing.T) {
	repo := &domain.Repository{
		Fork:   false,
		Topics: []string{"portfolio"},
	}

	assert.Equal(t, domain.CategoryShowcase, usecase.Classify(repo))
}

func TestClassify_ShowcaseByScore(t *testing.T) {
	repo := &domain.Repository{
		Fork:        false,
		Stars:       10,
		Forks:       3,
		Topics:      []string{"react", "typescript"},
		Description: strPtr("A full-featured task management application"),
	}

	assert.Equal(t, domain.CategoryShowcase, usecase.Classify(repo))
}

func TestClassify_PersonalWithoutEngagement(t *testing.T) {
	repo := &domain.Repository{
		Fork:  false,
		Stars: 0,
		Forks: 0,
	}

	assert.Equal(t, domain.CategoryPersonal, usecase.Classify(repo))
}

func TestClassify_ContributionForkWithStars(t *testing.T) {
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := &domain.Repository{
		Fork:      true,
		Stars:     2,
		CreatedAt: created,
		PushedAt:  created.AddDate(0, 6, 0),
	}

	assert.Equal(t, domain.CategoryContribution, usecase.Classify(repo))
}

func TestClassify_ContributionForkPushedLater(t *testing.T) {
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := &domain.Repository{
		Fork:      true,
		Stars:     0,
		CreatedAt: created,
		PushedAt:  created.AddDate(0, 2, 0),
	}

	assert.Equal(t, domain.CategoryContribution, usecase.Classify(repo))
}

func TestClassify_PlainFork(t *testing.T) {
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := &domain.Repository{
		Fork:      true,
		Stars:     0,
		CreatedAt: created,
		PushedAt:  created,
	}

	assert.Equal(t, domain.CategoryFork, usecase.Classify(repo))
}

// Правило топика должно побеждать до скоринга, а категория —
// оставаться детерминированной при повторных вызовах.
func TestClassify_Deterministic(t *testing.T) {
	repo := &domain.Repository{
		Fork:   false,
		Stars:  100,
		Topics: []string{"showcase"},
	}

	first := usecase.Classify(repo)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, usecase.Classify(repo))
	}
	assert.Equal(t, domain.CategoryShowcase, first)
}

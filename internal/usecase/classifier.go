package usecase

import (
	"time"

	"portfolio-analytics/internal/domain"
)

// Константы эвристики классификации. Подобраны один раз, в рантайме
// не пересчитываются.
const (
	showcaseScoreThreshold = 12

	starWeight        = 3
	forkWeight        = 2
	topicWeight       = 1
	descriptionWeight = 2

	// Минимальная длина описания, считающегося содержательным
	minDescriptionLength = 20

	// Насколько позже создания должен быть push, чтобы форк считался
	// реальным вкладом
	forkContributionWindow = 30 * 24 * time.Hour
)

var showcaseTopics = map[string]bool{
	"showcase":  true,
	"portfolio": true,
}

// Classify присваивает репозиторию категорию. Чистая функция от полей
// репозитория; дерево решений чувствительно к порядку, побеждает первое
// сработавшее правило.
func Classify(r *domain.Repository) domain.Category {
	if !r.Fork {
		for _, topic := range r.Topics {
			if showcaseTopics[topic] {
				return domain.CategoryShowcase
			}
		}
		if showcaseScore(r) > showcaseScoreThreshold {
			return domain.CategoryShowcase
		}
		return domain.CategoryPersonal
	}

	if hasContributionEvidence(r) {
		return domain.CategoryContribution
	}
	return domain.CategoryFork
}

// showcaseScore считает взвешенную вовлеченность репозитория.
func showcaseScore(r *domain.Repository) int {
	score := r.Stars*starWeight + r.Forks*forkWeight + len(r.Topics)*topicWeight
	if r.Description != nil && len(*r.Description) >= minDescriptionLength {
		score += descriptionWeight
	}
	return score
}

// hasContributionEvidence проверяет признаки реального вклада в форк:
// push заметно позже точки форка либо ненулевые звезды.
func hasContributionEvidence(r *domain.Repository) bool {
	if r.Stars > 0 {
		return true
	}
	return r.PushedAt.After(r.CreatedAt.Add(forkContributionWindow))
}

package usecase

import (
	"sort"
	"time"

	"portfolio-analytics/internal/domain"
)

// Константы эвристик активности. Это сознательные приближения по меткам
// времени репозиториев: реальная история коммитов недоступна без
// аутентифицированного scope.
const (
	recentActivityMonths = 6

	currentStreakPerRepo = 3
	currentStreakCap     = 30

	longestStreakPerRepo = 5
	longestStreakCap     = 100

	commitsPerRepoEstimate = 40
)

// ComputeActivity выводит грубые показатели активности из списка
// репозиториев. Чистая функция от списка и момента времени.
func ComputeActivity(repos []*domain.Repository, now time.Time) domain.ActivityStats {
	yearSet := make(map[int]bool)
	recentCutoff := now.AddDate(0, -recentActivityMonths, 0)
	recentlyUpdated := 0

	for _, r := range repos {
		yearSet[r.CreatedAt.Year()] = true
		yearSet[r.UpdatedAt.Year()] = true
		if r.UpdatedAt.After(recentCutoff) {
			recentlyUpdated++
		}
	}

	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	return domain.ActivityStats{
		ActiveYears:      years,
		CurrentStreak:    capped(recentlyUpdated*currentStreakPerRepo, currentStreakCap),
		LongestStreak:    capped(len(repos)*longestStreakPerRepo, longestStreakCap),
		EstimatedCommits: len(repos) * commitsPerRepoEstimate,
	}
}

func capped(v, limit int) int {
	if v > limit {
		return limit
	}
	return v
}

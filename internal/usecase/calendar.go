package usecase

import (
	"math/rand"
	"time"

	"portfolio-analytics/internal/domain"
)

const (
	weekdayMaxActivity = 14
	weekendMaxActivity = 5
)

// SyntheticCalendar реализует domain.CalendarProvider. Календарь —
// статистически правдоподобная заглушка: форма повторяет реальный heatmap
// (будни активнее выходных), но данные аккаунта не используются. Реальный
// граф вкладов требует аутентифицированного scope и вынесен за рамки.
type SyntheticCalendar struct {
	seed int64
}

// NewSyntheticCalendar создает провайдер с заданным зерном генератора.
func NewSyntheticCalendar(seed int64) *SyntheticCalendar {
	return &SyntheticCalendar{seed: seed}
}

// Generate возвращает недели с первого дня текущего года по сегодня
// включительно. Недели начинаются с воскресенья; первая и последняя могут
// быть неполными. Ни один день не позже now.
func (c *SyntheticCalendar) Generate(now time.Time) []domain.ContributionWeek {
	rng := rand.New(rand.NewSource(c.seed))

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	var weeks []domain.ContributionWeek
	var current []domain.ContributionDay

	for !day.After(today) {
		if day.Weekday() == time.Sunday && len(current) > 0 {
			weeks = append(weeks, domain.ContributionWeek{Days: current})
			current = nil
		}

		count := syntheticCount(rng, day.Weekday())
		current = append(current, domain.ContributionDay{
			Date:  day.Format("2006-01-02"),
			Count: count,
			Level: domain.LevelForCount(count),
		})

		day = day.AddDate(0, 0, 1)
	}

	if len(current) > 0 {
		weeks = append(weeks, domain.ContributionWeek{Days: current})
	}

	return weeks
}

// syntheticCount выбирает счетчик дня: базовый потолок зависит от будний
// день это или выходной, множитель псевдослучайный.
func syntheticCount(rng *rand.Rand, weekday time.Weekday) int {
	base := weekdayMaxActivity
	if weekday == time.Saturday || weekday == time.Sunday {
		base = weekendMaxActivity
	}
	return int(rng.Float64() * float64(base))
}

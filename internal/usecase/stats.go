package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"portfolio-analytics/internal/domain"

	"github.com/sirupsen/logrus"
)

const (
	topLanguages = 10
	topTopics    = 15
)

// StatsUseCase реализует сборку агрегата статистики: профиль, категории,
// языки, топики, активность и календарь.
type StatsUseCase struct {
	gateway  domain.GitHubGateway
	repos    domain.RepoUseCase
	calendar domain.CalendarProvider
	login    string
	logger   *logrus.Logger
}

// NewStatsUseCase создает новый экземпляр StatsUseCase.
func NewStatsUseCase(gateway domain.GitHubGateway, repos domain.RepoUseCase, calendar domain.CalendarProvider, login string, logger *logrus.Logger) domain.StatsUseCase {
	return &StatsUseCase{
		gateway:  gateway,
		repos:    repos,
		calendar: calendar,
		login:    login,
		logger:   logger,
	}
}

// GetStats собирает агрегат. Ошибки верхнеуровневых запросов (профиль,
// список репозиториев) пробрасываются вызывающему; сбои отдельных запросов
// языков изолируются внутри агрегатора.
func (uc *StatsUseCase) GetStats(ctx context.Context) (*domain.StatsAggregate, error) {
	profile, err := uc.gateway.GetUser(ctx, uc.login)
	if err != nil {
		return nil, err
	}

	repos, err := uc.repos.GetRepositories(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	counts := make(map[domain.Category]int)
	totalStars, totalForks := 0, 0
	for _, r := range repos {
		counts[r.Category]++
		totalStars += r.Stars
		totalForks += r.Forks
	}

	return &domain.StatsAggregate{
		Profile:        profile,
		CategoryCounts: counts,
		Languages:      uc.aggregateLanguages(ctx, repos),
		Topics:         aggregateTopics(repos),
		TotalStars:     totalStars,
		TotalForks:     totalForks,
		Activity:       ComputeActivity(repos, now),
		Calendar:       uc.calendar.Generate(now),
		GeneratedAt:    now,
	}, nil
}

// GetRateLimit возвращает состояние квоты API (диагностика).
func (uc *StatsUseCase) GetRateLimit(ctx context.Context) (*domain.RateLimit, error) {
	return uc.gateway.GetRateLimit(ctx)
}

// aggregateLanguages запрашивает языки всех репозиториев параллельно и
// сводит их в ранжированное распределение. Проценты считаются от полного
// объема байт до усечения до топ-10, поэтому сумма видимых процентов может
// быть меньше 100.
func (uc *StatsUseCase) aggregateLanguages(ctx context.Context, repos []*domain.Repository) []domain.LanguageStat {
	results := uc.fetchLanguages(ctx, repos)

	byteTotals := make(map[string]int64)
	var grandTotal int64
	for _, res := range results {
		if res.Err != nil {
			// Изолированный сбой: пустой вклад вместо провала всей сборки
			uc.logger.WithFields(logrus.Fields{
				"repo":  res.RepoName,
				"error": res.Err.Error(),
			}).Warn("Language fetch failed, contributing empty byte map")
			continue
		}
		for lang, bytes := range res.Languages {
			byteTotals[lang] += bytes
			grandTotal += bytes
		}
	}

	stats := make([]domain.LanguageStat, 0, len(byteTotals))
	for lang, bytes := range byteTotals {
		pct := 0.0
		if grandTotal > 0 {
			pct = float64(bytes) / float64(grandTotal) * 100.0
		}
		stats = append(stats, domain.LanguageStat{
			Name:       lang,
			Bytes:      bytes,
			Percentage: pct,
			Color:      colorFor(lang),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Bytes != stats[j].Bytes {
			return stats[i].Bytes > stats[j].Bytes
		}
		return stats[i].Name < stats[j].Name
	})

	if len(stats) > topLanguages {
		stats = stats[:topLanguages]
	}
	return stats
}

// fetchLanguages выполняет по одному конкурентному запросу на репозиторий
// с непустой ссылкой на языки. Сбой одного запроса не отменяет остальные.
func (uc *StatsUseCase) fetchLanguages(ctx context.Context, repos []*domain.Repository) []domain.LanguageResult {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results []domain.LanguageResult
	)

	for _, r := range repos {
		if r.LanguagesURL == "" {
			continue
		}

		wg.Add(1)
		go func(r *domain.Repository) {
			defer wg.Done()

			languages, err := uc.gateway.GetLanguages(ctx, r.LanguagesURL)
			res := domain.LanguageResult{RepoName: r.Name, Languages: languages, Err: err}

			mu.Lock()
			results = append(results, res)
			mu.Unlock()
		}(r)
	}

	wg.Wait()
	return results
}

// aggregateTopics считает вхождения топиков и возвращает топ-15.
func aggregateTopics(repos []*domain.Repository) []domain.TopicStat {
	counts := make(map[string]int)
	for _, r := range repos {
		for _, topic := range r.Topics {
			counts[topic]++
		}
	}

	stats := make([]domain.TopicStat, 0, len(counts))
	for topic, count := range counts {
		stats = append(stats, domain.TopicStat{Name: topic, Count: count})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Name < stats[j].Name
	})

	if len(stats) > topTopics {
		stats = stats[:topTopics]
	}
	return stats
}

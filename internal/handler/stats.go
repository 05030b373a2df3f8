package handler

import (
	"net/http"
	"time"

	"portfolio-analytics/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// StatsHandler обрабатывает HTTP-запросы статистики GitHub.
type StatsHandler struct {
	*BaseHandler
	statsUseCase domain.StatsUseCase
	repoUseCase  domain.RepoUseCase
}

// NewStatsHandler создает новый экземпляр StatsHandler.
func NewStatsHandler(statsUseCase domain.StatsUseCase, repoUseCase domain.RepoUseCase, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{
		BaseHandler:  NewBaseHandler(logger),
		statsUseCase: statsUseCase,
		repoUseCase:  repoUseCase,
	}
}

// GetStats обрабатывает GET запрос полного агрегата статистики.
func (h *StatsHandler) GetStats(c echo.Context) error {
	logEntry := h.logRequest(c, "get_stats")
	logEntry.Info("Building stats aggregate")

	stats, err := h.statsUseCase.GetStats(c.Request().Context())
	if err != nil {
		logEntry.WithError(err).Error("Failed to build stats aggregate")
		status, body := toAPIError(err)
		return c.JSON(status, body)
	}

	logEntry.WithFields(logrus.Fields{
		"languages": len(stats.Languages),
		"topics":    len(stats.Topics),
	}).Info("Stats aggregate built")
	return c.JSON(http.StatusOK, toAPIStats(stats))
}

// GetRepositories обрабатывает GET запрос списка репозиториев.
func (h *StatsHandler) GetRepositories(c echo.Context) error {
	logEntry := h.logRequest(c, "get_repositories")
	logEntry.Info("Getting repository list")

	repos, err := h.repoUseCase.GetRepositories(c.Request().Context())
	if err != nil {
		logEntry.WithError(err).Error("Failed to get repositories")
		status, body := toAPIError(err)
		return c.JSON(status, body)
	}

	logEntry.WithField("repo_count", len(repos)).Info("Repository list retrieved")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"repositories": toAPIRepositories(repos),
	})
}

// GetRateLimit обрабатывает GET запрос состояния квоты GitHub API.
func (h *StatsHandler) GetRateLimit(c echo.Context) error {
	logEntry := h.logRequest(c, "get_rate_limit")

	limit, err := h.statsUseCase.GetRateLimit(c.Request().Context())
	if err != nil {
		logEntry.WithError(err).Error("Failed to get rate limit")
		status, body := toAPIError(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, APIRateLimit{
		Limit:     limit.Limit,
		Remaining: limit.Remaining,
		ResetAt:   limit.ResetAt.Format(time.RFC3339),
	})
}

// RefreshCache обрабатывает POST запрос принудительного обновления кеша
// (хук префетча для внешнего слоя оркестрации).
func (h *StatsHandler) RefreshCache(c echo.Context) error {
	logEntry := h.logRequest(c, "refresh_cache")
	logEntry.Info("Refreshing repository cache")

	if err := h.repoUseCase.RefreshRepositories(c.Request().Context()); err != nil {
		logEntry.WithError(err).Error("Failed to refresh cache")
		status, body := toAPIError(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "refreshed"})
}

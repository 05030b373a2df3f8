package handler

import (
	"portfolio-analytics/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*StatsHandler
	*ContactHandler
}

func NewAPIHandler(
	statsUseCase domain.StatsUseCase,
	repoUseCase domain.RepoUseCase,
	contactUseCase domain.ContactUseCase,
	logger *logrus.Logger,
) *APIHandler {

	return &APIHandler{
		StatsHandler:   NewStatsHandler(statsUseCase, repoUseCase, logger),
		ContactHandler: NewContactHandler(contactUseCase, logger),
	}
}

// RegisterRoutes регистрирует маршруты API.
func RegisterRoutes(e *echo.Echo, h *APIHandler) {
	api := e.Group("/api")

	api.GET("/github/stats", h.GetStats)
	api.GET("/github/repos", h.GetRepositories)
	api.GET("/github/rate-limit", h.GetRateLimit)
	api.POST("/github/refresh", h.RefreshCache)
	api.POST("/contact", h.SubmitMessage)
}

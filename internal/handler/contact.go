package handler

import (
	"net/http"

	"portfolio-analytics/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// ContactHandler обрабатывает HTTP-запросы контактной формы.
type ContactHandler struct {
	*BaseHandler
	contactUseCase domain.ContactUseCase
}

// NewContactHandler создает новый экземпляр ContactHandler.
func NewContactHandler(contactUseCase domain.ContactUseCase, logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    NewBaseHandler(logger),
		contactUseCase: contactUseCase,
	}
}

// SubmitMessage обрабатывает POST запрос отправки сообщения.
func (h *ContactHandler) SubmitMessage(c echo.Context) error {
	logEntry := h.logRequest(c, "submit_contact_message")

	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Malformed contact request body")
		return c.JSON(http.StatusBadRequest, toErrorResponse("BAD_REQUEST", "malformed request body"))
	}

	msg := &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if err := h.contactUseCase.SubmitMessage(c.Request().Context(), msg); err != nil {
		logEntry.WithError(err).Warn("Contact message rejected")
		status, body := toAPIError(err)
		return c.JSON(status, body)
	}

	logEntry.WithField("message_id", msg.ID).Info("Contact message stored")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"id": msg.ID,
	})
}

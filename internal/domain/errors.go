package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors (для бизнес-логики)
var (
	// Validation errors
	ErrInvalidLogin          = errors.New("invalid github login")
	ErrInvalidContactName    = errors.New("invalid contact name")
	ErrInvalidContactEmail   = errors.New("invalid contact email")
	ErrInvalidContactMessage = errors.New("invalid contact message")

	// Upstream errors
	ErrProfileNotFound = errors.New("github profile not found")
	ErrRateLimited     = errors.New("github api rate limit exhausted")
)

// APIError представляет типизированную ошибку вызова GitHub API.
// StatusCode == 0 означает сетевой сбой: ответ не был получен вовсе.
type APIError struct {
	StatusCode int
	Status     string
	URL        string
	Message    string
}

func (e *APIError) Error() string {
	if e.IsNetwork() {
		return fmt.Sprintf("github api network error: %s (%s)", e.Message, e.URL)
	}
	return fmt.Sprintf("github api error: %d %s: %s (%s)", e.StatusCode, e.Status, e.Message, e.URL)
}

// IsNetwork сообщает, был ли это транспортный сбой без HTTP-ответа.
func (e *APIError) IsNetwork() bool {
	return e.StatusCode == 0
}

// NewNetworkError создает сетевой вариант APIError (статус 0).
func NewNetworkError(url string, err error) *APIError {
	return &APIError{
		StatusCode: 0,
		Status:     "network error",
		URL:        url,
		Message:    err.Error(),
	}
}

// HTTPError для ответа API
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error HTTPError `json:"error"`
}

// Маппинг domain ошибок в HTTP ошибки
var ErrorMapping = map[error]HTTPError{
	ErrInvalidLogin:          {Code: "INVALID_LOGIN", Message: "github login is not configured or invalid"},
	ErrInvalidContactName:    {Code: "INVALID_NAME", Message: "contact name is empty or too long"},
	ErrInvalidContactEmail:   {Code: "INVALID_EMAIL", Message: "contact email is malformed"},
	ErrInvalidContactMessage: {Code: "INVALID_MESSAGE", Message: "contact message is empty or too long"},
	ErrProfileNotFound:       {Code: "NOT_FOUND", Message: "github profile not found"},
	ErrRateLimited:           {Code: "RATE_LIMITED", Message: "github api quota exhausted, retry later"},
}

// ToHTTPError преобразует domain ошибку в HTTP ошибку
func ToHTTPError(err error) (HTTPError, bool) {
	httpErr, exists := ErrorMapping[err]
	return httpErr, exists
}

// HTTPStatusFor возвращает HTTP-статус для domain или upstream ошибки.
func HTTPStatusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidLogin),
		errors.Is(err, ErrInvalidContactName),
		errors.Is(err, ErrInvalidContactEmail),
		errors.Is(err, ErrInvalidContactMessage):
		return http.StatusBadRequest
	case errors.Is(err, ErrProfileNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrRateLimited):
		return http.StatusServiceUnavailable
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.IsNetwork():
			return http.StatusBadGateway
		case apiErr.StatusCode == http.StatusNotFound:
			return http.StatusNotFound
		case apiErr.StatusCode == http.StatusForbidden,
			apiErr.StatusCode == http.StatusTooManyRequests:
			return http.StatusServiceUnavailable
		default:
			return http.StatusBadGateway
		}
	}

	return http.StatusInternalServerError
}

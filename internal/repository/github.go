package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"portfolio-analytics/internal/domain"

	"github.com/sirupsen/logrus"
)

const (
	userAgent      = "portfolio-analytics/1.0"
	requestTimeout = 15 * time.Second

	maxRetries     = 3
	baseBackoff    = 500 * time.Millisecond
	maxBackoff     = 10 * time.Second
	reposPerPage   = 100
	defaultRetryIn = 60 * time.Second
)

// GitHubRepository реализует domain.GitHubGateway поверх REST API GitHub
// (или совместимого шлюза, заданного базовым URL).
type GitHubRepository struct {
	client  *http.Client
	baseURL string
	token   string
	logger  *logrus.Logger
}

// NewGitHubRepository создает новый экземпляр GitHubRepository.
func NewGitHubRepository(baseURL, token string, logger *logrus.Logger) domain.GitHubGateway {
	return &GitHubRepository{
		client:  &http.Client{Timeout: requestTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		logger:  logger,
	}
}

type githubUserDTO struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio"`
	Location    string    `json:"location"`
	Blog        string    `json:"blog"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type githubRepoDTO struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	Description     *string   `json:"description"`
	HTMLURL         string    `json:"html_url"`
	Homepage        *string   `json:"homepage"`
	Language        *string   `json:"language"`
	LanguagesURL    string    `json:"languages_url"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	PushedAt        time.Time `json:"pushed_at"`
	Topics          []string  `json:"topics"`
	Archived        bool      `json:"archived"`
	Fork            bool      `json:"fork"`
	Private         bool      `json:"private"`
}

type rateLimitDTO struct {
	Resources struct {
		Core struct {
			Limit     int   `json:"limit"`
			Remaining int   `json:"remaining"`
			Reset     int64 `json:"reset"`
		} `json:"core"`
	} `json:"resources"`
}

// GetUser возвращает публичный профиль пользователя.
func (r *GitHubRepository) GetUser(ctx context.Context, login string) (*domain.UserProfile, error) {
	if login == "" {
		return nil, domain.ErrInvalidLogin
	}

	endpoint := fmt.Sprintf("%s/users/%s", r.baseURL, url.PathEscape(login))

	var dto githubUserDTO
	if err := r.getJSON(ctx, endpoint, &dto); err != nil {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	return &domain.UserProfile{
		Login:       dto.Login,
		Name:        dto.Name,
		Bio:         dto.Bio,
		Location:    dto.Location,
		Blog:        dto.Blog,
		PublicRepos: dto.PublicRepos,
		Followers:   dto.Followers,
		Following:   dto.Following,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	}, nil
}

// GetRepositories возвращает все публично видимые репозитории пользователя,
// следуя пагинации через Link-заголовок.
func (r *GitHubRepository) GetRepositories(ctx context.Context, login string) ([]*domain.Repository, error) {
	if login == "" {
		return nil, domain.ErrInvalidLogin
	}

	var all []*domain.Repository
	nextURL := fmt.Sprintf("%s/users/%s/repos?per_page=%d&sort=updated", r.baseURL, url.PathEscape(login), reposPerPage)

	for nextURL != "" {
		var page []githubRepoDTO
		next, err := r.getJSONPage(ctx, nextURL, &page)
		if err != nil {
			return nil, err
		}

		for _, dto := range page {
			all = append(all, toDomainRepository(dto))
		}
		nextURL = next
	}

	return all, nil
}

// GetLanguages возвращает карту язык → байты для одного репозитория.
func (r *GitHubRepository) GetLanguages(ctx context.Context, languagesURL string) (map[string]int64, error) {
	languages := make(map[string]int64)
	if err := r.getJSON(ctx, languagesURL, &languages); err != nil {
		return nil, err
	}
	return languages, nil
}

// GetRateLimit возвращает состояние квоты API (только диагностика).
func (r *GitHubRepository) GetRateLimit(ctx context.Context) (*domain.RateLimit, error) {
	var dto rateLimitDTO
	if err := r.getJSON(ctx, r.baseURL+"/rate_limit", &dto); err != nil {
		return nil, err
	}

	return &domain.RateLimit{
		Limit:     dto.Resources.Core.Limit,
		Remaining: dto.Resources.Core.Remaining,
		ResetAt:   time.Unix(dto.Resources.Core.Reset, 0),
	}, nil
}

func (r *GitHubRepository) getJSON(ctx context.Context, endpoint string, v interface{}) error {
	_, err := r.getJSONPage(ctx, endpoint, v)
	return err
}

// getJSONPage выполняет GET с ретраями и декодирует тело в v.
// Возвращает URL следующей страницы из Link-заголовка, если он есть.
func (r *GitHubRepository) getJSONPage(ctx context.Context, endpoint string, v interface{}) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		next, retryIn, err := r.doOnce(ctx, endpoint, v)
		if err == nil {
			return next, nil
		}
		lastErr = err

		if retryIn < 0 || attempt == maxRetries {
			break
		}

		wait := retryIn
		if wait == 0 {
			wait = backoffDuration(attempt)
		}

		r.logger.WithFields(logrus.Fields{
			"url":     endpoint,
			"attempt": attempt + 1,
			"wait":    wait.String(),
		}).Warn("Retrying GitHub API call")

		select {
		case <-ctx.Done():
			return "", domain.NewNetworkError(endpoint, ctx.Err())
		case <-time.After(wait):
		}
	}

	return "", lastErr
}

// doOnce выполняет один запрос. retryIn < 0 — не ретраить; retryIn == 0 —
// ретраить с экспоненциальным бэкоффом; retryIn > 0 — ждать указанное время
// (подсказка из Retry-After / X-RateLimit-Reset).
func (r *GitHubRepository) doOnce(ctx context.Context, endpoint string, v interface{}) (next string, retryIn time.Duration, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", -1, domain.NewNetworkError(endpoint, err)
	}
	r.applyHeaders(req)

	resp, err := r.client.Do(req)
	if err != nil {
		// Транспортный сбой: ответа нет, статус 0, ретраится
		return "", 0, domain.NewNetworkError(endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			return "", -1, domain.NewNetworkError(endpoint, fmt.Errorf("decode response: %w", err))
		}
		return nextPageURL(resp.Header.Get("Link")), 0, nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	apiErr := &domain.APIError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		URL:        endpoint,
		Message:    messageFromBody(body),
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0":
		return "", rateLimitWait(resp.Header), apiErr
	case resp.StatusCode >= 500:
		return "", 0, apiErr
	default:
		return "", -1, apiErr
	}
}

func (r *GitHubRepository) applyHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}
}

// messageFromBody пытается вытащить поле message из JSON тела,
// иначе возвращает сырой текст.
func messageFromBody(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return strings.TrimSpace(string(body))
}

// rateLimitWait извлекает время ожидания из Retry-After или
// X-RateLimit-Reset; при отсутствии обоих — минута по умолчанию.
func rateLimitWait(h http.Header) time.Duration {
	if v := h.Get("Retry-After"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	if v := h.Get("X-RateLimit-Reset"); v != "" {
		if unix, err := strconv.ParseInt(v, 10, 64); err == nil {
			if wait := time.Until(time.Unix(unix, 0)); wait > 0 {
				return wait
			}
		}
	}
	return defaultRetryIn
}

func backoffDuration(attempt int) time.Duration {
	d := time.Duration(math.Pow(2, float64(attempt))) * baseBackoff
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}

// nextPageURL извлекает rel="next" из Link-заголовка GitHub.
func nextPageURL(linkHeader string) string {
	if linkHeader == "" {
		return ""
	}
	for _, part := range strings.Split(linkHeader, ",") {
		sections := strings.Split(part, ";")
		if len(sections) < 2 {
			continue
		}
		if strings.TrimSpace(sections[1]) == `rel="next"` {
			return strings.Trim(strings.TrimSpace(sections[0]), "<>")
		}
	}
	return ""
}

func toDomainRepository(dto githubRepoDTO) *domain.Repository {
	return &domain.Repository{
		ID:           dto.ID,
		Name:         dto.Name,
		FullName:     dto.FullName,
		Description:  dto.Description,
		HTMLURL:      dto.HTMLURL,
		Homepage:     dto.Homepage,
		Language:     dto.Language,
		LanguagesURL: dto.LanguagesURL,
		Topics:       dto.Topics,
		Stars:        dto.StargazersCount,
		Forks:        dto.ForksCount,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
		PushedAt:     dto.PushedAt,
		Archived:     dto.Archived,
		Fork:         dto.Fork,
		Private:      dto.Private,
	}
}

package handler

import (
	"errors"
	"time"

	"portfolio-analytics/internal/domain"
)

// API модели ответов и преобразование доменных моделей в них

type APIRepository struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	FullName    string   `json:"full_name"`
	Description *string  `json:"description"`
	HTMLURL     string   `json:"html_url"`
	Homepage    *string  `json:"homepage"`
	Language    *string  `json:"language"`
	Topics      []string `json:"topics"`
	Stars       int      `json:"stars"`
	Forks       int      `json:"forks"`
	UpdatedAt   string   `json:"updated_at"`
	Category    string   `json:"category"`
}

type APILanguageStat struct {
	Name       string  `json:"name"`
	Bytes      int64   `json:"bytes"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

type APITopicStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type APIContributionDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

type APIContributionWeek struct {
	Days []APIContributionDay `json:"days"`
}

type APIProfile struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
	Blog        string `json:"blog"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	CreatedAt   string `json:"created_at"`
}

type APIActivity struct {
	ActiveYears      []int `json:"active_years"`
	CurrentStreak    int   `json:"current_streak"`
	LongestStreak    int   `json:"longest_streak"`
	EstimatedCommits int   `json:"estimated_commits"`
}

type APIStats struct {
	Profile        APIProfile            `json:"profile"`
	CategoryCounts map[string]int        `json:"category_counts"`
	Languages      []APILanguageStat     `json:"languages"`
	Topics         []APITopicStat        `json:"topics"`
	TotalStars     int                   `json:"total_stars"`
	TotalForks     int                   `json:"total_forks"`
	Activity       APIActivity           `json:"activity"`
	Calendar       []APIContributionWeek `json:"calendar"`
	GeneratedAt    string                `json:"generated_at"`
}

type APIRateLimit struct {
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
	ResetAt   string `json:"reset_at"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func toAPIRepository(r *domain.Repository) APIRepository {
	return APIRepository{
		ID:          r.ID,
		Name:        r.Name,
		FullName:    r.FullName,
		Description: r.Description,
		HTMLURL:     r.HTMLURL,
		Homepage:    r.Homepage,
		Language:    r.Language,
		Topics:      r.Topics,
		Stars:       r.Stars,
		Forks:       r.Forks,
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
		Category:    string(r.Category),
	}
}

func toAPIRepositories(repos []*domain.Repository) []APIRepository {
	result := make([]APIRepository, len(repos))
	for i, r := range repos {
		result[i] = toAPIRepository(r)
	}
	return result
}

func toAPIStats(s *domain.StatsAggregate) APIStats {
	counts := make(map[string]int, len(s.CategoryCounts))
	for category, n := range s.CategoryCounts {
		counts[string(category)] = n
	}

	languages := make([]APILanguageStat, len(s.Languages))
	for i, l := range s.Languages {
		languages[i] = APILanguageStat(l)
	}

	topics := make([]APITopicStat, len(s.Topics))
	for i, t := range s.Topics {
		topics[i] = APITopicStat(t)
	}

	calendar := make([]APIContributionWeek, len(s.Calendar))
	for i, week := range s.Calendar {
		days := make([]APIContributionDay, len(week.Days))
		for j, day := range week.Days {
			days[j] = APIContributionDay(day)
		}
		calendar[i] = APIContributionWeek{Days: days}
	}

	return APIStats{
		Profile: APIProfile{
			Login:       s.Profile.Login,
			Name:        s.Profile.Name,
			Bio:         s.Profile.Bio,
			Location:    s.Profile.Location,
			Blog:        s.Profile.Blog,
			PublicRepos: s.Profile.PublicRepos,
			Followers:   s.Profile.Followers,
			Following:   s.Profile.Following,
			CreatedAt:   s.Profile.CreatedAt.Format(time.RFC3339),
		},
		CategoryCounts: counts,
		Languages:      languages,
		Topics:         topics,
		TotalStars:     s.TotalStars,
		TotalForks:     s.TotalForks,
		Activity: APIActivity{
			ActiveYears:      s.Activity.ActiveYears,
			CurrentStreak:    s.Activity.CurrentStreak,
			LongestStreak:    s.Activity.LongestStreak,
			EstimatedCommits: s.Activity.EstimatedCommits,
		},
		Calendar:    calendar,
		GeneratedAt: s.GeneratedAt.Format(time.RFC3339),
	}
}

func toErrorResponse(code, message string) domain.ErrorResponse {
	return domain.ErrorResponse{
		Error: domain.HTTPError{
			Code:    code,
			Message: message,
		},
	}
}

func toAPIError(err error) (int, domain.ErrorResponse) {
	status := domain.HTTPStatusFor(err)
	if httpErr, ok := domain.ToHTTPError(err); ok {
		return status, domain.ErrorResponse{Error: httpErr}
	}

	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		code := "UPSTREAM_ERROR"
		if apiErr.IsNetwork() {
			code = "UPSTREAM_UNREACHABLE"
		}
		return status, toErrorResponse(code, apiErr.Message)
	}

	return status, toErrorResponse("INTERNAL_ERROR", err.Error())
}

package domain

import "time"

// UserProfile представляет публичный профиль пользователя GitHub.
type UserProfile struct {
	Login       string
	Name        string
	Bio         string
	Location    string
	Blog        string
	PublicRepos int
	Followers   int
	Following   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LanguageStat представляет язык в агрегированном распределении.
// Percentage считается от полного объема байт по всем подходящим
// репозиториям, до усечения списка до топ-10.
type LanguageStat struct {
	Name       string
	Bytes      int64
	Percentage float64
	Color      string
}

// TopicStat представляет топик и число его вхождений по репозиториям.
type TopicStat struct {
	Name  string
	Count int
}

// ContributionDay представляет один день календаря активности.
type ContributionDay struct {
	Date  string
	Count int
	Level int
}

// ContributionWeek представляет неделю календаря. Первая и последняя
// недели года могут содержать меньше семи дней.
type ContributionWeek struct {
	Days []ContributionDay
}

// LevelForCount отображает счетчик активности в уровень [0,4]
// по фиксированным порогам.
func LevelForCount(count int) int {
	switch {
	case count > 10:
		return 4
	case count > 7:
		return 3
	case count > 4:
		return 2
	case count > 1:
		return 1
	default:
		return 0
	}
}

// ActivityStats представляет грубые эвристические показатели активности.
// Это приближения по временным меткам репозиториев, не реальная история
// коммитов.
type ActivityStats struct {
	ActiveYears      []int
	CurrentStreak    int
	LongestStreak    int
	EstimatedCommits int
}

// RateLimit представляет состояние квоты GitHub API (диагностика).
type RateLimit struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// LanguageResult представляет исход запроса языков одного репозитория.
// Err != nil означает деградацию до пустой карты, а не пустой репозиторий.
type LanguageResult struct {
	RepoName  string
	Languages map[string]int64
	Err       error
}

// StatsAggregate — итоговый агрегат, возвращаемый UI-слою.
// Пересчитывается на каждый запрос и не мутируется после возврата.
type StatsAggregate struct {
	Profile        *UserProfile
	CategoryCounts map[Category]int
	Languages      []LanguageStat
	Topics         []TopicStat
	TotalStars     int
	TotalForks     int
	Activity       ActivityStats
	Calendar       []ContributionWeek
	GeneratedAt    time.Time
}

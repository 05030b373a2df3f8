package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	GithubUser    string
	GithubToken   string
	GithubAPIURL  string
	ExcludedRepos []string
	CacheTTL      time.Duration
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	ServerPort    string
}

func LoadConfig() (Config, error) {

	err := godotenv.Load()

	return Config{
		GithubUser:    getEnv("GITHUB_USER", "timDeHof"),
		GithubToken:   getEnv("GITHUB_TOKEN", ""),
		GithubAPIURL:  getEnv("GITHUB_API_URL", "https://api.github.com"),
		ExcludedRepos: getEnvList("EXCLUDED_REPOS", ""),
		CacheTTL:      getEnvMinutes("CACHE_TTL_MINUTES", 5),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "password"),
		DBName:        getEnv("DB_NAME", "portfolio"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
	}, err
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}

func getEnvMinutes(key string, defaultValue int) time.Duration {
	minutes := defaultValue
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			minutes = parsed
		}
	}
	return time.Duration(minutes) * time.Minute
}

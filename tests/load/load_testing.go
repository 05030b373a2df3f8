package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	targetHost = "http://localhost:8080"
	rps        = 5
	duration   = 2 * time.Minute
)

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

var httpc = &http.Client{Timeout: 10 * time.Second}

// Прогрев: первый запрос статистики идет в GitHub API, остальные должны
// попадать в TTL-кеш
func warmup() error {
	log.Println("Warmup: priming the repository cache...")

	req, _ := http.NewRequest(http.MethodPost, targetHost+"/api/github/refresh", nil)
	resp, err := httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		log.Printf("WARN github/refresh returned %d\n", resp.StatusCode)
	}
	return nil
}

// Targeter
func makeTargeter() vegeta.Targeter {
	return func(t *vegeta.Target) error {
		r := rand.Float64()

		// 55% GET полного агрегата
		if r < 0.55 {
			t.Method = http.MethodGet
			t.URL = targetHost + "/api/github/stats"
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 30% GET списка репозиториев
		if r < 0.85 {
			t.Method = http.MethodGet
			t.URL = targetHost + "/api/github/repos"
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 10% GET health
		if r < 0.95 {
			t.Method = http.MethodGet
			t.URL = targetHost + "/health"
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 5% POST контактной формы
		body, _ := json.Marshal(ContactRequest{
			Name:    fmt.Sprintf("load-%d", time.Now().UnixNano()),
			Email:   "load@example.com",
			Message: "load test message",
		})
		t.Method = http.MethodPost
		t.URL = targetHost + "/api/contact"
		t.Body = body
		t.Header = map[string][]string{"Content-Type": {"application/json"}}
		return nil
	}
}

// Attack
func runAttack() {
	rate := vegeta.Rate{Freq: rps, Per: time.Second}
	attacker := vegeta.NewAttacker()
	targeter := makeTargeter()

	var metrics vegeta.Metrics
	log.Printf("Attack: %d rps for %v\n", rps, duration)

	for res := range attacker.Attack(targeter, rate, duration, "portfolio-analytics") {
		metrics.Add(res)
	}
	metrics.Close()

	log.Printf("Requests: %d\n", metrics.Requests)
	log.Printf("Success rate: %.2f%%\n", metrics.Success*100)
	log.Printf("p50: %v, p95: %v, p99: %v\n",
		metrics.Latencies.P50, metrics.Latencies.P95, metrics.Latencies.P99)
	log.Printf("Status codes: %v\n", metrics.StatusCodes)
}

func main() {
	if err := warmup(); err != nil {
		log.Fatalf("warmup failed: %v", err)
	}

	runAttack()
}

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	targetHost    = "http://localhost:8080"
	apiBase       = targetHost + "/api/v1"
	devTelegramID = "764381135"
	rps           = 5
	duration      = 3 * time.Minute
)

type TaskCreateRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Priority     string `json:"priority"`
	AssignToSelf bool   `json:"assign_to_self"`
	Category     string `json:"category"`
}

type taskListResponse struct {
	Tasks []struct {
		ID string `json:"id"`
	} `json:"tasks"`
}

var (
	taskIDs []string
	newsIDs = []int64{1, 2}
	httpc   = &http.Client{Timeout: 10 * time.Second}
)

func postJSON(url string, body any) (int, error) {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Telegram-Id", devTelegramID)
	resp, err := httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// Seed
func seedData() error {
	log.Println("Seeding: creating tasks...")

	priorities := []string{"low", "medium", "high"}
	for i := 1; i <= 50; i++ {
		req := TaskCreateRequest{
			Title:        fmt.Sprintf("Нагрузочная задача %03d", i),
			Description:  fmt.Sprintf("Автосозданная задача %d", i),
			Priority:     priorities[i%len(priorities)],
			AssignToSelf: i%2 == 0,
			Category:     "Нагрузка",
		}

		status, err := postJSON(apiBase+"/tasks", req)
		if err != nil {
			return err
		}
		if status >= 400 {
			log.Printf("WARN tasks returned %d\n", status)
		}
		time.Sleep(15 * time.Millisecond)
	}

	// Собираем идентификаторы для триггеров
	req, _ := http.NewRequest(http.MethodGet, apiBase+"/tasks", nil)
	req.Header.Set("X-Telegram-Id", devTelegramID)
	resp, err := httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var list taskListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return err
	}
	for _, t := range list.Tasks {
		taskIDs = append(taskIDs, t.ID)
	}

	log.Printf("Seed completed: tasks=%d\n", len(taskIDs))
	return nil
}

// Targeter
func makeTargeter() vegeta.Targeter {
	header := map[string][]string{
		"Accept":        {"application/json"},
		"X-Telegram-Id": {devTelegramID},
	}
	jsonHeader := map[string][]string{
		"Content-Type":  {"application/json"},
		"X-Telegram-Id": {devTelegramID},
	}

	return func(t *vegeta.Target) error {
		r := rand.Float64()

		// 40% GET news
		if r < 0.40 {
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/news?limit=10&offset=0", apiBase)
			t.Body = nil
			t.Header = header
			return nil
		}

		// 30% GET tasks
		if r < 0.70 {
			statuses := []string{"all", "pending", "in-progress", "completed"}
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/tasks?status=%s", apiBase, statuses[rand.Intn(len(statuses))])
			t.Body = nil
			t.Header = header
			return nil
		}

		// 15% GET employees с поиском
		if r < 0.85 {
			queries := []string{"", "Иванов", "продаж", "CFU"}
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/employees?query=%s", apiBase, queries[rand.Intn(len(queries))])
			t.Body = nil
			t.Header = header
			return nil
		}

		// 8% лайки и дизлайки
		if r < 0.93 {
			newsID := newsIDs[rand.Intn(len(newsIDs))]
			action := "like"
			if rand.Intn(2) == 0 {
				action = "dislike"
			}
			t.Method = http.MethodPost
			t.URL = fmt.Sprintf("%s/news/%s/%d", apiBase, action, newsID)
			t.Body = nil
			t.Header = jsonHeader
			return nil
		}

		// 4% GET statistics/chart
		if r < 0.97 {
			periods := []string{"week", "month", "year", "all"}
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/statistics/chart?period=%s", apiBase, periods[rand.Intn(len(periods))])
			t.Body = nil
			t.Header = header
			return nil
		}

		// 2% POST tasks
		if r < 0.99 {
			body, _ := json.Marshal(TaskCreateRequest{
				Title:        fmt.Sprintf("loadtask-%d", time.Now().UnixNano()),
				Description:  "Задача из нагрузочного теста",
				Priority:     "medium",
				AssignToSelf: false,
			})
			t.Method = http.MethodPost
			t.URL = apiBase + "/tasks"
			t.Body = body
			t.Header = jsonHeader
			return nil
		}

		// 1% take
		taskID := taskIDs[rand.Intn(len(taskIDs))]
		t.Method = http.MethodPost
		t.URL = fmt.Sprintf("%s/tasks/%s/take", apiBase, taskID)
		t.Body = nil
		t.Header = jsonHeader
		return nil
	}
}

// Attack
func runAttack() {
	rate := vegeta.Rate{Freq: rps, Per: time.Second}
	attacker := vegeta.NewAttacker()
	targeter := makeTargeter()

	var metrics vegeta.Metrics

	log.Printf("Starting attack: %s for %s", targetHost, duration)
	for res := range attacker.Attack(targeter, rate, duration, "load-test") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
}

func main() {
	rand.Seed(time.Now().UnixNano())

	if err := seedData(); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	runAttack()
}

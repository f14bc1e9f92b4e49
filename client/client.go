// Package client — Go-клиент корпоративного портала для мини-приложения:
// типизированные обертки над REST API, резолвер Telegram-идентификатора
// и координатор оптимистичных мутаций.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"corporate-portal-service/api"
)

// APIError — ошибка, возвращенная сервером портала.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("portal api: %s (%s, status %d)", e.Message, e.Code, e.StatusCode)
}

// Client — HTTP-клиент портала. Все методы принимают context и передают
// Telegram ID вызывающего в заголовке запроса.
type Client struct {
	baseURL    string
	telegramID string
	httpc      *http.Client
}

// New создает клиент портала. baseURL указывает на корень API,
// например "http://localhost:8080/api/v1".
func New(baseURL, telegramID string) *Client {
	return &Client{
		baseURL:    baseURL,
		telegramID: telegramID,
		httpc:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Telegram-Id", c.telegramID)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("portal request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp api.ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr != nil {
			return &APIError{StatusCode: resp.StatusCode, Code: "UNKNOWN", Message: resp.Status}
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       errResp.Error.Code,
			Message:    errResp.Error.Message,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// GetUser возвращает профиль пользователя по Telegram ID.
func (c *Client) GetUser(ctx context.Context, telegramID string) (*api.User, error) {
	var user api.User
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(telegramID), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetNews возвращает страницу новостей.
func (c *Client) GetNews(ctx context.Context, limit, offset int) (*api.NewsResponse, error) {
	q := url.Values{}
	q.Set("limit", fmt.Sprintf("%d", limit))
	q.Set("offset", fmt.Sprintf("%d", offset))

	var page api.NewsResponse
	if err := c.do(ctx, http.MethodGet, "/news", q, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// LikeNews увеличивает счетчик лайков новости.
func (c *Client) LikeNews(ctx context.Context, newsID int64) (*api.LikeResponse, error) {
	var resp api.LikeResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/news/like/%d", newsID), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DislikeNews уменьшает счетчик лайков новости.
func (c *Client) DislikeNews(ctx context.Context, newsID int64) (*api.LikeResponse, error) {
	var resp api.LikeResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/news/dislike/%d", newsID), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetTasks возвращает отфильтрованный список задач.
func (c *Client) GetTasks(ctx context.Context, query, status, assignment string) (*api.TaskListResponse, error) {
	q := url.Values{}
	if query != "" {
		q.Set("query", query)
	}
	if status != "" {
		q.Set("status", status)
	}
	if assignment != "" {
		q.Set("assignment", assignment)
	}

	var resp api.TaskListResponse
	if err := c.do(ctx, http.MethodGet, "/tasks", q, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateTask создает задачу.
func (c *Client) CreateTask(ctx context.Context, req api.PostTasksJSONBody) (*api.Task, error) {
	var task api.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", nil, req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// TakeTask берет задачу в работу.
func (c *Client) TakeTask(ctx context.Context, taskID string) (*api.Task, error) {
	var task api.Task
	if err := c.do(ctx, http.MethodPost, "/tasks/"+url.PathEscape(taskID)+"/take", nil, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CompleteTask завершает задачу.
func (c *Client) CompleteTask(ctx context.Context, taskID string) (*api.Task, error) {
	var task api.Task
	if err := c.do(ctx, http.MethodPost, "/tasks/"+url.PathEscape(taskID)+"/complete", nil, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// GetEmployees возвращает дерево отделов, отфильтрованное по запросу.
func (c *Client) GetEmployees(ctx context.Context, query string) (*api.DepartmentsResponse, error) {
	q := url.Values{}
	if query != "" {
		q.Set("query", query)
	}

	var resp api.DepartmentsResponse
	if err := c.do(ctx, http.MethodGet, "/employees", q, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetStatistics возвращает сырой временной ряд за окно [start, end].
func (c *Client) GetStatistics(ctx context.Context, start, end time.Time) (*api.StatisticsResponse, error) {
	q := url.Values{}
	q.Set("start_date", start.Format(time.RFC3339))
	q.Set("end_date", end.Format(time.RFC3339))

	var resp api.StatisticsResponse
	if err := c.do(ctx, http.MethodGet, "/statistics/graph", q, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetChart возвращает подготовленные данные графика за период.
func (c *Client) GetChart(ctx context.Context, period string) (*api.ChartResponse, error) {
	q := url.Values{}
	q.Set("period", period)

	var resp api.ChartResponse
	if err := c.do(ctx, http.MethodGet, "/statistics/chart", q, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Package client - программный клиент HTTP API tendertrack.
// Зеркалирует четыре операции на каждый ресурс и отправляет на запись
// только изменяемые поля: id и таймстемпы назначает сервер.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"tendertrack/models"
)

// APIError - ответ сервера со статусом вне 2xx.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// tenderWrite - изменяемые поля тендера, уходящие на создание и обновление.
type tenderWrite struct {
	TenderNumber string      `json:"tender_number"`
	Description  string      `json:"description"`
	ClosingDate  models.Date `json:"closing_date"`
	SiteVisits   string      `json:"site_visits"`
}

// taskWrite - изменяемые поля задачи.
type taskWrite struct {
	Description string      `json:"description"`
	AssignedTo  string      `json:"assigned_to"`
	DueDate     models.Date `json:"due_date"`
	Status      string      `json:"status,omitempty"`
}

func (c *Client) ListTenders(ctx context.Context) ([]models.Tender, error) {
	var tenders []models.Tender
	err := c.do(ctx, http.MethodGet, "/api/tenders", nil, &tenders)
	return tenders, err
}

func (c *Client) CreateTender(ctx context.Context, t models.Tender) (*models.Tender, error) {
	created := &models.Tender{}
	err := c.do(ctx, http.MethodPost, "/api/tenders", writeTender(t), created)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) UpdateTender(ctx context.Context, id int, t models.Tender) (*models.Tender, error) {
	updated := &models.Tender{}
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/tenders/%d", id), writeTender(t), updated)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Client) DeleteTender(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/tenders/%d", id), nil, nil)
}

func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &tasks)
	return tasks, err
}

func (c *Client) CreateTask(ctx context.Context, t models.Task) (*models.Task, error) {
	created := &models.Task{}
	err := c.do(ctx, http.MethodPost, "/api/tasks", writeTask(t), created)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) UpdateTask(ctx context.Context, id int, t models.Task) (*models.Task, error) {
	updated := &models.Task{}
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/tasks/%d", id), writeTask(t), updated)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Client) DeleteTask(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), nil, nil)
}

func writeTender(t models.Tender) tenderWrite {
	return tenderWrite{
		TenderNumber: t.TenderNumber,
		Description:  t.Description,
		ClosingDate:  t.ClosingDate,
		SiteVisits:   t.SiteVisits,
	}
}

func writeTask(t models.Task) taskWrite {
	return taskWrite{
		Description: t.Description,
		AssignedTo:  t.AssignedTo,
		DueDate:     t.DueDate,
		Status:      t.Status,
	}
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		data, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(data, &apiErr) != nil || apiErr.Error == "" {
			apiErr.Error = strings.TrimSpace(string(data))
		}
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

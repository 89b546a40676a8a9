package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tendertrack/db"
	"tendertrack/internal/handlers"
	"tendertrack/internal/handlers/testutils"
	"tendertrack/models"
)

func TestListTasksHandler(t *testing.T) {
	handler := newTestHandler(&MockStorage{})

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	w := httptest.NewRecorder()

	handler.ListTasksHandler(w, req)

	res := w.Result()
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)

	var tasks []models.Task
	require.NoError(t, json.NewDecoder(res.Body).Decode(&tasks))
	require.Len(t, tasks, 2)
	require.Equal(t, "Newer task", tasks[0].Description)
	require.Equal(t, "Older task", tasks[1].Description)
}

func TestCreateTaskDefaultStatus(t *testing.T) {
	router := handlers.NewRouter(newTestHandler(&MockStorage{}))

	reqBody := `{"description":"Ship report","assigned_to":"Alex","due_date":"2025-03-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()

	require.Equal(t, http.StatusCreated, res.StatusCode)

	var created models.Task
	require.NoError(t, json.NewDecoder(res.Body).Decode(&created))
	require.Equal(t, "Ship report", created.Description)
	require.Equal(t, "Alex", created.AssignedTo)
	require.Equal(t, "2025-03-01", created.DueDate.Format("2006-01-02"))
	require.Equal(t, models.TaskStatusPending, created.Status)
	require.NotZero(t, created.ID)
	require.True(t, created.CreatedAt.Equal(created.UpdatedAt))
}

func TestCreateTaskInvalidStatus(t *testing.T) {
	mockStore := &MockStorage{}
	router := handlers.NewRouter(newTestHandler(mockStore))

	reqBody := `{"description":"Ship report","assigned_to":"Alex","due_date":"2025-03-01","status":"DONE"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	require.Zero(t, mockStore.Calls)
}

func TestCreateTaskInvalidDate(t *testing.T) {
	router := handlers.NewRouter(newTestHandler(&MockStorage{}))

	reqBody := `{"description":"Ship report","assigned_to":"Alex","due_date":"March 1st"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestUpdateTaskStatus(t *testing.T) {
	handler := newTestHandler(&MockStorage{})

	reqBody := `{"description":"Ship report","assigned_to":"Alex","due_date":"2025-03-01","status":"SENT"}`
	req := httptest.NewRequest(http.MethodPut, "/api/tasks/1", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	req = testutils.WithChiURLParams(req, map[string]string{"id": "1"})

	w := httptest.NewRecorder()
	handler.UpdateTaskHandler(w, req)

	res := w.Result()
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)

	var updated models.Task
	require.NoError(t, json.NewDecoder(res.Body).Decode(&updated))
	require.Equal(t, 1, updated.ID)
	require.Equal(t, models.TaskStatusSent, updated.Status)
	require.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestUpdateTaskNotFound(t *testing.T) {
	mockStore := &MockStorage{
		UpdateTaskFunc: func(ctx context.Context, task *models.Task) error {
			return db.ErrNotFound
		},
	}
	router := handlers.NewRouter(newTestHandler(mockStore))

	reqBody := `{"description":"d","assigned_to":"Alex","due_date":"2025-03-01"}`
	req := httptest.NewRequest(http.MethodPut, "/api/tasks/42", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestUpdateTaskIDRequired(t *testing.T) {
	router := handlers.NewRouter(newTestHandler(&MockStorage{}))

	reqBody := `{"description":"d","assigned_to":"Alex","due_date":"2025-03-01"}`
	req := httptest.NewRequest(http.MethodPut, "/api/tasks", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Contains(t, string(body), "ID required")
}

func TestDeleteTaskTwice(t *testing.T) {
	deleted := false
	mockStore := &MockStorage{
		DeleteTaskFunc: func(ctx context.Context, id int) error {
			if deleted {
				return db.ErrNotFound
			}
			deleted = true
			return nil
		},
	}
	router := handlers.NewRouter(newTestHandler(mockStore))

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Result().StatusCode)

	req = httptest.NewRequest(http.MethodDelete, "/api/tasks/3", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

package handlers

import (
	"net/http"

	"tendertrack/models"
)

// ListTasksHandler возвращает все задачи, новые первыми.
func (h *Handler) ListTasksHandler(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.Store.ListTasks(r.Context())
	if err != nil {
		h.storageError(w, r, err, "failed to list tasks")
		return
	}
	respondJSON(w, http.StatusOK, tasks)
}

// CreateTaskHandler обрабатывает POST /api/tasks, статус по умолчанию PENDING.
func (h *Handler) CreateTaskHandler(w http.ResponseWriter, r *http.Request) {
	var task models.Task
	if !h.decodeBody(w, r, &task) {
		return
	}
	if task.Status == "" {
		task.Status = models.TaskStatusPending
	}

	if err := h.Store.CreateTask(r.Context(), &task); err != nil {
		h.storageError(w, r, err, "failed to create task")
		return
	}
	respondJSON(w, http.StatusCreated, task)
}

// UpdateTaskHandler перезаписывает все изменяемые поля задачи (last-write-wins).
func (h *Handler) UpdateTaskHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var task models.Task
	if !h.decodeBody(w, r, &task) {
		return
	}
	task.ID = id

	if err := h.Store.UpdateTask(r.Context(), &task); err != nil {
		h.storageError(w, r, err, "failed to update task")
		return
	}
	respondJSON(w, http.StatusOK, task)
}

// DeleteTaskHandler удаляет задачу по id.
func (h *Handler) DeleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Store.DeleteTask(r.Context(), id); err != nil {
		h.storageError(w, r, err, "failed to delete task")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"id": id, "status": "deleted"})
}

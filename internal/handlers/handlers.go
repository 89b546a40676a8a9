package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"tendertrack/db"
)

// Ограничение размера тела, чтобы избежать DoS
const maxBodySize = 1048576

// Handler оборачивает Storage для доступа к данным
type Handler struct {
	Store    StorageInterface
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler создает новый Handler
func NewHandler(store StorageInterface, logger *slog.Logger) *Handler {
	return &Handler{
		Store:    store,
		validate: validator.New(),
		logger:   logger,
	}
}

// PingHandler отвечает "ok" для проверки сервера
func (h *Handler) PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// IDRequiredHandler отвечает на PUT/DELETE без id в пути.
func (h *Handler) IDRequiredHandler(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusBadRequest, "ID required")
}

// MethodNotAllowedHandler отвечает на неподдерживаемые методы.
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// decodeBody читает тело запроса, разбирает JSON и проверяет обязательные поля.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read request body")
		return false
	}
	defer r.Body.Close()

	if err := json.Unmarshal(body, dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// storageError превращает ошибку хранилища в HTTP-ответ, детали не раскрываются.
func (h *Handler) storageError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if errors.Is(err, db.ErrNotFound) {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	h.logger.ErrorContext(r.Context(), msg, "error", err)
	respondError(w, http.StatusInternalServerError, "Internal server error")
}

// pathID извлекает числовой id из пути.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		respondError(w, http.StatusBadRequest, "ID required")
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid ID")
		return 0, false
	}
	return id, true
}

func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]string{"error": message})
}

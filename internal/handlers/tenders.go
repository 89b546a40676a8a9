package handlers

import (
	"net/http"

	"tendertrack/models"
)

// ListTendersHandler возвращает все тендеры, новые первыми.
func (h *Handler) ListTendersHandler(w http.ResponseWriter, r *http.Request) {
	tenders, err := h.Store.ListTenders(r.Context())
	if err != nil {
		h.storageError(w, r, err, "failed to list tenders")
		return
	}
	respondJSON(w, http.StatusOK, tenders)
}

// CreateTenderHandler обрабатывает POST /api/tenders
func (h *Handler) CreateTenderHandler(w http.ResponseWriter, r *http.Request) {
	var tender models.Tender
	if !h.decodeBody(w, r, &tender) {
		return
	}

	if err := h.Store.CreateTender(r.Context(), &tender); err != nil {
		h.storageError(w, r, err, "failed to create tender")
		return
	}
	respondJSON(w, http.StatusCreated, tender)
}

// UpdateTenderHandler перезаписывает все изменяемые поля тендера (last-write-wins).
func (h *Handler) UpdateTenderHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var tender models.Tender
	if !h.decodeBody(w, r, &tender) {
		return
	}
	tender.ID = id

	if err := h.Store.UpdateTender(r.Context(), &tender); err != nil {
		h.storageError(w, r, err, "failed to update tender")
		return
	}
	respondJSON(w, http.StatusOK, tender)
}

// DeleteTenderHandler удаляет тендер по id.
func (h *Handler) DeleteTenderHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Store.DeleteTender(r.Context(), id); err != nil {
		h.storageError(w, r, err, "failed to delete tender")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"id": id, "status": "deleted"})
}

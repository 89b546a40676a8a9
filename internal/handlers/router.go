package handlers

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"tendertrack/internal/middleware"
)

// NewRouter собирает таблицу маршрутов API со стандартной цепочкой middleware.
// PUT и DELETE на корень коллекции зарегистрированы явно и отвечают 400,
// чтобы отсутствие id оставалось ошибкой клиента, а не 404 роутера.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS)
	r.MethodNotAllowed(MethodNotAllowedHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", h.PingHandler)

		// тендеры
		r.Get("/tenders", h.ListTendersHandler)
		r.Post("/tenders", h.CreateTenderHandler)
		r.Put("/tenders", h.IDRequiredHandler)
		r.Delete("/tenders", h.IDRequiredHandler)
		r.Put("/tenders/{id}", h.UpdateTenderHandler)
		r.Delete("/tenders/{id}", h.DeleteTenderHandler)

		// задачи
		r.Get("/tasks", h.ListTasksHandler)
		r.Post("/tasks", h.CreateTaskHandler)
		r.Put("/tasks", h.IDRequiredHandler)
		r.Delete("/tasks", h.IDRequiredHandler)
		r.Put("/tasks/{id}", h.UpdateTaskHandler)
		r.Delete("/tasks/{id}", h.DeleteTaskHandler)
	})

	return r
}

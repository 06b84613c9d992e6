package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts every page and action on a chi router.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.health)
	r.Get("/", h.root)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.listPage)
		r.Post("/", h.create)
		r.Get("/new", h.newForm)
		r.Get("/low-stock", h.lowStockPage)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.detailPage)
			r.Get("/edit", h.editForm)
			r.Post("/edit", h.update)
			r.Post("/delete", h.delete)
			r.Post("/stock", h.adjustStock)
			r.Post("/stock/reset", h.resetStock)
		})
	})

	r.Post("/ui/sidebar", h.toggleSidebar)
	r.Post("/ui/dark-mode", h.toggleDarkMode)

	return r
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

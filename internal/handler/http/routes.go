package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/posts", h.listPosts)
		r.Get("/api/posts/slug/{slug}", h.getPostBySlug)
		r.Get("/api/posts/{id}", h.getPost)
		r.Get("/api/categories", h.listCategories)

		r.Get("/api/health", h.health)
		r.Post("/api/logs", h.ingestLogs)
	})

	// routes requiring a bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/posts", h.createPost)
		r.Put("/api/posts/{id}", h.updatePost)
		r.Delete("/api/posts/{id}", h.deletePost)

		r.Post("/api/categories", h.createCategory)
		r.Delete("/api/categories/{id}", h.deleteCategory)
	})

	// uploaded images, when stored on the local disk
	if h.uploadsDir != "" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploadsDir)))
		router.Get("/uploads/*", fileServer.ServeHTTP)
	}

	return router
}

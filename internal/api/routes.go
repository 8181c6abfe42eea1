package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Routes(m *Middleware, auth *Authenticator, corsOrigins []string, rateLimitRPM int) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(m.RequestID)
	r.Use(m.RequestLogger)
	r.Use(m.Recoverer)
	r.Use(m.SecurityHeaders)
	r.Use(m.Compress)
	r.Use(m.Timeout(15 * time.Second))
	r.Use(middleware.Heartbeat("/ping"))

	// CORS and rate limiting - configured from main
	r.Use(m.CORS(corsOrigins))
	r.Use(m.RateLimit(rateLimitRPM))

	// Health endpoints
	r.Get("/healthz", h.Healthz)
	r.Get("/readyz", h.Readyz)

	// v1 API routes
	r.Route("/v1", func(r chi.Router) {
		// The board listing is public; everything else runs as a user.
		r.Get("/boards", h.ListBoards)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Route("/posts", func(r chi.Router) {
				r.Put("/", h.CreatePost)
				r.Get("/", h.ListPosts)
				r.Route("/{postID}", func(r chi.Router) {
					r.Get("/", h.GetPost)
					r.Post("/", h.EditPost)
					r.Delete("/", h.DeletePost)
					r.Put("/like", h.LikePost)
					r.Delete("/like", h.UnlikePost)
					r.Put("/report", h.ReportPost)
				})
			})

			// On create {id} is the post id; on the other verbs it is the
			// comment id. The shared name keeps the routes on one subtree.
			r.Route("/comments/{id}", func(r chi.Router) {
				r.Put("/", h.CreateComment)
				r.Post("/", h.EditComment)
				r.Delete("/", h.DeleteComment)
				r.Put("/like", h.LikeComment)
				r.Delete("/like", h.UnlikeComment)
				r.Put("/report", h.ReportComment)
			})
		})
	})

	return r
}

package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/vocabcore/internal/config"
	"github.com/heartmarshall/vocabcore/internal/transport/middleware"
)

// RouterDeps groups everything NewRouter wires together.
type RouterDeps struct {
	Vocabulary *VocabularyHandler
	Health     *HealthHandler
	Limiter    *middleware.RateLimiter
	Config     config.Config
	Logger     *slog.Logger
}

// NewRouter builds the HTTP routing tree.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		middleware.Recovery(deps.Logger),
		middleware.CORS(deps.Config.CORS),
		chimw.StripSlashes,
	)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/live", deps.Health.Live)
	r.Get("/ready", deps.Health.Ready)
	r.Get("/health", deps.Health.Health)

	v := deps.Vocabulary
	r.Route("/api", func(r chi.Router) {
		r.Get("/words/{word}", v.GetWord)
		r.Get("/blacklist", v.Blacklist)
		r.Get("/queue/{kind}", v.Queue)
		r.Get("/count", v.Count)
		r.Get("/stats", v.Stats)

		r.Group(func(r chi.Router) {
			if deps.Limiter != nil {
				r.Use(deps.Limiter.Limit(deps.Config.Server.WriteRateLimit))
			}
			r.Put("/lists/{list}/words/{word}", v.AddToList)
			r.Delete("/lists/{list}", v.RemoveList)
			r.Post("/words/{word}/clear-failed", v.ClearFailed)
			r.Post("/reviews", v.Review)
			r.Put("/blacklist", v.Ban)
			r.Delete("/blacklist/{word}", v.Unban)
		})
	})

	return r
}

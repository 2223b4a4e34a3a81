package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/heartmarshall/question-pipeline/internal/config"
	"github.com/heartmarshall/question-pipeline/internal/transport/middleware"
)

// RouterConfig gathers everything the HTTP surface is built from.
type RouterConfig struct {
	Items    *ItemHandler
	Notes    *NoteHandler
	Activity *ActivityHandler
	Health   *HealthHandler

	// Auth resolves the bearer token into an actor.
	Auth         middleware.Middleware
	CORS         config.CORSConfig
	MaxBodyBytes int64
	Logger       *slog.Logger
}

// NewRouter builds the chi router with the middleware stack applied to
// every route.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Chain(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID,
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORS.Origins(),
			AllowedMethods:   cfg.CORS.Methods(),
			AllowedHeaders:   cfg.CORS.Headers(),
			ExposedHeaders:   []string{middleware.RequestIDHeader},
			AllowCredentials: cfg.CORS.AllowCredentials,
			MaxAge:           cfg.CORS.MaxAge,
		}),
		cfg.Auth,
		middleware.Logger(cfg.Logger),
	))

	r.Get("/live", cfg.Health.Live)
	r.Get("/ready", cfg.Health.Ready)
	r.Get("/health", cfg.Health.Health)

	r.Route("/api/items", func(r chi.Router) {
		r.Use(limitBody(cfg.MaxBodyBytes))

		r.Post("/", cfg.Items.Create)
		r.Get("/", cfg.Items.List)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", cfg.Items.Get)
			r.Post("/transitions", cfg.Items.Transition)
			r.Post("/claim", cfg.Items.Claim)
			r.Delete("/claim", cfg.Items.Release)
			r.Get("/can-complete", cfg.Items.CanComplete)
			r.Post("/edits", cfg.Items.Edit)
			r.Put("/artifact", cfg.Items.AttachArtifact)

			r.Post("/notes", cfg.Notes.Add)
			r.Get("/notes", cfg.Notes.List)
			r.Delete("/notes/{noteID}", cfg.Notes.Delete)

			r.Get("/activity", cfg.Activity.List)
			r.Get("/activity/summary", cfg.Activity.Summary)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "route_not_found", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	return r
}

// limitBody caps request bodies. Non-positive n disables the cap.
func limitBody(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if n <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}

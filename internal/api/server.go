package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/davidhaley/medley/internal/auth"
	"github.com/davidhaley/medley/internal/config"
	"github.com/davidhaley/medley/internal/db"
	"github.com/davidhaley/medley/internal/events"
	"github.com/davidhaley/medley/internal/httputil"
	"github.com/davidhaley/medley/internal/items"
	"github.com/davidhaley/medley/internal/jobs"
	"github.com/davidhaley/medley/internal/prefs"
	"github.com/davidhaley/medley/internal/users"
	"github.com/davidhaley/medley/internal/views"
)

type Server struct {
	router chi.Router
	hub    *events.Hub
}

func NewServer(cfg *config.Config, database *db.DB, rdb *redis.Client, queue *jobs.Queue) (*Server, error) {
	authService, err := auth.NewAuth(cfg.JWTSecret, cfg.TokenExpiryHours)
	if err != nil {
		return nil, err
	}
	authMW := auth.NewMiddleware(authService)
	loginLimiter := auth.NewLoginLimiter(cfg.LoginRatePerMin)

	hub := events.NewHub()

	userRepo := users.NewRepository(database.DB)
	prefsRepo := prefs.NewRepository(database.DB)
	itemRepo := items.NewRepository(database.DB)
	viewStore := views.NewCachedStore(views.NewStore(database.DB), rdb)

	userHandler := users.NewHandler(userRepo, authService)
	viewHandler := views.NewHandler(viewStore, hub)
	itemHandler := items.NewHandler(itemRepo, viewStore, prefsRepo, func(parentID string) error {
		_, err := queue.Enqueue(jobs.TaskFacetsRefresh, jobs.FacetsPayload{ParentID: parentID})
		return err
	})
	prefsHandler := newPrefsHandler(prefsRepo)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "up"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(loginLimiter.Wrap)
			r.Mount("/auth", userHandler.AuthRouter())
		})

		r.Group(func(r chi.Router) {
			r.Use(authMW.RequireAuth)
			r.Mount("/users", userHandler.Router())
			r.Mount("/views", viewHandler.Router())
			r.Mount("/items", itemHandler.Router())
			r.Mount("/preferences", prefsHandler.Router())
			r.Get("/ws", func(w http.ResponseWriter, req *http.Request) {
				u := auth.UserFromContext(req.Context())
				hub.ServeWS(w, req, u.UserID)
			})
		})
	})

	return &Server{router: r, hub: hub}, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

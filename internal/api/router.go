package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/isdelr/expense-tracker-be/internal/api/handlers"
	"github.com/isdelr/expense-tracker-be/internal/auth"
	"github.com/isdelr/expense-tracker-be/internal/services"
)

// Dependencies groups everything the router needs to serve requests.
type Dependencies struct {
	Auth          services.AuthServiceProvider
	Ledger        services.LedgerServiceProvider
	Categories    services.CategoryServiceProvider
	Events        services.EventServiceProvider
	Tokens        *auth.TokenManager
	AllowedOrigin string
}

// NewRouter creates and configures a new Chi router.
func NewRouter(deps Dependencies) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authHandler := handlers.NewAuthHandler(deps.Auth)
	expenseHandler := handlers.NewExpenseHandler(deps.Ledger)
	categoryHandler := handlers.NewCategoryHandler(deps.Categories)
	eventHandler := handlers.NewEventHandler(deps.Events)
	requireAuth := auth.Middleware(deps.Tokens)

	routes := func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.With(requireAuth).Get("/me", authHandler.Me)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", expenseHandler.List)
			r.Post("/", expenseHandler.Create)
			r.Get("/range/{start}/{end}", expenseHandler.Range)
			r.Get("/stats/summary", expenseHandler.Summary)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", expenseHandler.Get)
				r.Put("/", expenseHandler.Update)
				r.Delete("/", expenseHandler.Delete)
			})
		})

		r.Get("/categories", categoryHandler.List)
		r.With(requireAuth).Get("/events", eventHandler.GetRecent)
	}

	r.Get("/", health)
	routes(r)
	r.Route("/api", routes)

	return r
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}` + "\n"))
}

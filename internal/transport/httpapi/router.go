package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/kislikjeka/bookstore/internal/platform/user"
	"github.com/kislikjeka/bookstore/internal/transport/httpapi/handler"
	"github.com/kislikjeka/bookstore/internal/transport/httpapi/middleware"
	"github.com/kislikjeka/bookstore/pkg/logger"
)

// Config holds router configuration
type Config struct {
	Logger         *logger.Logger
	AllowedOrigins []string

	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	CategoryHandler    *handler.CategoryHandler
	ClientHandler      *handler.ClientHandler
	ProductHandler     *handler.ProductHandler
	DistributorHandler *handler.DistributorHandler
	SaleHandler        *handler.SaleHandler
	ReportHandler      *handler.ReportHandler
	HealthHandler      *handler.HealthHandler

	JWTMiddleware func(http.Handler) http.Handler
	// RateLimit applies to every request; LoginRateLimit only to login
	RateLimit      func(http.Handler) http.Handler
	LoginRateLimit func(http.Handler) http.Handler
}

// NewRouter creates a new HTTP router
func NewRouter(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(chimiddleware.Compress(5, "application/json"))
	if cfg.RateLimit != nil {
		r.Use(cfg.RateLimit)
	}

	r.Get("/health", handler.GetHealth)
	r.Get("/health/live", handler.GetLiveness)
	if cfg.HealthHandler != nil {
		r.Get("/health/ready", cfg.HealthHandler.GetReadiness)
	}

	adminOnly := middleware.RequireRole(user.RoleAdmin)

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.AuthHandler != nil {
			login := http.Handler(http.HandlerFunc(cfg.AuthHandler.Login))
			if cfg.LoginRateLimit != nil {
				login = cfg.LoginRateLimit(login)
			}
			r.Method(http.MethodPost, "/auth/login", login)
			r.Post("/auth/logout", cfg.AuthHandler.Logout)
		}

		if cfg.JWTMiddleware == nil {
			return
		}

		r.Group(func(r chi.Router) {
			r.Use(cfg.JWTMiddleware)

			if cfg.AuthHandler != nil {
				r.Get("/auth/me", cfg.AuthHandler.Me)
			}

			if h := cfg.UserHandler; h != nil {
				r.Route("/users", func(r chi.Router) {
					r.Use(adminOnly)
					r.Get("/", h.GetUsers)
					r.Post("/", h.CreateUser)
					r.Get("/{id}", h.GetUser)
					r.Put("/{id}/role", h.ChangeRole)
					r.Delete("/{id}", h.DeleteUser)
				})
			}

			if h := cfg.CategoryHandler; h != nil {
				r.Route("/categories", func(r chi.Router) {
					r.Get("/", h.GetCategories)
					r.Post("/", h.CreateCategory)
					r.Get("/{id}", h.GetCategory)
					r.Put("/{id}", h.UpdateCategory)
					r.With(adminOnly).Delete("/{id}", h.DeleteCategory)
				})
			}

			if h := cfg.ClientHandler; h != nil {
				r.Route("/clients", func(r chi.Router) {
					r.Get("/", h.GetClients)
					r.Post("/", h.CreateClient)
					r.Get("/{id}", h.GetClient)
					r.Put("/{id}", h.UpdateClient)
					r.With(adminOnly).Delete("/{id}", h.DeleteClient)
				})
			}

			if h := cfg.ProductHandler; h != nil {
				r.Route("/products", func(r chi.Router) {
					r.Get("/", h.GetProducts)
					r.Post("/", h.CreateProduct)
					r.Get("/{id}", h.GetProduct)
					r.Put("/{id}", h.UpdateProduct)
					r.With(adminOnly).Delete("/{id}", h.DeleteProduct)
				})
			}

			if h := cfg.DistributorHandler; h != nil {
				r.Route("/distributors", func(r chi.Router) {
					r.Get("/", h.GetDistributors)
					r.Post("/", h.CreateDistributor)
					r.Get("/{id}", h.GetDistributor)
					r.Put("/{id}", h.UpdateDistributor)
					r.With(adminOnly).Delete("/{id}", h.DeleteDistributor)
				})
			}

			if h := cfg.SaleHandler; h != nil {
				r.Route("/sales", func(r chi.Router) {
					r.Get("/", h.GetSales)
					r.Post("/", h.CreateSale)
					r.Get("/{id}", h.GetSale)
				})
			}

			if h := cfg.ReportHandler; h != nil {
				r.Get("/reports/{kind}", h.DownloadReport)
			}
		})
	})

	return r
}

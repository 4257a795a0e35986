package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/kenf/property-management/internal/api/handlers"
	"github.com/kenf/property-management/internal/api/middleware"
	"github.com/kenf/property-management/internal/auth"
	"github.com/kenf/property-management/internal/rbac"
	"github.com/kenf/property-management/pkg/crypto"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Router struct {
	chi.Router
}

type RouterConfig struct {
	DB             *gorm.DB
	Redis          *redis.Client
	Logger         *slog.Logger
	JWTService     *auth.JWTService
	AuthService    *auth.Service
	Checker        *rbac.Checker
	Encryptor      *crypto.Encryptor
	Notifier       handlers.ProfileNotifier
	AllowedOrigins []string // CORS allowed origins
	RateLimitReqs  int      // Rate limit requests per window
	RateLimitSecs  int      // Rate limit window in seconds
}

func NewRouter(cfg RouterConfig) *Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	if cfg.RateLimitReqs > 0 {
		r.Use(middleware.RateLimit(cfg.RateLimitReqs, cfg.RateLimitSecs))
	}

	// CORS - restrict to configured origins, or allow localhost in development
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg.DB, cfg.Redis)
	authHandler := handlers.NewAuthHandler(cfg.AuthService)
	landlordHandler := handlers.NewLandlordHandler(cfg.DB, cfg.Encryptor, cfg.Notifier, cfg.Logger)
	tenantHandler := handlers.NewTenantHandler(cfg.DB, cfg.Notifier, cfg.Logger)
	propertyHandler := handlers.NewPropertyHandler(cfg.DB, cfg.Logger)
	permissionHandler := handlers.NewPermissionHandler(cfg.Checker)

	// Health endpoints (no auth required)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	r.Route("/api/kenf/management", func(r chi.Router) {
		// Public auth endpoints
		r.Post("/users/register", authHandler.Register)
		r.Post("/users/login", authHandler.Login)
		r.Post("/users/confirm", authHandler.Confirm)
		r.Post("/users/forgot-password", authHandler.ForgotPassword)
		r.Post("/users/reset-password", authHandler.ResetPassword)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWTService))

			r.Get("/users/me", authHandler.Me)

			r.Route("/landlord", func(r chi.Router) {
				r.With(middleware.RequireRole("landlord")).Post("/create", landlordHandler.Create)
			})

			r.Route("/tenant", func(r chi.Router) {
				r.With(
					middleware.RequireRole("landlord", "caretaker"),
					middleware.RequirePermission(cfg.Checker, "create_tenant"),
				).Post("/create", tenantHandler.Create)
				r.With(middleware.RequireRole("landlord", "caretaker")).Get("/list", tenantHandler.List)
			})

			r.Route("/property", func(r chi.Router) {
				r.Post("/add", propertyHandler.Add)
				r.Get("/list", propertyHandler.List)
			})

			r.Route("/permissions", func(r chi.Router) {
				r.Use(middleware.RequirePermission(cfg.Checker, "manage_permissions"))
				r.Post("/add-permission", permissionHandler.Add)
				r.Delete("/revoke", permissionHandler.Revoke)
			})
		})
	})

	return &Router{r}
}

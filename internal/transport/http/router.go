package http

import (
	"context"
	"net/http"

	"github.com/Evanshango/chatty-backend/internal/application/avatar"
	"github.com/Evanshango/chatty-backend/internal/application/identity"
	"github.com/Evanshango/chatty-backend/internal/application/notification"
	"github.com/Evanshango/chatty-backend/internal/application/user"
	"github.com/Evanshango/chatty-backend/internal/config"
	"github.com/Evanshango/chatty-backend/internal/transport/http/handler"
	appmiddleware "github.com/Evanshango/chatty-backend/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router. ctx bounds background
// work owned by the router, such as rate-limiter cleanup.
func NewRouter(ctx context.Context, cfg *config.Config, deps *Deps) http.Handler {
	registry := deps.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	metrics := appmiddleware.NewMetrics(registry)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(metrics.Instrument)
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		// Without keys no token can be verified; protected handlers see no claims and refuse.
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10, applied to signup and login.
	sensitiveRL := appmiddleware.NewRateLimiter(ctx, rate.Limit(5), 10)

	identityDeps := identity.ServiceDeps{AccountRepo: deps.AccountRepo}
	if deps.JWTProvider != nil {
		// Left unset otherwise: a typed nil would pass the service's nil check.
		identityDeps.JWTProvider = deps.JWTProvider
	}
	identitySvc := identity.NewService(identityDeps)
	userSvc := user.NewService(user.ServiceDeps{
		UserRepo:         deps.UserRepo,
		LikeRepo:         deps.LikeRepo,
		ScreamRepo:       deps.ScreamRepo,
		NotificationRepo: deps.NotificationRepo,
		Identity:         identitySvc,
		DefaultImageURL:  deps.S3Store.PublicURL(cfg.DefaultAvatar),
		CallTimeout:      cfg.CallTimeout,
	})
	avatarSvc := avatar.NewService(avatar.ServiceDeps{
		Blob:        deps.S3Store,
		UserRepo:    deps.UserRepo,
		CallTimeout: cfg.CallTimeout,
	})
	notifSvc := notification.NewService(deps.NotificationRepo, cfg.CallTimeout)

	healthH := handler.NewHealthHandler()
	userH := handler.NewUserHandler(userSvc)
	imageH := handler.NewImageHandler(avatarSvc, cfg.MaxUploadBytes)
	notifH := handler.NewNotificationHandler(notifSvc)

	// ── Public routes (no auth) ──────────────────────────────────────────
	r.Get("/health", healthH.Check)
	r.Method(http.MethodGet, "/metrics", appmiddleware.MetricsHandler(registry))
	r.With(sensitiveRL.Limit).Post("/signup", userH.Register)
	r.With(sensitiveRL.Limit).Post("/login", userH.Login)
	r.Get("/user/{handle}", userH.GetDetails)

	// ── Authenticated routes ─────────────────────────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(authMw)

		r.Get("/user", userH.GetAuthenticated)
		r.Post("/user", userH.UpdateDetails)
		r.Post("/user/image", imageH.Upload)
		r.Post("/notifications", notifH.MarkRead)
	})

	return r
}

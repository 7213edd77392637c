package http

import (
	"github.com/Evanshango/chatty-backend/internal/infrastructure/dynamo"
	jwtinfra "github.com/Evanshango/chatty-backend/internal/infrastructure/jwt"
	s3infra "github.com/Evanshango/chatty-backend/internal/infrastructure/s3"
	"github.com/prometheus/client_golang/prometheus"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo         *dynamo.UserRepo
	AccountRepo      *dynamo.AccountRepo
	LikeRepo         *dynamo.LikeRepo
	ScreamRepo       *dynamo.ScreamRepo
	NotificationRepo *dynamo.NotificationRepo
	S3Store          *s3infra.Store
	JWTProvider      *jwtinfra.Provider
	// Registry receives the HTTP metrics and backs /metrics. A fresh registry
	// is used when nil.
	Registry *prometheus.Registry
}

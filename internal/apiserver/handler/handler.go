package handler

import (
	"go.uber.org/zap"

	"github.com/sentra-hq/sentra/internal/apiserver/database"
	"github.com/sentra-hq/sentra/internal/auth/jwt"
	"github.com/sentra-hq/sentra/internal/routing"
	"github.com/sentra-hq/sentra/pkg/metrics"
)

// Handler carries the dependencies shared by the API handlers
type Handler struct {
	db           database.Database
	jwtService   *jwt.Service
	bootstrapper *routing.Bootstrapper
	classifier   *routing.Classifier
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewHandler creates a new API handler
func NewHandler(db database.Database, jwtService *jwt.Service, bootstrapper *routing.Bootstrapper, classifier *routing.Classifier, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		db:           db,
		jwtService:   jwtService,
		bootstrapper: bootstrapper,
		classifier:   classifier,
		metrics:      m,
		logger:       logger.Named("apiserver.handler"),
	}
}

package preference

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/sentra-hq/sentra/internal/common/config"
)

// Type represents the type of preference store
type Type string

const (
	// TypeMemory represents the in-memory preference store
	TypeMemory Type = "memory"
	// TypeRedis represents the Redis-backed preference store
	TypeRedis Type = "redis"
)

// NewStore creates a new preference store based on configuration
func NewStore(logger *zap.Logger, cfg *config.PreferenceConfig) (Store, error) {
	logger.Info("Initializing preference store", zap.String("type", cfg.Type))
	switch Type(cfg.Type) {
	case TypeMemory, "":
		return NewMemoryStore(logger), nil
	case TypeRedis:
		return NewRedisStore(logger, cfg.Redis)
	default:
		return nil, fmt.Errorf("unsupported preference store type: %s", cfg.Type)
	}
}

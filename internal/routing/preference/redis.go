package preference

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sentra-hq/sentra/internal/common/config"
)

// RedisStore implements Store using Redis
type RedisStore struct {
	logger *zap.Logger
	client *redis.Client
	prefix string
	cfg    config.PreferenceRedisConfig
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a new Redis-based preference store
func NewRedisStore(logger *zap.Logger, cfg config.PreferenceRedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "pref"
	}

	return &RedisStore{
		logger: logger.Named("preference.store.redis"),
		client: client,
		prefix: prefix,
		cfg:    cfg,
	}, nil
}

func (s *RedisStore) key(principalID uint) string {
	return fmt.Sprintf("%s:company:%d", s.prefix, principalID)
}

func (s *RedisStore) Save(ctx context.Context, principalID uint, companyID uint) error {
	return s.client.Set(ctx, s.key(principalID), companyID, s.cfg.TTL).Err()
}

func (s *RedisStore) Load(ctx context.Context, principalID uint) (uint, bool, error) {
	val, err := s.client.Get(ctx, s.key(principalID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}
	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		// A corrupt slot is indistinguishable from an empty one; the
		// preference is only a hint.
		s.logger.Warn("discarding corrupt preference value",
			zap.Uint("principal_id", principalID),
			zap.String("value", val))
		return 0, false, nil
	}
	return uint(id), true, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

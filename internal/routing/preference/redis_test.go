package preference

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sentra-hq/sentra/internal/common/config"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	s, err := NewRedisStore(zap.NewNop(), config.PreferenceRedisConfig{
		Addr:   mr.Addr(),
		Prefix: "test:pref",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestRedisStoreSaveLoad(t *testing.T) {
	s, _ := newTestRedisStore(t)
	ctx := context.Background()

	_, ok, err := s.Load(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Save(ctx, 1, 10))
	id, ok, err := s.Load(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint(10), id)
}

func TestRedisStoreLastWriterWins(t *testing.T) {
	s, _ := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, 1, 10))
	require.NoError(t, s.Save(ctx, 1, 20))

	id, ok, err := s.Load(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint(20), id)
}

func TestRedisStoreKeyPrefix(t *testing.T) {
	s, mr := newTestRedisStore(t)
	require.NoError(t, s.Save(context.Background(), 7, 3))
	assert.True(t, mr.Exists("test:pref:company:7"))
}

func TestRedisStoreCorruptValue(t *testing.T) {
	s, mr := newTestRedisStore(t)
	mr.Set("test:pref:company:1", "not-a-number")

	_, ok, err := s.Load(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStoreUnreachable(t *testing.T) {
	_, err := NewRedisStore(zap.NewNop(), config.PreferenceRedisConfig{
		Addr: "127.0.0.1:1",
	})
	assert.Error(t, err)
}

func TestNewStoreFactory(t *testing.T) {
	lg := zap.NewNop()

	s, err := NewStore(lg, &config.PreferenceConfig{Type: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	s, err = NewStore(lg, &config.PreferenceConfig{})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	_, err = NewStore(lg, &config.PreferenceConfig{Type: "etcd"})
	assert.Error(t, err)
}

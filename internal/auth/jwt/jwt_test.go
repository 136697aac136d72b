package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-with-at-least-32-chars!"

func TestNewService(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{"valid", Config{SecretKey: testSecret, Duration: time.Hour}, nil},
		{"empty secret", Config{Duration: time.Hour}, ErrEmptySecretKey},
		{"weak secret", Config{SecretKey: "short", Duration: time.Hour}, ErrWeakSecretKey},
		{"zero duration", Config{SecretKey: testSecret}, ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewService(tt.config)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, svc)
		})
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc, err := NewService(Config{SecretKey: testSecret, Duration: time.Hour})
	require.NoError(t, err)

	token, err := svc.GenerateToken(42, "user@example.com", "manager", "sess-1", "acme")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "manager", claims.Role)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, "acme", claims.Company)
}

func TestValidateTokenExpired(t *testing.T) {
	svc, err := NewService(Config{SecretKey: testSecret, Duration: time.Nanosecond})
	require.NoError(t, err)

	token, err := svc.GenerateToken(1, "user@example.com", "employee", "sess-1", "")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc, err := NewService(Config{SecretKey: testSecret, Duration: time.Hour})
	require.NoError(t, err)
	other, err := NewService(Config{SecretKey: "another-secret-key-with-32-or-more-chars", Duration: time.Hour})
	require.NoError(t, err)

	token, err := svc.GenerateToken(1, "user@example.com", "employee", "sess-1", "")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc, err := NewService(Config{SecretKey: testSecret, Duration: time.Hour})
	require.NoError(t, err)

	_, err = svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

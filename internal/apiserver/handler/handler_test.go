package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sentra-hq/sentra/internal/apiserver/database"
	"github.com/sentra-hq/sentra/internal/apiserver/middleware"
	"github.com/sentra-hq/sentra/internal/auth/identity"
	"github.com/sentra-hq/sentra/internal/auth/jwt"
	"github.com/sentra-hq/sentra/internal/common/config"
	"github.com/sentra-hq/sentra/internal/routing"
	"github.com/sentra-hq/sentra/internal/routing/preference"
	"github.com/sentra-hq/sentra/pkg/metrics"
)

const testSecret = "test-secret-key-with-at-least-32-chars!"

type testEnv struct {
	router *gin.Engine
	db     database.Database
	jwt    *jwt.Service
}

func setupTest(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewSQLite(&config.DatabaseConfig{Type: "sqlite", DBName: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	lg := zap.NewNop()
	jwtSvc, err := jwt.NewService(jwt.Config{SecretKey: testSecret, Duration: time.Hour})
	require.NoError(t, err)

	classifier := routing.NewClassifier(nil)
	prefs := preference.NewMemoryStore(lg)
	resolver := routing.NewResolver(identity.NewTenants(db, classifier), prefs, classifier, lg)
	bootstrapper := routing.NewBootstrapper(
		identity.NewProvider(db, lg),
		identity.NewProfiles(db),
		resolver,
		routing.RetryPolicy{MaxRetries: 1, Delay: time.Millisecond},
		routing.DemoAccount{},
		lg,
	)

	m := metrics.New(config.MetricsConfig{})
	h := NewHandler(db, jwtSvc, bootstrapper, classifier, m, lg)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/login", h.Login)

	authed := api.Group("", middleware.JWTAuthMiddleware(jwtSvc, db))
	authed.POST("/auth/logout", h.Logout)
	authed.GET("/auth/me", h.GetUserInfo)
	authed.POST("/auth/change-password", h.ChangePassword)

	admin := authed.Group("", middleware.RequireRoles(database.RoleCompanyAdmin, database.RoleSuperAdmin))
	admin.GET("/users", h.ListUsers)
	admin.POST("/users", h.CreateUser)
	admin.PUT("/users", h.UpdateUser)
	admin.DELETE("/users/:email", h.DeleteUser)

	platform := authed.Group("", middleware.RequireRoles(database.RoleSuperAdmin))
	platform.GET("/tenants", h.ListTenants)
	platform.GET("/tenants/:slug", h.GetTenantInfo)
	platform.POST("/tenants", h.CreateTenant)
	platform.PUT("/tenants", h.UpdateTenant)
	platform.DELETE("/tenants/:slug", h.DeleteTenant)

	return &testEnv{router: r, db: db, jwt: jwtSvc}
}

func (e *testEnv) seedTenant(t *testing.T, name, slug string) *database.Tenant {
	t.Helper()
	tenant := &database.Tenant{Name: name, Slug: slug, IsActive: true}
	require.NoError(t, e.db.CreateTenant(context.Background(), tenant))
	return tenant
}

func (e *testEnv) seedUser(t *testing.T, email, password string, role database.UserRole, companyID *uint) *database.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &database.User{
		Email:     email,
		Password:  string(hash),
		Role:      role,
		CompanyID: companyID,
		IsActive:  true,
	}
	require.NoError(t, e.db.CreateUser(context.Background(), user))
	return user
}

// token issues a JWT for the user, going through the real login session path
// so the middleware's revocation check passes.
func (e *testEnv) token(t *testing.T, user *database.User) string {
	t.Helper()
	session := &database.AuthSession{ID: "sess-" + user.Email, UserID: user.ID}
	require.NoError(t, e.db.CreateAuthSession(context.Background(), session))
	token, err := e.jwt.GenerateToken(user.ID, user.Email, string(user.Role), session.ID, "")
	require.NoError(t, err)
	return token
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

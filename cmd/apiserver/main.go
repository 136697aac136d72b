package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sentra-hq/sentra/internal/apiserver/database"
	"github.com/sentra-hq/sentra/internal/apiserver/handler"
	"github.com/sentra-hq/sentra/internal/apiserver/middleware"
	"github.com/sentra-hq/sentra/internal/auth/identity"
	"github.com/sentra-hq/sentra/internal/auth/jwt"
	"github.com/sentra-hq/sentra/internal/common/config"
	"github.com/sentra-hq/sentra/internal/i18n"
	"github.com/sentra-hq/sentra/internal/routing"
	"github.com/sentra-hq/sentra/internal/routing/preference"
	"github.com/sentra-hq/sentra/pkg/logger"
	"github.com/sentra-hq/sentra/pkg/metrics"
	"github.com/sentra-hq/sentra/pkg/version"
)

var (
	configPath string

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of apiserver",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("apiserver version %s\n", version.Get())
		},
	}

	rootCmd = &cobra.Command{
		Use:   "apiserver",
		Short: "Sentra API Server",
		Long:  `Sentra API Server backs the multi-tenant safety platform: identity, tenant routing and administration`,
		Run: func(cmd *cobra.Command, args []string) {
			run()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "conf", "configs/apiserver.yaml", "path to configuration file")
	rootCmd.AddCommand(versionCmd)
}

func initLogger(cfg *config.APIServerConfig) *zap.Logger {
	lg, err := logger.NewLogger(&cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return lg
}

func initDatabase(lg *zap.Logger, cfg *config.DatabaseConfig) database.Database {
	db, err := database.NewDatabase(cfg)
	if err != nil {
		lg.Fatal("Failed to initialize database", zap.Error(err))
	}
	return db
}

func initI18n(cfg *config.I18nConfig) {
	path := cfg.Path
	if path == "" {
		path = "configs/i18n"
	}
	if err := i18n.InitTranslator(path); err != nil {
		log.Printf("Failed to load translations from %s: %v", path, err)
	}
}

func initPreferenceStore(lg *zap.Logger, cfg *config.PreferenceConfig) preference.Store {
	store, err := preference.NewStore(lg, cfg)
	if err != nil {
		lg.Fatal("Failed to initialize preference store", zap.Error(err))
	}
	return store
}

func initRouter(lg *zap.Logger, cfg *config.APIServerConfig, db database.Database, jwtSvc *jwt.Service, h *handler.Handler, m *metrics.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), i18n.LanguageMiddleware(), m.Middleware())

	r.GET("/metrics", gin.WrapH(m.Handler()))

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

	return r
}

func run() {
	cfg, cfgPath, err := config.LoadConfig[config.APIServerConfig](configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration from %s: %v", cfgPath, err)
	}

	lg := initLogger(cfg)
	defer func() { _ = lg.Sync() }()
	lg.Info("Starting apiserver",
		zap.String("version", version.Get()),
		zap.String("config", cfgPath))

	initI18n(&cfg.I18n)

	db := initDatabase(lg, &cfg.Database)
	defer db.Close()

	if err := database.EnsureSuperAdmin(context.Background(), db, &cfg.SuperAdmin); err != nil {
		lg.Fatal("Failed to ensure super admin account", zap.Error(err))
	}

	jwtSvc, err := jwt.NewService(jwt.Config(cfg.JWT))
	if err != nil {
		lg.Fatal("Failed to initialize JWT service", zap.Error(err))
	}

	prefs := initPreferenceStore(lg, &cfg.Preference)
	defer prefs.Close()

	classifier := routing.NewClassifier(routing.ParseReservedSlugs(cfg.Auth.ReservedSlugs))
	resolver := routing.NewResolver(identity.NewTenants(db, classifier), prefs, classifier, lg)
	bootstrapper := routing.NewBootstrapper(
		identity.NewProvider(db, lg),
		identity.NewProfiles(db),
		resolver,
		routing.RetryPolicy{MaxRetries: cfg.Auth.ProfileRetry.MaxRetries, Delay: cfg.Auth.ProfileRetry.Delay},
		routing.DemoAccount{Enabled: cfg.Auth.DemoLoginEnabled, Email: cfg.Auth.DemoEmail},
		lg,
	)

	m := metrics.New(cfg.Metrics)
	h := handler.NewHandler(db, jwtSvc, bootstrapper, classifier, m, lg)

	r := initRouter(lg, cfg, db, jwtSvc, h, m)

	port := cfg.Port
	if port == 0 {
		port = 8080
	}
	lg.Info("Listening", zap.Int("port", port))
	if err := r.Run(fmt.Sprintf(":%d", port)); err != nil {
		lg.Fatal("Server exited", zap.Error(err))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

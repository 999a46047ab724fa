package server

import (
	"context"
	"database/sql"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "jobsearch-backend/internal/auth"
	"jobsearch-backend/internal/jobs"
	"jobsearch-backend/internal/match"
	"jobsearch-backend/internal/profiles"
	"jobsearch-backend/internal/roles"
	"jobsearch-backend/internal/search"
	"jobsearch-backend/internal/search/perplexity"
	"jobsearch-backend/internal/shared/config"
	"jobsearch-backend/internal/shared/metrics"
	"jobsearch-backend/internal/shared/server/middleware"
	"jobsearch-backend/internal/shared/server/respond"
	"jobsearch-backend/internal/shared/storage/db"
	"jobsearch-backend/internal/shared/telemetry"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	sqlDB := connectDatabase(cfg)

	var jobsRepo jobs.Repo
	var rolesRepo roles.Repo
	var profilesRepo profiles.Repo
	if sqlDB != nil {
		jobsRepo = &jobs.PGRepo{DB: sqlDB}
		rolesRepo = &roles.PGRepo{DB: sqlDB}
		profilesRepo = &profiles.PGRepo{DB: sqlDB}
	} else {
		jobsRepo = jobs.NewMemoryRepo()
		memRoles := roles.NewMemoryRepo()
		if err := roles.Seed(context.Background(), memRoles); err != nil {
			telemetry.Error("failed to seed role catalog", map[string]any{"err": err.Error()})
		}
		rolesRepo = memRoles
		profilesRepo = profiles.NewMemoryRepo()
	}

	rolesSvc := roles.NewService(rolesRepo, match.StaticEnricher{})
	profilesSvc := &profiles.Service{
		Repo:   profilesRepo,
		Corpus: roles.MatchStore{Repo: rolesRepo},
	}
	jobsSvc := &jobs.Service{
		Repo:     jobsRepo,
		Provider: searchProvider(cfg),
	}
	googleAuthSvc := googleauth.NewGoogleService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL)

	api := r.Group("/api/v1")
	api.Use(middleware.Auth(cfg.Env))
	api.Use(middleware.RateLimit(searchRateLimit()))
	googleAuthSvc.RegisterRoutes(api)
	registerMeRoutes(api)
	jobs.NewHandler(jobsSvc, profilesSvc).RegisterRoutes(api)
	roles.NewHandler(rolesSvc, profilesSvc).RegisterRoutes(api)
	profiles.NewHandler(profilesSvc).RegisterRoutes(api)

	return r
}

// connectDatabase opens the configured database and applies migrations,
// falling back to memory repositories on any failure.
func connectDatabase(cfg config.Config) *sql.DB {
	if cfg.DatabaseURL == "" {
		return nil
	}
	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	conn, err := db.Connect(context.Background(), cfg.DatabaseURL, opts)
	if err != nil {
		telemetry.Error("failed to connect database, falling back to memory", map[string]any{"err": err.Error()})
		return nil
	}
	if err := db.RunMigrations(context.Background(), conn); err != nil {
		telemetry.Error("failed to run migrations, falling back to memory", map[string]any{"err": err.Error()})
		conn.Close()
		return nil
	}
	return conn
}

// searchRateLimit throttles live search per user. Searches call the paid
// provider, so they get a tighter bucket than the rest of the API.
func searchRateLimit() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"SEARCH": {Rate: 0.5, Burst: 5},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && strings.HasSuffix(c.FullPath(), "/jobs/search") {
				return "SEARCH"
			}
			return ""
		},
	}
}

// searchProvider selects the external job search backend. Without an API
// key the service still starts, serving stored postings only.
func searchProvider(cfg config.Config) search.Provider {
	if cfg.SearchProvider == "perplexity" && cfg.PerplexityAPIKey != "" {
		client, err := perplexity.NewClient(cfg.PerplexityAPIKey, cfg.PerplexityModel)
		if err == nil {
			return client
		}
		telemetry.Error("failed to build perplexity client, using static provider", map[string]any{"err": err.Error()})
	}
	return &search.StaticProvider{}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

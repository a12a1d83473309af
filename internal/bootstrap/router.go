package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	httpapi "github.com/archplan-ai/archplan-backend/internal/api/http"
	"github.com/archplan-ai/archplan-backend/internal/documents"
	"github.com/archplan-ai/archplan-backend/internal/generation"
	"github.com/archplan-ai/archplan-backend/internal/generation/agent"
	"github.com/archplan-ai/archplan-backend/internal/middleware"
	"github.com/archplan-ai/archplan-backend/internal/projects"
	"github.com/archplan-ai/archplan-backend/internal/storage/redisstore"
)

type Deps struct {
	ServiceName  string
	Version      string
	AgentBaseURL string
	AgentID      string
	Redis        *redis.Client
}

// App is the assembled application: the router plus the long-lived
// components background jobs need access to.
type App struct {
	Router       *gin.Engine
	Store        *projects.Store
	History      *documents.HistoryStore
	Orchestrator *generation.Orchestrator
}

func Build(dep Deps) *App {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-Id", "X-API-Key"},
		ExposeHeaders:    []string{"X-Request-Id", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis)
	healthHandler.RegisterRoutes(r)

	snap := redisstore.New(dep.Redis)
	store := projects.NewStore(snap)
	history := documents.NewHistoryStore(snap)

	caller := agent.New(dep.AgentBaseURL)
	orch := generation.NewOrchestrator(caller, dep.AgentID, store, history)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestID())
	api.Use(middleware.APIKey())

	projects.Register(api, store, history, orch)
	generation.Register(api, orch, history, store, middleware.RateLimit(rate.Limit(1), 2))

	return &App{
		Router:       r,
		Store:        store,
		History:      history,
		Orchestrator: orch,
	}
}

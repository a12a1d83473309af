package main

import (
	"context"
	"log"

	"github.com/archplan-ai/archplan-backend/config"
	"github.com/archplan-ai/archplan-backend/internal/bootstrap"
	"github.com/archplan-ai/archplan-backend/internal/reconcile"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	rdb, err := bootstrap.OpenRedis(context.Background(), bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	app := bootstrap.Build(bootstrap.Deps{
		ServiceName:  "archplan-backend",
		Version:      cfg.App.Version,
		AgentBaseURL: cfg.Agent.BaseURL,
		AgentID:      cfg.Agent.AgentID,
		Redis:        rdb,
	})

	reconciler := reconcile.New(app.Store, app.History)
	cronJob := reconciler.Start()
	defer cronJob.Stop()

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := app.Router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

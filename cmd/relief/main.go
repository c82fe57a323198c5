package main

import (
	"fmt"

	"github.com/bella507/help-me-sub000/internal/app/config"
	"github.com/bella507/help-me-sub000/internal/app/dsn"
	"github.com/bella507/help-me-sub000/internal/app/handler"
	"github.com/bella507/help-me-sub000/internal/app/lifecycle"
	"github.com/bella507/help-me-sub000/internal/app/pkg/auth"
	"github.com/bella507/help-me-sub000/internal/app/pkg/events"
	"github.com/bella507/help-me-sub000/internal/app/pkg/storage"
	"github.com/bella507/help-me-sub000/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// @title Relief Coordination API
// @version 1.0
// @description Help-request intake, triage and volunteer coordination.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	sessionSvc, err := auth.NewSessionService(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer sessionSvc.Close()

	jwtSvc := auth.NewJWTService(cfg.JWTSecret)

	minioBase := fmt.Sprintf("http://%s:%s", cfg.MinIOHost, cfg.MinIOPort)
	minioClient, err := storage.NewMinIO(
		fmt.Sprintf("%s:%s", cfg.MinIOHost, cfg.MinIOPort),
		cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOBucket,
		false, minioBase,
	)
	if err != nil {
		log.Fatalf("minio: %v", err)
	}

	hub := events.NewHub()
	engine := lifecycle.New(repo, hub)

	h := handler.NewHandler(repo, cfg, engine, hub, jwtSvc, sessionSvc, minioClient)

	r := gin.Default()
	h.RegisterHandler(r)

	addr := fmt.Sprintf("%s:%d", cfg.ServiceHost, cfg.ServicePort)
	log.Infof("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}

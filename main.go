package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/gotodo/backend/internal/config"
	"github.com/gotodo/backend/internal/db"
	"github.com/gotodo/backend/internal/handler"
	"github.com/gotodo/backend/internal/service"
)

// @title Todo API
// @version 1.0
// @description Multi-user todo backend: register, login, manage personal todos.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	store := &db.Postgres{Pool: pool}
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatalf("schema: %v", err)
	}

	authSvc, err := service.NewAuthService(store, cfg.Auth)
	if err != nil {
		log.Fatalf("auth: %v", err)
	}
	todoSvc := service.NewTodoService(store)

	r := handler.NewRouter(
		handler.NewAuthHandler(authSvc),
		handler.NewTodoHandler(todoSvc),
		authSvc,
		cfg.Server.AllowedOrigins,
	)

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}

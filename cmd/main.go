package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/alimkulovaskar/task-manager-backend/internal/config"
	"github.com/alimkulovaskar/task-manager-backend/internal/handlers"
	"github.com/alimkulovaskar/task-manager-backend/internal/repository"
	"github.com/alimkulovaskar/task-manager-backend/internal/service/projects"
	"github.com/alimkulovaskar/task-manager-backend/internal/service/tasks"
	"github.com/alimkulovaskar/task-manager-backend/internal/service/users"
	"github.com/alimkulovaskar/task-manager-backend/internal/session"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	godotenv.Load()

	cfg := config.MustLoad()
	log.Printf("server config: %+v", cfg.ServerConfig)

	db, err := repository.NewConnection(ctx, cfg.MongoConfig)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisConfig.Addr,
		Password: cfg.RedisConfig.Password,
		DB:       cfg.RedisConfig.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	sessions := session.NewManager(session.NewRedisStore(redisClient), cfg.SessionConfig)

	userService := users.NewService(userRepo)
	taskService := tasks.NewService(taskRepo)
	projectService := projects.NewService(projectRepo, taskRepo)

	h := handlers.NewHandler(userService, taskService, projectService, sessions)
	router := handlers.NewRouter(h, cfg.ServerConfig.StaticDir)

	log.Print("start listening")
	log.Fatal(http.ListenAndServe("[::]:"+cfg.ServerConfig.Port, router))
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davidhaley/medley/internal/api"
	"github.com/davidhaley/medley/internal/config"
	"github.com/davidhaley/medley/internal/db"
	"github.com/davidhaley/medley/internal/items"
	"github.com/davidhaley/medley/internal/jobs"
	"github.com/davidhaley/medley/internal/scheduler"
	"github.com/davidhaley/medley/internal/version"
)

func main() {
	ver := version.Load()
	log.Printf("Medley %s starting...", ver.Version)

	cfg := config.Load()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(database, "migrations"); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	cfg.MergeFromDB(database.DB)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	queue := jobs.NewQueue(cfg.RedisAddr)
	jobs.RegisterHandlers(queue, items.NewRepository(database.DB))
	if err := queue.Start(); err != nil {
		log.Fatalf("job worker failed to start: %v", err)
	}
	defer queue.Shutdown()

	sched := scheduler.New(queue)
	if err := sched.Start(cfg.FacetCron); err != nil {
		log.Fatalf("scheduler failed to start: %v", err)
	}
	defer sched.Stop()

	srv, err := api.NewServer(cfg, database, rdb, queue)
	if err != nil {
		log.Fatalf("server init failed: %v", err)
	}

	httpServer := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Port),
		Handler:      srv,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("listening on :%d", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	httpServer.Shutdown(ctx)
}

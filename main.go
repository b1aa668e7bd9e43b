package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"tableorder/configs"
	"tableorder/middlewares"
	"tableorder/pkg/logger"
	"tableorder/routes"
	"tableorder/ws"
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	lg := logger.New("tableorder", logger.ParseLevel(cfg.LogLevel))
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// DB
	db, err := configs.OpenDatabase(cfg.DBSource)
	if err != nil {
		log.Fatalf("open database failed: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	data, err := configs.SeedData(cfg.SeedFile)
	if err != nil {
		log.Fatalf("read seed failed: %v", err)
	}
	if err := configs.Seed(db, data, cfg.DefaultSettings(), time.Now()); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	hub := ws.NewHub(lg)
	go hub.Run(ctx)

	// HTTP
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.RequestLogger(lg))

	routes.RegisterRoutes(r, routes.NewDeps(db, cfg, lg, hub), hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	lg.Info(ctx, "startup", "server running", slog.String("addr", addr))
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	lg.Info(context.Background(), "shutdown", "signal received, stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error(context.Background(), "shutdown", "server shutdown failed", err)
	}
}

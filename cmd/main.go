package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwise1/georemind/config"
	deps "github.com/bwise1/georemind/internal/debs"
	api "github.com/bwise1/georemind/internal/http/rest"
)

const (
	allowConnectionsAfterShutdown = 1 * time.Second
)

func main() {
	cfg := config.New()
	deps := deps.New(cfg)

	a := &api.API{
		Config:    cfg,
		Deps:      deps,
		Repo:      deps.Repo,
		Registrar: deps.Geofence,
	}

	engineCtx, stopEngine := context.WithCancel(context.Background())
	defer stopEngine()

	go deps.WebSocket.Run()
	go deps.Geofence.Run(engineCtx)
	go func() {
		log.Printf("Server running on port %v ...", cfg.Port)
		log.Fatal(a.Serve())
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-stopChan

	log.Println("Request to shutdown server. Doing nothing for ", allowConnectionsAfterShutdown)
	waitTimer := time.NewTimer(allowConnectionsAfterShutdown)
	<-waitTimer.C

	log.Println("Shutting down server...")

	stopEngine()
	deps.DB.Close()
	log.Println("Database connections closed.")

	log.Fatal(a.Shutdown())
}

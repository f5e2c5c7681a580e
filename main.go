package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"nationsim/database"
	"nationsim/game"
)

func loadConfig() game.Config {
	cfg := game.DefaultConfig()

	if v := os.Getenv("TICK_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("invalid TICK_INTERVAL %q: %v", v, err)
		}
		cfg.TickInterval = d
	}
	if v := os.Getenv("ASSAULT_TRAVEL_TIME"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("invalid ASSAULT_TRAVEL_TIME %q: %v", v, err)
		}
		cfg.AssaultTravelTime = d
	}

	return cfg
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Info("no .env file, using process environment")
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	db, err := database.Open(dataDir)
	if err != nil {
		log.Fatalf("failed to open database at %s: %v", dataDir, err)
	}
	defer db.Close()

	newsStore, err := database.AssignStore(db, database.NEWS_STORE)
	if err != nil {
		log.Fatalf("failed to open news store: %v", err)
	}

	engine, err := game.New(db, game.NewNewsLog(newsStore), loadConfig())
	if err != nil {
		log.Fatalf("failed to start the engine: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go engine.Run(ctx)

	log.Info("simulation engine running")
	<-ctx.Done()
	log.Info("shutting down")
}

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	app2 "github.com/IT-Nick/heritage/internal/app"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to YAML config (CONFIG_PATH)")
	flag.Parse()

	log.Println("app starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := app2.NewApp(ctx, *configPath)
	if err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}

	if err := app.ListenAndServe(ctx); err != nil {
		log.Fatalf("app stopped with error: %v", err)
	}
	log.Println("app stopped")
}

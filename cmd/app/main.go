package main

import (
	"context"
	"fmt"
	"os"

	"cargo-dispatch/internal/config"
	dispatchservice "cargo-dispatch/internal/dispatch-service"
	"cargo-dispatch/internal/mylogger"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional, real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	mylog, err := mylogger.New("dispatch-service", cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}

	if err := dispatchservice.Execute(context.Background(), mylog, cfg); err != nil {
		mylog.Error("service exited with error", err)
		os.Exit(1)
	}
}

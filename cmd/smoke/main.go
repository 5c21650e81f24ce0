package main

import (
	"context"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/georgemunganga/reqres-users/internal/client"
	"github.com/georgemunganga/reqres-users/internal/logging"
)

func main() {
	env := flag.String("env", "dev", "target deployment (dev|beta|rc)")
	baseURL := flag.String("url", "", "explicit base url, overrides -env")
	timeout := flag.Duration("timeout", 30*time.Second, "overall timeout")
	flag.Parse()

	log := logging.New("users-smoke", slog.LevelInfo, "json")

	base, err := resolveBase(*env, *baseURL)
	if err != nil {
		log.Error("invalid target", "error", err)
		os.Exit(2)
	}
	api, err := client.New(base)
	if err != nil {
		log.Error("failed to build client", "error", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, api, rand.Int63n(seedUserCount)+1, log); err != nil {
		log.Error("smoke check failed", "base_url", base, "error", err)
		os.Exit(1)
	}
	log.Info("smoke check passed", "base_url", base)
}

package main

import (
	"Reminder/internal/cli/commands"
	"Reminder/internal/config"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// requestTimeout ограничивает одну команду целиком, включая загрузку картинки.
const requestTimeout = 2 * time.Minute

func main() {
	cfg := config.NewConfig()

	if cfg.Version {
		fmt.Printf("Reminder CLI\nVersion: %s\nBuild date: %s\nServer: %s\n", version, buildDate, cfg.ServerURL)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	code := commands.Dispatch(ctx, cfg, flag.Args())
	cancel()
	stop()
	os.Exit(code)
}

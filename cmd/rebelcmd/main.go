// Package main is the entry point for the Rebel Command engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/anthropics/rebel-command-engine/internal/api"
	"github.com/anthropics/rebel-command-engine/internal/campaign"
	"github.com/anthropics/rebel-command-engine/internal/catalog"
	"github.com/anthropics/rebel-command-engine/internal/config"
	"github.com/anthropics/rebel-command-engine/internal/ipc"
	"github.com/anthropics/rebel-command-engine/internal/session"
	"github.com/anthropics/rebel-command-engine/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "", "path to configuration JSON file")
	flag.Parse()

	if *showVersion {
		fmt.Printf("rebelcmd %s (commit=%s, built=%s)\n", version, commit, date)
		os.Exit(0)
	}

	// Load .env if present; env vars overlay the JSON config.
	_ = godotenv.Load()

	// Resolve config path: --config flag > REBELCMD_CONFIG env > auto-discover.
	// Running without any config file is fine: defaults cover everything.
	path := *configPath
	if path == "" {
		path = os.Getenv("REBELCMD_CONFIG")
	}
	if path == "" {
		path = discoverConfig()
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var archive *store.Archive
	if !cfg.ArchiveDisabled {
		archive, err = store.NewArchive(cfg.ArchivePath)
		if err != nil {
			log.Fatalf("open archive: %v", err)
		}
		defer archive.Close()
	}

	// Wire the engine.
	cat := catalog.New()
	resolver := campaign.NewResolver(cat)

	var choiceLog session.ChoiceLog
	if archive != nil {
		choiceLog = archive
	}
	sessions := session.New(resolver, choiceLog, cfg.MaxActiveSessions)

	service := api.NewService(sessions, cat)
	handler := &ipc.Handler{
		Service: service,
		Archive: archive,
	}

	srv := ipc.NewServer(handler, cfg.ListenAddr)

	// Graceful shutdown on interrupt.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Println("shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("server shutdown: %v", err)
		}
	}()

	log.Printf("rebel command engine listening on %s", ipc.FormatListenURL(cfg.ListenAddr))

	if err := srv.Start(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

// discoverConfig looks for config.json next to the executable, then in the cwd.
func discoverConfig() string {
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), "config.json")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	if _, err := os.Stat("config.json"); err == nil {
		return "config.json"
	}
	return ""
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"sheetdrop/internal/config"
	"sheetdrop/internal/folders"
	"sheetdrop/internal/ingest"
	"sheetdrop/internal/notify"
	"sheetdrop/internal/server"
	"sheetdrop/internal/sheets"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	sheetsClient, err := sheets.New(ctx, cfg.GoogleServiceAccountJSON)
	if err != nil {
		log.Fatalf("sheets: %v", err)
	}

	resolver, err := folders.New(cfg)
	if err != nil {
		log.Fatalf("folders: %v", err)
	}

	notifier, err := notify.New(cfg.TelegramToken, cfg.TelegramAdminChatID)
	if err != nil {
		log.Fatalf("telegram: %v", err)
	}

	svc := ingest.New(sheetsClient)
	httpSrv := server.New(cfg, svc, resolver, notifier)

	go func() {
		log.Printf("HTTP listening on %s", cfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server: %v", err)
		}
	}()

	// Graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctxTimeout, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpSrv.Shutdown(ctxTimeout)

	log.Println("bye")
}

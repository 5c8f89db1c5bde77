package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"edilmodern-erp/internal/config"
	"edilmodern-erp/internal/pdf"
	"edilmodern-erp/internal/server"
	"edilmodern-erp/internal/services"
	"edilmodern-erp/internal/store"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	kv, err := store.OpenKV(cfg.DBDSN)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	st := store.New(kv, logger)

	advice := services.NewAdviceService(cfg.GeminiAPIKey, logger)

	r := server.NewRouter(cfg, st, advice, pdf.NewRenderer(), logger)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

package main

import (
	"log"

	"github.com/fitpulse/gym-api/internal/config"
	"github.com/fitpulse/gym-api/internal/server"
	"github.com/fitpulse/gym-api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	s, err := store.NewGormStore(cfg)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer s.Close()

	srv := server.NewServer(cfg, s).NewHTTPServer()
	log.Printf("listening on %s", cfg.BindAddr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server: %v", err)
	}
}

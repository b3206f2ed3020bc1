package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	v1 "github.com/fitpulse/gym-api/internal/api/v1"
	"github.com/fitpulse/gym-api/internal/config"
	"github.com/fitpulse/gym-api/internal/store"
)

type Server struct {
	cfg *config.Config
	db  *store.Store
}

func NewServer(cfg *config.Config, s *store.Store) *Server {
	return &Server{cfg: cfg, db: s}
}

func (s *Server) NewHTTPServer() *http.Server {
	r := chi.NewRouter()

	// simple CORS for dev; tighten in prod
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173",
			"https://gym-management-site.web.app",
			"https://gym-management-site.firebaseapp.com",
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	api := v1.NewAPI(s.cfg, s.db)
	r.Mount("/", api.Routes())

	return &http.Server{
		Addr:         s.cfg.BindAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
}

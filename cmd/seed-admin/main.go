package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fitpulse/gym-api/internal/config"
	"github.com/fitpulse/gym-api/internal/models"
	"github.com/fitpulse/gym-api/internal/store"
	"github.com/fitpulse/gym-api/internal/utils"
)

// Admin accounts are never created through the API; this is the only way in.
func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: go run cmd/seed-admin/main.go <email> <password>")
		os.Exit(1)
	}
	email, password := os.Args[1], os.Args[2]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	s, err := store.NewGormStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	hash, err := utils.HashPassword(password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if _, err := s.CreateUserIfAbsent(ctx, &models.User{Email: email}); err != nil {
		fmt.Fprintf(os.Stderr, "create user: %v\n", err)
		os.Exit(1)
	}
	if err := s.UpdateUserFields(ctx, email, map[string]interface{}{
		"role":          models.RoleAdmin,
		"password_hash": hash,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "promote: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("admin seeded: %s\n", email)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/config"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/auth"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/storage/postgres"
)

// Bootstraps the first superadmin account. The dashboard has no
// self-registration; every later admin is created by a superadmin.
func main() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")

	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD environment variables are required")
	}
	if name == "" {
		name = "Admin"
	}

	cfg := config.Load()

	db, err := postgres.NewClient(&cfg.Accounts)
	if err != nil {
		log.Fatalf("Failed to connect to accounts database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	authRepo := auth.NewRepository(db)
	authService := auth.NewService(authRepo, &cfg.JWT)

	admin, err := authService.CreateAdmin(ctx, email, password, name, auth.RoleSuperAdmin)
	if err != nil {
		if errors.Is(err, auth.ErrAdminExists) {
			fmt.Printf("Admin '%s' already exists\n", email)
			os.Exit(0)
		}
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Printf("Successfully created superadmin: %s (%s)\n", admin.Email, admin.ID)
}

//go:build ignore

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kenf/property-management/internal/auth"
	"github.com/kenf/property-management/internal/database"
	"github.com/kenf/property-management/internal/database/models"
	"github.com/kenf/property-management/internal/notify"
	"github.com/kenf/property-management/internal/rbac"
	"github.com/kenf/property-management/pkg/config"
	"github.com/kenf/property-management/pkg/util"
)

var roles = []string{"landlord", "tenant", "caretaker", "admin"}

var baselineGrants = map[string][]string{
	"landlord":  {"create_tenant", "view_dashboard"},
	"caretaker": {"create_tenant"},
	"admin":     {"manage_permissions", "view_dashboard"},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := util.NewLogger(cfg.Server.Env)

	db, err := database.Connect(&cfg.Database, logger)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	ctx := context.Background()

	for _, name := range roles {
		role := models.Role{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			log.Fatalf("failed to seed role %s: %v", name, err)
		}
	}
	fmt.Printf("Seeded roles: %v\n", roles)

	checker := rbac.NewChecker(db)
	for role, perms := range baselineGrants {
		for _, perm := range perms {
			if err := checker.Grant(ctx, role, perm); err != nil {
				log.Fatalf("failed to grant %s to %s: %v", perm, role, err)
			}
		}
	}
	fmt.Println("Seeded baseline role permissions")

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	phone := os.Getenv("ADMIN_PHONE")
	if email == "" {
		email = "admin@example.com"
	}
	if password == "" {
		password = "admin123!"
	}
	if phone == "" {
		phone = "+254700000001"
	}

	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry())
	notifier := notify.NewEnqueuer(nil, logger)
	authService := auth.NewService(db, jwtService, notifier, cfg.App.FrontendURL, logger)

	out, err := authService.Register(ctx, auth.RegisterInput{
		FirstName:   "Admin",
		LastName:    "User",
		Email:       email,
		PhoneNumber: phone,
		Role:        "admin",
		Password:    password,
	})
	if err != nil {
		if _, ok := database.AsConflict(err); ok {
			fmt.Printf("Admin user already exists: %s\n", email)
			return
		}
		log.Fatalf("failed to create admin user: %v", err)
	}

	// Admin accounts skip email confirmation.
	if err := db.Model(out.User).Update("is_confirmed", true).Error; err != nil {
		log.Fatalf("failed to confirm admin user: %v", err)
	}

	fmt.Printf("Admin user created successfully!\n")
	fmt.Printf("Email: %s\n", email)
	fmt.Printf("User ID: %s\n", out.User.PublicID)
}

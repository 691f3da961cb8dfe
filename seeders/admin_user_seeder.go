package seeders

import (
	"context"
	"log"
	"os"

	"engagement-tracker/internal/authz"
	"engagement-tracker/pkg/utils"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedAdminUser creates the bootstrap admin account. Promotion is admin
// only, so without this seed no one could ever become admin.
func SeedAdminUser(ctx context.Context, db *pgxpool.Pool) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
	}

	var exists bool
	err := db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", email).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		log.Println("  - admin user already exists, skipping")
		return nil
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	query := "INSERT INTO users (email, password, full_name, role) VALUES ($1, $2, $3, $4)"
	if _, err := db.Exec(ctx, query, email, hashedPassword, "Administrator", authz.RoleAdmin); err != nil {
		return err
	}
	log.Println("  - admin user created:", email)
	return nil
}

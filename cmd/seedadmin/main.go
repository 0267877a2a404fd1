// cmd/seedadmin — creates or refreshes the bootstrap admin account.
// Usage: go run ./cmd/seedadmin  (ADMIN_USERNAME / ADMIN_PASSWORD override the defaults)
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"candiqr/internal/infra"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "candiqr:candiqr@tcp(localhost:3306)/candiqr?parseTime=true&loc=Local"
	}
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatalf("bcrypt error: %v", err)
	}

	db, err := infra.NewDatabase(dsn)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	result := db.WithContext(context.Background()).Exec(`
		INSERT INTO users (id, username, password_hash, name, role, active, created_at, updated_at)
		VALUES (?, ?, ?, 'Administrator', 'admin', true, NOW(), NOW())
		ON DUPLICATE KEY UPDATE
		    password_hash = VALUES(password_hash),
		    role = VALUES(role),
		    active = true,
		    updated_at = NOW()
	`, uuid.NewString(), username, string(hash))

	if result.Error != nil {
		log.Fatalf("insert error: %v", result.Error)
	}
	fmt.Printf("admin '%s' dibuat/diperbarui\n", username)
}

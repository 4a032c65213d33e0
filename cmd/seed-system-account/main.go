// seed-system-account creates the platform operator account used by
// the internal ops endpoints.
//
// Usage:
//
//	DB_USER=... DB_PASSWORD=... DB_HOST=... DB_NAME=... \
//	SYSTEM_USERNAME=smasadmin SYSTEM_PASSWORD=... go run ./cmd/seed-system-account
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hekimalabs/smas_backend/config"
	"github.com/hekimalabs/smas_backend/models"
)

func main() {
	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	if config.GetDB() == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}

	username := os.Getenv("SYSTEM_USERNAME")
	if username == "" {
		username = "smasadmin"
	}
	password := os.Getenv("SYSTEM_PASSWORD")
	if password == "" {
		fmt.Fprintln(os.Stderr, "SYSTEM_PASSWORD is required")
		os.Exit(1)
	}

	user, err := models.EnsureSystemAccount(ctx, username, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed system account: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("system account ready: id=%d username=%s role=%s\n", user.ID, user.Username, user.Role)
}

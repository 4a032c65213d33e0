// restore-branch restores an archived branch from GCS (or ARCHIVE_DIR
// locally) into the database under a fresh branch id.
//
// Usage:
//
//	DB_USER=... GCS_BUCKET=... go run ./cmd/restore-branch branch-archives/mwanza-hardware-2026-08-23.json.gz
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hekimalabs/smas_backend/archive"
	"github.com/hekimalabs/smas_backend/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: restore-branch <object-name>")
		os.Exit(2)
	}
	objectName := os.Args[1]

	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}

	data, err := archive.Load(ctx, objectName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load archive: %v\n", err)
		os.Exit(1)
	}

	branch, err := archive.Restore(ctx, db, data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to restore branch: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("branch restored: id=%d name=%s\n", branch.ID, branch.Name)
}

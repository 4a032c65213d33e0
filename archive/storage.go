package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// ObjectName builds the archive key for a branch, one object per
// branch per day.
func ObjectName(branchName string, at time.Time) string {
	safe := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(branchName)), " ", "-")
	return fmt.Sprintf("branch-archives/%s-%s.json.gz", safe, at.Format("2006-01-02"))
}

func gcsClient(ctx context.Context) (*storage.Client, error) {
	if credJSON := os.Getenv("GCS_CREDENTIALS_JSON"); strings.TrimSpace(credJSON) != "" {
		return storage.NewClient(ctx, option.WithCredentialsJSON([]byte(credJSON)))
	}
	return storage.NewClient(ctx)
}

// Store writes the archive to the configured GCS bucket, or to
// ARCHIVE_DIR on disk when no bucket is set. Local storage is for
// development only.
func Store(ctx context.Context, objectName string, data []byte) error {
	bucketName := os.Getenv("GCS_BUCKET")
	if bucketName == "" {
		return storeLocal(objectName, data)
	}

	client, err := gcsClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	wc := client.Bucket(bucketName).Object(objectName).NewWriter(ctx)
	wc.ContentType = "application/gzip"
	if _, err := wc.Write(data); err != nil {
		return err
	}
	return wc.Close()
}

// Load reads an archive back from the bucket or ARCHIVE_DIR.
func Load(ctx context.Context, objectName string) ([]byte, error) {
	bucketName := os.Getenv("GCS_BUCKET")
	if bucketName == "" {
		return loadLocal(objectName)
	}

	client, err := gcsClient(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	rc, err := client.Bucket(bucketName).Object(objectName).NewReader(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

func archiveDir() string {
	dir := os.Getenv("ARCHIVE_DIR")
	if dir == "" {
		dir = "archives"
	}
	return dir
}

func storeLocal(objectName string, data []byte) error {
	path := filepath.Join(archiveDir(), filepath.FromSlash(objectName))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func loadLocal(objectName string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(archiveDir(), filepath.FromSlash(objectName)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("archive %s not found", objectName)
		}
		return nil, err
	}
	return data, nil
}

package archive

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"gorm.io/gorm"

	"github.com/hekimalabs/smas_backend/models"
	"github.com/hekimalabs/smas_backend/utils"
)

// BranchArchive is the export format: the branch record plus a dump of
// every branch-scoped table, gzip-compressed JSON on the wire. The
// layout is stable so old archives stay restorable.
type BranchArchive struct {
	Branch     models.Branch    `json:"branch"`
	ArchivedAt time.Time        `json:"archived_at"`
	Data       []CollectionDump `json:"data"`
}

type CollectionDump struct {
	Name string                   `json:"name"`
	Rows []map[string]interface{} `json:"rows"`
}

// Export dumps a branch and all its collections into the archive wire
// form. Collections with no rows for the branch are left out.
func Export(ctx context.Context, db *gorm.DB, branch *models.Branch) ([]byte, error) {
	arch := BranchArchive{
		Branch:     *branch,
		ArchivedAt: time.Now().UTC(),
	}

	for _, collection := range models.BranchCollections() {
		var rows []map[string]interface{}
		err := db.WithContext(ctx).Table(collection.Name).
			Where("branch_id = ?", branch.ID).
			Find(&rows).Error
		if err != nil {
			return nil, fmt.Errorf("dump %s: %w", collection.Name, err)
		}
		if len(rows) == 0 {
			continue
		}
		arch.Data = append(arch.Data, CollectionDump{Name: collection.Name, Rows: rows})
	}

	return Encode(&arch)
}

// Restore recreates an archived branch under a fresh id. Row ids are
// dropped so the database assigns new primary keys; branch_id on every
// row is rewritten to the new branch. Dumps naming a collection this
// build no longer knows are skipped, so archives from older builds
// still restore.
func Restore(ctx context.Context, db *gorm.DB, data []byte) (*models.Branch, error) {
	arch, err := Decode(data)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool)
	for _, collection := range models.BranchCollections() {
		known[collection.Name] = true
	}

	branch := arch.Branch
	branch.ID = 0
	branch.Visible = utils.NewTrue()

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&branch).Error; err != nil {
			return fmt.Errorf("restore branch: %w", err)
		}

		for _, dump := range arch.Data {
			if !known[dump.Name] {
				continue
			}
			rows := RewriteRows(dump.Rows, branch.ID)
			if len(rows) == 0 {
				continue
			}
			if err := tx.Table(dump.Name).Create(rows).Error; err != nil {
				return fmt.Errorf("restore %s: %w", dump.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &branch, nil
}

// RewriteRows retargets archived rows at a new branch: primary keys
// are cleared and branch_id is replaced.
func RewriteRows(rows []map[string]interface{}, branchId uint) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		copied := make(map[string]interface{}, len(row))
		for k, v := range row {
			if k == "id" {
				continue
			}
			copied[k] = v
		}
		copied["branch_id"] = branchId
		out = append(out, copied)
	}
	return out
}

func Encode(arch *BranchArchive) ([]byte, error) {
	var buf bytes.Buffer

	gz := gzip.NewWriter(&buf)
	if err := json.NewEncoder(gz).Encode(arch); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func Decode(data []byte) (*BranchArchive, error) {
	if len(data) == 0 {
		return nil, errors.New("empty archive")
	}

	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer gz.Close()

	raw, err := io.ReadAll(gz)
	if err != nil {
		return nil, err
	}

	var arch BranchArchive
	if err := json.Unmarshal(raw, &arch); err != nil {
		return nil, err
	}

	return &arch, nil
}

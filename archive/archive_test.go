package archive

import (
	"testing"
	"time"

	"github.com/hekimalabs/smas_backend/models"
	"github.com/hekimalabs/smas_backend/utils"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	arch := &BranchArchive{
		Branch: models.Branch{
			ID:          42,
			Name:        "Mwanza Hardware",
			PhoneNumber: "+255752628215",
			Days:        -7,
			Visible:     utils.NewFalse(),
		},
		ArchivedAt: time.Date(2026, 8, 30, 1, 0, 0, 0, time.UTC),
		Data: []CollectionDump{
			{
				Name: "customers",
				Rows: []map[string]interface{}{
					{"id": float64(1), "branch_id": float64(42), "name": "Asha"},
					{"id": float64(2), "branch_id": float64(42), "name": "Juma"},
				},
			},
			{Name: "products", Rows: nil},
		},
	}

	data, err := Encode(arch)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if decoded.Branch.ID != 42 || decoded.Branch.Name != "Mwanza Hardware" {
		t.Fatalf("branch = %+v", decoded.Branch)
	}
	if len(decoded.Data) != 2 {
		t.Fatalf("collections = %d, want 2", len(decoded.Data))
	}
	if len(decoded.Data[0].Rows) != 2 {
		t.Fatalf("customer rows = %d, want 2", len(decoded.Data[0].Rows))
	}
	if decoded.Data[0].Rows[1]["name"] != "Juma" {
		t.Fatalf("row name = %v", decoded.Data[0].Rows[1]["name"])
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode([]byte("not gzip")); err == nil {
		t.Fatal("expected error for non-gzip input")
	}
	if _, err := Decode(nil); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestRewriteRows(t *testing.T) {
	rows := []map[string]interface{}{
		{"id": float64(9), "branch_id": float64(42), "name": "Asha"},
	}

	out := RewriteRows(rows, 77)

	if len(out) != 1 {
		t.Fatalf("rows = %d, want 1", len(out))
	}
	if _, ok := out[0]["id"]; ok {
		t.Fatal("primary key should be dropped")
	}
	if out[0]["branch_id"] != uint(77) {
		t.Fatalf("branch_id = %v, want 77", out[0]["branch_id"])
	}
	if rows[0]["branch_id"] != float64(42) {
		t.Fatal("input rows must not be mutated")
	}
}

func TestObjectName(t *testing.T) {
	at := time.Date(2026, 8, 30, 1, 0, 0, 0, time.UTC)
	got := ObjectName("Mwanza Hardware", at)
	want := "branch-archives/mwanza-hardware-2026-08-30.json.gz"
	if got != want {
		t.Fatalf("ObjectName = %q, want %q", got, want)
	}
}

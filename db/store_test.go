package db

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/m1075397715/car-rental-management/models"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return NewStore(conn), path
}

func TestReplaceRoundTrip(t *testing.T) {
	st, _ := newTestStore(t)

	in := []models.Order{
		{ID: 1001, Customer: "张三", Vehicle: "A12345", StartDate: "2026-01-01", EndDate: "2026-02-01", Status: models.OrderOngoing, Amount: "1500"},
		{ID: 1002, Customer: "李四", Vehicle: "B67890", StartDate: "2026-01-05", EndDate: "2026-01-20", Status: models.OrderCompleted, Amount: "800.5"},
	}
	if err := st.ReplaceOrders(in); err != nil {
		t.Fatalf("replace: %v", err)
	}
	out, err := st.LoadOrders()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 2 || out[0].ID != 1001 || out[1].Customer != "李四" || out[1].Amount != "800.5" {
		t.Fatalf("round trip mismatch: %+v", out)
	}

	// 整表替换把删除也带下去
	if err := st.ReplaceOrders(in[:1]); err != nil {
		t.Fatalf("replace: %v", err)
	}
	out, _ = st.LoadOrders()
	if len(out) != 1 {
		t.Fatalf("want 1 order after shrink, got %d", len(out))
	}
}

func TestReplacePreservesBool(t *testing.T) {
	st, _ := newTestStore(t)
	in := []models.Fine{
		{ID: 1, Vehicle: "A12345", Customer: "张三", FineType: "超速", Amount: "500", FineDate: "2026-03-01", Paid: true},
		{ID: 2, Vehicle: "B67890", Customer: "李四", FineType: "违停", Amount: "200", FineDate: "2026-03-02", Paid: false},
	}
	if err := st.ReplaceFines(in); err != nil {
		t.Fatalf("replace: %v", err)
	}
	out, err := st.LoadFines()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !out[0].Paid || out[1].Paid {
		t.Fatalf("paid flags lost: %+v", out)
	}
}

func TestImportLegacyIfEmpty(t *testing.T) {
	st, _ := newTestStore(t)
	dir := t.TempDir()
	blob := `[{"id":3,"plate":"A12345","model":"Camry","year":"2022"},
	          {"id":7,"plate":"B67890","model":"Civic","year":"2023"}]`
	if err := os.WriteFile(filepath.Join(dir, "vehicle_data.json"), []byte(blob), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := st.ImportLegacyIfEmpty(dir); err != nil {
		t.Fatalf("import: %v", err)
	}
	vs, err := st.LoadVehicles()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(vs) != 2 {
		t.Fatalf("want 2 vehicles, got %d", len(vs))
	}
	// 旧文件里的 id 被丢弃，主键重新自增
	if vs[0].ID != 1 || vs[1].ID != 2 {
		t.Fatalf("ids should be reassigned from 1: %d %d", vs[0].ID, vs[1].ID)
	}

	// 表非空时再跑一次不重复导入
	if err := st.ImportLegacyIfEmpty(dir); err != nil {
		t.Fatalf("second import: %v", err)
	}
	vs, _ = st.LoadVehicles()
	if len(vs) != 2 {
		t.Fatalf("import should be idempotent, got %d", len(vs))
	}
}

func TestImportLegacyMissingFile(t *testing.T) {
	st, _ := newTestStore(t)
	if err := st.ImportLegacyIfEmpty(t.TempDir()); err != nil {
		t.Fatalf("missing files should be skipped: %v", err)
	}
}

func TestImportLegacyCorruptFile(t *testing.T) {
	st, _ := newTestStore(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "customer_data.json"), []byte("{oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := st.ImportLegacyIfEmpty(dir); err == nil {
		t.Fatal("corrupt legacy file should abort startup")
	}
}

func TestBackupTo(t *testing.T) {
	st, path := newTestStore(t)
	if err := st.ReplaceVehicles([]models.Vehicle{{ID: 1, Plate: "A12345", Model: "Camry", Year: "2022"}}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	dst := filepath.Join(t.TempDir(), "backup.db")
	if err := BackupTo(path, dst); err != nil {
		t.Fatalf("backup: %v", err)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	cp, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(src, cp) {
		t.Fatal("backup should be a byte-for-byte copy")
	}
}

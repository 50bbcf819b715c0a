package db

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/sergiocalde94/advent-of-code-2024/internal/model"
	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) string {
	t.Helper()
	dsn := "file:test_" + t.Name() + "?mode=memory&cache=shared"
	if err := InitDB("sqlite", dsn); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	return dsn
}

func TestInitDB_Migrations_Applied(t *testing.T) {
	dsn := newTestDB(t)

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open sql.DB for inspection: %v", err)
	}
	defer func() { _ = sqlDB.Close() }()

	rows, err := sqlDB.Query("PRAGMA table_info(schema_migrations)")
	if err != nil {
		t.Fatalf("failed to query schema_migrations table info: %v", err)
	}
	defer func() { _ = rows.Close() }()

	foundAppliedAt := false
	for rows.Next() {
		var cid int
		var name string
		var typ string
		var notnull int
		var dflt sql.NullString
		var pk int
		if err := rows.Scan(&cid, &name, &typ, &notnull, &dflt, &pk); err != nil {
			t.Fatalf("failed scanning pragma row: %v", err)
		}
		if name == "applied_at" {
			foundAppliedAt = true
			break
		}
	}
	if !foundAppliedAt {
		t.Fatalf("expected schema_migrations.applied_at column to exist after migrations")
	}
}

func TestSaveResult_And_GetLatest(t *testing.T) {
	_ = newTestDB(t)

	id, err := SaveResult(1, 1, "11", "inputs/day01.txt", 3*time.Millisecond)
	if err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive id, got %d", id)
	}

	// A second run for the same day/part supersedes the first.
	if _, err := SaveResult(1, 1, "12", "inputs/day01.txt", 2*time.Millisecond); err != nil {
		t.Fatalf("second SaveResult failed: %v", err)
	}

	r, err := GetLatestResult(1, 1)
	if err != nil {
		t.Fatalf("GetLatestResult failed: %v", err)
	}
	if r == nil {
		t.Fatalf("expected a result, got nil")
	}
	if r.Answer != "12" {
		t.Errorf("expected latest answer 12, got %s", r.Answer)
	}
	if r.DurationMs != 2 {
		t.Errorf("expected duration 2ms, got %d", r.DurationMs)
	}

	// No result recorded for part 2 yet.
	r2, err := GetLatestResult(1, 2)
	if err != nil {
		t.Fatalf("GetLatestResult part 2 failed: %v", err)
	}
	if r2 != nil {
		t.Errorf("expected nil for unrecorded part, got %+v", r2)
	}
}

func TestGetResultsForDay_And_Delete(t *testing.T) {
	_ = newTestDB(t)

	for day := 1; day <= 3; day++ {
		if _, err := SaveResult(day, 1, "x", "", time.Millisecond); err != nil {
			t.Fatalf("SaveResult day %d failed: %v", day, err)
		}
	}
	if _, err := SaveResult(2, 2, "y", "", time.Millisecond); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}

	day2, err := GetResultsForDay(2)
	if err != nil {
		t.Fatalf("GetResultsForDay failed: %v", err)
	}
	if len(day2) != 2 {
		t.Fatalf("expected 2 results for day 2, got %d", len(day2))
	}

	n, err := DeleteResultsForDay(2)
	if err != nil {
		t.Fatalf("DeleteResultsForDay failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 deleted rows, got %d", n)
	}

	all, err := GetAllResults()
	if err != nil {
		t.Fatalf("GetAllResults failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 remaining results, got %d", len(all))
	}
}

func TestAuditLog_RecordsActions(t *testing.T) {
	_ = newTestDB(t)

	if err := LogAction("VERIFY", "54/54 passed"); err != nil {
		t.Fatalf("LogAction failed: %v", err)
	}
	// SaveResult logs as a side effect.
	if _, err := SaveResult(5, 1, "143", "", time.Millisecond); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}

	entries, err := GetAllAuditLogEntries()
	if err != nil {
		t.Fatalf("GetAllAuditLogEntries failed: %v", err)
	}
	if len(entries) < 2 {
		t.Fatalf("expected at least 2 audit entries, got %d", len(entries))
	}
	found := false
	for _, e := range entries {
		if e.Action == "VERIFY" && e.Details == "54/54 passed" {
			found = true
		}
		if e.Timestamp == "" {
			t.Errorf("audit entry %d has empty timestamp", e.ID)
		}
	}
	if !found {
		t.Errorf("expected a VERIFY entry in the audit log")
	}
}

func TestBackup_ExportImport_Roundtrip(t *testing.T) {
	_ = newTestDB(t)

	if _, err := SaveResult(1, 1, "11", "inputs/day01.txt", time.Millisecond); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}
	if _, err := SaveResult(1, 2, "31", "inputs/day01.txt", time.Millisecond); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}

	data, err := ExportBackup()
	if err != nil {
		t.Fatalf("ExportBackup failed: %v", err)
	}
	if len(data.Results) != 2 {
		t.Fatalf("expected 2 results in backup, got %d", len(data.Results))
	}
	if len(data.AuditLog) == 0 {
		t.Fatalf("expected audit entries in backup")
	}

	// A full import into a fresh database reproduces the contents.
	dsn2 := "file:test_" + t.Name() + "_target?mode=memory&cache=shared"
	target, err := NewStoreFromDSN("sqlite", dsn2)
	if err != nil {
		t.Fatalf("NewStoreFromDSN failed: %v", err)
	}
	if err := target.ImportBackup(data, true); err != nil {
		t.Fatalf("ImportBackup failed: %v", err)
	}
	restored, err := target.GetAllResults()
	if err != nil {
		t.Fatalf("GetAllResults on target failed: %v", err)
	}
	if len(restored) != 2 {
		t.Fatalf("expected 2 restored results, got %d", len(restored))
	}

	// A second full import wipes before loading, so counts stay stable.
	if err := target.ImportBackup(data, true); err != nil {
		t.Fatalf("second ImportBackup failed: %v", err)
	}
	restored, err = target.GetAllResults()
	if err != nil {
		t.Fatalf("GetAllResults after re-import failed: %v", err)
	}
	if len(restored) != 2 {
		t.Fatalf("expected 2 results after full re-import, got %d", len(restored))
	}
}

func TestResults_Ordering_NewestFirst(t *testing.T) {
	_ = newTestDB(t)

	for i := 0; i < 3; i++ {
		if _, err := SaveResult(3, 1, "a", "", time.Millisecond); err != nil {
			t.Fatalf("SaveResult failed: %v", err)
		}
	}
	all, err := GetAllResults()
	if err != nil {
		t.Fatalf("GetAllResults failed: %v", err)
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].RunAt.Before(all[i].RunAt) {
			t.Fatalf("results not ordered newest first: %v before %v", all[i-1].RunAt, all[i].RunAt)
		}
	}
}

func TestImportBackup_MergeSkipsExisting(t *testing.T) {
	_ = newTestDB(t)

	if _, err := SaveResult(3, 1, "161", "inputs/day03.txt", time.Millisecond); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}
	LogAction("VERIFY", "1/1 passed")

	data, err := ExportBackup()
	if err != nil {
		t.Fatalf("ExportBackup failed: %v", err)
	}
	auditBefore, err := GetAllAuditLogEntries()
	if err != nil {
		t.Fatalf("GetAllAuditLogEntries failed: %v", err)
	}

	// Importing a backup into the store it came from must not duplicate rows.
	if err := ImportBackup(data, false); err != nil {
		t.Fatalf("ImportBackup failed: %v", err)
	}
	all, err := GetAllResults()
	if err != nil {
		t.Fatalf("GetAllResults failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 result after merge import, got %d", len(all))
	}
	// Only the RESTORE entry itself is new; the backup's audit rows are skipped.
	auditAfter, err := GetAllAuditLogEntries()
	if err != nil {
		t.Fatalf("GetAllAuditLogEntries failed: %v", err)
	}
	if len(auditAfter) != len(auditBefore)+1 {
		t.Fatalf("expected %d audit entries after merge import, got %d", len(auditBefore)+1, len(auditAfter))
	}

	// New rows from the backup still land.
	if _, err := SaveResult(3, 2, "48", "inputs/day03.txt", time.Millisecond); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}
	data2, err := ExportBackup()
	if err != nil {
		t.Fatalf("ExportBackup failed: %v", err)
	}
	if _, err := DeleteResultsForDay(3); err != nil {
		t.Fatalf("DeleteResultsForDay failed: %v", err)
	}
	if err := ImportBackup(data2, false); err != nil {
		t.Fatalf("ImportBackup failed: %v", err)
	}
	all, err = GetAllResults()
	if err != nil {
		t.Fatalf("GetAllResults failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 results after merge into emptied store, got %d", len(all))
	}
}

func TestImportBackup_RejectsUnknownVersion(t *testing.T) {
	_ = newTestDB(t)

	data, err := ExportBackup()
	if err != nil {
		t.Fatalf("ExportBackup failed: %v", err)
	}
	data.Version = model.BackupVersion + 1
	err = ImportBackup(data, false)
	if err == nil {
		t.Fatalf("expected error for unsupported backup version")
	}
	if !strings.Contains(err.Error(), "backup version") {
		t.Fatalf("unexpected error: %v", err)
	}
}

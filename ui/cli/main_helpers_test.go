// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sergiocalde94/advent-of-code-2024/internal/model"
)

func TestLatestPerPart(t *testing.T) {
	now := time.Now()
	// Newest-first, as returned by the store.
	results := []model.Result{
		{ID: 4, Day: 1, Part: 1, Answer: "new", RunAt: now},
		{ID: 3, Day: 1, Part: 2, Answer: "p2", RunAt: now.Add(-time.Minute)},
		{ID: 2, Day: 1, Part: 1, Answer: "old", RunAt: now.Add(-time.Hour)},
		{ID: 1, Day: 2, Part: 1, Answer: "d2", RunAt: now.Add(-2 * time.Hour)},
	}

	latest := latestPerPart(results)
	if len(latest) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(latest))
	}
	if latest[0].Answer != "new" {
		t.Errorf("expected newest day 1 part 1 answer, got %s", latest[0].Answer)
	}
	for _, r := range latest {
		if r.Answer == "old" {
			t.Errorf("superseded result leaked through")
		}
	}
}

func TestCompressedBackup_Roundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json.zst")

	data := &model.BackupData{
		Version: model.BackupVersion,
		Results: []model.Result{
			{ID: 1, Day: 1, Part: 1, Answer: "11", DurationMs: 3, RunAt: time.Now().UTC().Truncate(time.Second)},
		},
		AuditLog: []model.AuditLogEntry{
			{ID: 1, Timestamp: "2024-12-01T00:00:00Z", Action: "SAVE_RESULT", Details: "day 1 part 1"},
		},
	}

	if err := writeCompressedBackup(path, data); err != nil {
		t.Fatalf("writeCompressedBackup failed: %v", err)
	}
	got, err := readCompressedBackup(path)
	if err != nil {
		t.Fatalf("readCompressedBackup failed: %v", err)
	}
	if got.Version != data.Version {
		t.Errorf("version mismatch: %d vs %d", got.Version, data.Version)
	}
	if len(got.Results) != 1 || got.Results[0].Answer != "11" {
		t.Errorf("results did not roundtrip: %+v", got.Results)
	}
	if len(got.AuditLog) != 1 || got.AuditLog[0].Action != "SAVE_RESULT" {
		t.Errorf("audit log did not roundtrip: %+v", got.AuditLog)
	}
}

func TestReadCompressedBackup_MissingFile(t *testing.T) {
	if _, err := readCompressedBackup(filepath.Join(t.TempDir(), "nope.zst")); err == nil {
		t.Fatalf("expected error for missing backup file")
	}
}

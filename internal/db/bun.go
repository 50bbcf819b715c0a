// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

// This file contains the bun row models and the dialect-agnostic query
// helpers shared by the SQLite, Postgres and MySQL stores.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sergiocalde94/advent-of-code-2024/internal/model"
	"github.com/uptrace/bun"
)

// resultRow is the bun mapping for the results table.
type resultRow struct {
	bun.BaseModel `bun:"table:results"`

	ID         int64     `bun:"id,pk,autoincrement"`
	Day        int       `bun:"day,notnull"`
	Part       int       `bun:"part,notnull"`
	Answer     string    `bun:"answer,notnull"`
	DurationMs int64     `bun:"duration_ms,notnull"`
	InputFile  string    `bun:"input_file"`
	RunAt      time.Time `bun:"run_at,notnull"`
}

// auditRow is the bun mapping for the audit_log table.
type auditRow struct {
	bun.BaseModel `bun:"table:audit_log"`

	ID        int64  `bun:"id,pk,autoincrement"`
	Timestamp string `bun:"timestamp,notnull"`
	Action    string `bun:"action,notnull"`
	Details   string `bun:"details"`
}

func (r resultRow) toModel() model.Result {
	return model.Result{
		ID:         int(r.ID),
		Day:        r.Day,
		Part:       r.Part,
		Answer:     r.Answer,
		DurationMs: r.DurationMs,
		InputFile:  r.InputFile,
		RunAt:      r.RunAt,
	}
}

func (e auditRow) toModel() model.AuditLogEntry {
	return model.AuditLogEntry{
		ID:        int(e.ID),
		Timestamp: e.Timestamp,
		Action:    e.Action,
		Details:   e.Details,
	}
}

// importKey identifies a result row for merge restores. The schema has no
// natural unique constraint, so duplicates are detected on content.
func (r resultRow) importKey() string {
	return fmt.Sprintf("%d|%d|%s|%d", r.Day, r.Part, r.Answer, r.RunAt.UTC().UnixNano())
}

func (e auditRow) importKey() string {
	return e.Timestamp + "|" + e.Action + "|" + e.Details
}

// saveResultBun inserts a result row and returns its new ID.
func saveResultBun(b *bun.DB, day, part int, answer, inputFile string, duration time.Duration) (int, error) {
	row := resultRow{
		Day:        day,
		Part:       part,
		Answer:     answer,
		DurationMs: duration.Milliseconds(),
		InputFile:  inputFile,
		RunAt:      time.Now().UTC(),
	}
	if _, err := b.NewInsert().Model(&row).Exec(context.Background()); err != nil {
		return 0, MapDBError(err)
	}
	return int(row.ID), nil
}

// getAllResultsBun returns every recorded result, newest first.
func getAllResultsBun(b *bun.DB) ([]model.Result, error) {
	var rows []resultRow
	if err := b.NewSelect().Model(&rows).Order("run_at DESC").Order("id DESC").Scan(context.Background()); err != nil {
		return nil, err
	}
	results := make([]model.Result, 0, len(rows))
	for _, r := range rows {
		results = append(results, r.toModel())
	}
	return results, nil
}

// getResultsForDayBun returns the recorded results for one day, newest first.
func getResultsForDayBun(b *bun.DB, day int) ([]model.Result, error) {
	var rows []resultRow
	err := b.NewSelect().Model(&rows).
		Where("day = ?", day).
		Order("run_at DESC").Order("id DESC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	results := make([]model.Result, 0, len(rows))
	for _, r := range rows {
		results = append(results, r.toModel())
	}
	return results, nil
}

// getLatestResultBun returns the most recent result for a day/part, or nil
// when none has been recorded.
func getLatestResultBun(b *bun.DB, day, part int) (*model.Result, error) {
	var row resultRow
	err := b.NewSelect().Model(&row).
		Where("day = ?", day).
		Where("part = ?", part).
		Order("run_at DESC").Order("id DESC").
		Limit(1).
		Scan(context.Background())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	m := row.toModel()
	return &m, nil
}

// deleteResultsForDayBun removes all results for a day and reports how many
// rows were deleted.
func deleteResultsForDayBun(b *bun.DB, day int) (int, error) {
	res, err := b.NewDelete().Model((*resultRow)(nil)).Where("day = ?", day).Exec(context.Background())
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

// logActionBun appends an entry to the audit trail.
func logActionBun(b *bun.DB, action, details string) error {
	row := auditRow{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Action:    action,
		Details:   details,
	}
	_, err := b.NewInsert().Model(&row).Exec(context.Background())
	return err
}

// getAllAuditLogEntriesBun returns the audit trail, newest first.
func getAllAuditLogEntriesBun(b *bun.DB) ([]model.AuditLogEntry, error) {
	var rows []auditRow
	if err := b.NewSelect().Model(&rows).Order("id DESC").Scan(context.Background()); err != nil {
		return nil, err
	}
	entries := make([]model.AuditLogEntry, 0, len(rows))
	for _, e := range rows {
		entries = append(entries, e.toModel())
	}
	return entries, nil
}

// exportBackupBun assembles a backup envelope with all store contents.
func exportBackupBun(b *bun.DB) (*model.BackupData, error) {
	results, err := getAllResultsBun(b)
	if err != nil {
		return nil, err
	}
	entries, err := getAllAuditLogEntriesBun(b)
	if err != nil {
		return nil, err
	}
	return &model.BackupData{
		Version:  model.BackupVersion,
		Results:  results,
		AuditLog: entries,
	}, nil
}

// importBackupBun loads a backup envelope into the store. With full=true all
// existing rows are wiped first; otherwise rows already present are skipped,
// matched on content since the schema carries no natural unique key. The
// restore runs in a single transaction.
func importBackupBun(b *bun.DB, data *model.BackupData, full bool) error {
	if data.Version != model.BackupVersion {
		return fmt.Errorf("unsupported backup version %d (this build reads version %d)", data.Version, model.BackupVersion)
	}
	ctx := context.Background()
	return b.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		haveResults := map[string]bool{}
		haveAudit := map[string]bool{}
		if full {
			if _, err := tx.NewDelete().Model((*resultRow)(nil)).Where("1 = 1").Exec(ctx); err != nil {
				return err
			}
			if _, err := tx.NewDelete().Model((*auditRow)(nil)).Where("1 = 1").Exec(ctx); err != nil {
				return err
			}
		} else {
			var results []resultRow
			if err := tx.NewSelect().Model(&results).Scan(ctx); err != nil {
				return err
			}
			for _, r := range results {
				haveResults[r.importKey()] = true
			}
			var entries []auditRow
			if err := tx.NewSelect().Model(&entries).Scan(ctx); err != nil {
				return err
			}
			for _, e := range entries {
				haveAudit[e.importKey()] = true
			}
		}
		for _, r := range data.Results {
			row := resultRow{
				Day:        r.Day,
				Part:       r.Part,
				Answer:     r.Answer,
				DurationMs: r.DurationMs,
				InputFile:  r.InputFile,
				RunAt:      r.RunAt,
			}
			if haveResults[row.importKey()] {
				continue
			}
			if _, err := tx.NewInsert().Model(&row).Exec(ctx); err != nil {
				return MapDBError(err)
			}
		}
		for _, e := range data.AuditLog {
			row := auditRow{
				Timestamp: e.Timestamp,
				Action:    e.Action,
				Details:   e.Details,
			}
			if haveAudit[row.importKey()] {
				continue
			}
			if _, err := tx.NewInsert().Model(&row).Exec(ctx); err != nil {
				return MapDBError(err)
			}
		}
		return nil
	})
}

// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

// This file contains the MySQL implementation of the database store.
package db // import "github.com/sergiocalde94/advent-of-code-2024/internal/db"

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sergiocalde94/advent-of-code-2024/internal/model"
	"github.com/uptrace/bun"
	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

// MySQLStore is the MySQL implementation of the Store interface.
type MySQLStore struct {
	db  *sql.DB
	bun *bun.DB
}

// SaveResult records an answer for a day/part along with its timing.
func (s *MySQLStore) SaveResult(day, part int, answer, inputFile string, duration time.Duration) (int, error) {
	id, err := saveResultBun(s.bun, day, part, answer, inputFile, duration)
	if err == nil {
		_ = s.LogAction("SAVE_RESULT", fmt.Sprintf("day %02d part %d: %s", day, part, answer))
	}
	return id, err
}

// GetAllResults retrieves every recorded result, newest first.
func (s *MySQLStore) GetAllResults() ([]model.Result, error) {
	return getAllResultsBun(s.bun)
}

// GetResultsForDay retrieves the recorded results for one day.
func (s *MySQLStore) GetResultsForDay(day int) ([]model.Result, error) {
	return getResultsForDayBun(s.bun, day)
}

// GetLatestResult retrieves the most recent result for a day/part.
func (s *MySQLStore) GetLatestResult(day, part int) (*model.Result, error) {
	return getLatestResultBun(s.bun, day, part)
}

// DeleteResultsForDay removes all recorded results for a day.
func (s *MySQLStore) DeleteResultsForDay(day int) (int, error) {
	n, err := deleteResultsForDayBun(s.bun, day)
	if err == nil && n > 0 {
		_ = s.LogAction("CLEAR_DAY", fmt.Sprintf("day %02d: %d result(s)", day, n))
	}
	return n, err
}

// GetAllAuditLogEntries retrieves the audit trail, newest first.
func (s *MySQLStore) GetAllAuditLogEntries() ([]model.AuditLogEntry, error) {
	return getAllAuditLogEntriesBun(s.bun)
}

// LogAction appends an entry to the audit trail. Failures are the caller's
// concern; audit writes are fire-and-forget at call sites.
func (s *MySQLStore) LogAction(action string, details string) error {
	return logActionBun(s.bun, action, details)
}

// ExportBackup assembles a backup envelope with all store contents.
func (s *MySQLStore) ExportBackup() (*model.BackupData, error) {
	return exportBackupBun(s.bun)
}

// ImportBackup loads a backup envelope into the store.
func (s *MySQLStore) ImportBackup(data *model.BackupData, full bool) error {
	err := importBackupBun(s.bun, data, full)
	if err == nil {
		_ = s.LogAction("RESTORE", fmt.Sprintf("%d results, full=%t", len(data.Results), full))
	}
	return err
}

// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"time"

	"github.com/sergiocalde94/advent-of-code-2024/internal/model"
)

// Store defines the interface for all database operations of the runner.
// This allows for multiple database backends to be implemented.
type Store interface {
	// Result methods
	SaveResult(day, part int, answer, inputFile string, duration time.Duration) (int, error)
	GetAllResults() ([]model.Result, error)
	GetResultsForDay(day int) ([]model.Result, error)
	GetLatestResult(day, part int) (*model.Result, error)
	DeleteResultsForDay(day int) (int, error)

	// Audit log methods
	GetAllAuditLogEntries() ([]model.AuditLogEntry, error)
	LogAction(action string, details string) error

	// Backup methods
	ExportBackup() (*model.BackupData, error)
	ImportBackup(data *model.BackupData, full bool) error
}

// Package-level convenience wrappers over the initialized store. They keep
// call sites in the TUI and CLI short; InitDB must have been called first.

// SaveResult records an answer via the package store.
func SaveResult(day, part int, answer, inputFile string, duration time.Duration) (int, error) {
	return store.SaveResult(day, part, answer, inputFile, duration)
}

// GetAllResults returns every recorded result via the package store.
func GetAllResults() ([]model.Result, error) {
	return store.GetAllResults()
}

// GetResultsForDay returns the recorded results for one day via the package store.
func GetResultsForDay(day int) ([]model.Result, error) {
	return store.GetResultsForDay(day)
}

// GetLatestResult returns the most recent result for a day/part via the package store.
func GetLatestResult(day, part int) (*model.Result, error) {
	return store.GetLatestResult(day, part)
}

// DeleteResultsForDay removes all results for a day via the package store.
func DeleteResultsForDay(day int) (int, error) {
	return store.DeleteResultsForDay(day)
}

// GetAllAuditLogEntries returns the audit trail via the package store.
func GetAllAuditLogEntries() ([]model.AuditLogEntry, error) {
	return store.GetAllAuditLogEntries()
}

// LogAction appends to the audit trail via the package store.
func LogAction(action, details string) error {
	return store.LogAction(action, details)
}

// ExportBackup assembles a backup envelope via the package store.
func ExportBackup() (*model.BackupData, error) {
	return store.ExportBackup()
}

// ImportBackup loads a backup envelope via the package store.
func ImportBackup(data *model.BackupData, full bool) error {
	return store.ImportBackup(data, full)
}

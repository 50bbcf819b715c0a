// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model defines the core data structures shared across the
// application: recorded puzzle answers, the audit trail and the backup
// envelope.
package model

import "time"

// Result is a recorded answer for one part of one day's puzzle.
type Result struct {
	ID         int       `json:"id"`
	Day        int       `json:"day"`
	Part       int       `json:"part"`
	Answer     string    `json:"answer"`
	DurationMs int64     `json:"duration_ms"`
	InputFile  string    `json:"input_file"`
	RunAt      time.Time `json:"run_at"`
}

// AuditLogEntry is a single record of an action performed by the
// application, for traceability.
type AuditLogEntry struct {
	ID        int    `json:"id"`
	Timestamp string `json:"timestamp"`
	Action    string `json:"action"`
	Details   string `json:"details"`
}

// BackupData is the envelope written by `advent backup` and consumed by
// `advent restore` and `advent migrate`.
type BackupData struct {
	Version  int             `json:"version"`
	Results  []Result        `json:"results"`
	AuditLog []AuditLogEntry `json:"audit_log"`
}

// BackupVersion is the current backup envelope schema version.
const BackupVersion = 1

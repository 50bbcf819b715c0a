// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

// audit_log.go implements the activity log view.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sergiocalde94/advent-of-code-2024/internal/db"
	"github.com/sergiocalde94/advent-of-code-2024/internal/i18n"
	"github.com/sergiocalde94/advent-of-code-2024/internal/model"
)

// auditLoadedMsg carries the activity log fetched from the store.
type auditLoadedMsg struct {
	entries []model.AuditLogEntry
	err     error
}

// auditLogModel holds the state for the activity log view.
type auditLogModel struct {
	entries []model.AuditLogEntry
	offset  int
	status  string
	width   int
	height  int
}

func newAuditLogModel() *auditLogModel {
	return &auditLogModel{}
}

func (m *auditLogModel) Init() tea.Cmd {
	return func() tea.Msg {
		entries, err := db.GetAllAuditLogEntries()
		return auditLoadedMsg{entries: entries, err: err}
	}
}

func (m *auditLogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case auditLoadedMsg:
		if msg.err != nil {
			m.status = errorStyle.Render(i18n.T("common.error", msg.err))
			return m, nil
		}
		m.entries = msg.entries

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, func() tea.Msg { return backToMenuMsg{} }
		case "up", "k":
			if m.offset > 0 {
				m.offset--
			}
		case "down", "j":
			if m.offset < len(m.entries)-1 {
				m.offset++
			}
		}
	}
	return m, nil
}

func (m *auditLogModel) View() string {
	title := titleStyle.Render("📋 " + i18n.T("audit.title"))

	if len(m.entries) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title,
			helpStyle.Render(i18n.T("audit.empty")), "",
			footerStyle.Render(i18n.T("audit.help")))
	}

	visible := m.entries[m.offset:]
	maxRows := m.height - 6
	if maxRows > 0 && len(visible) > maxRows {
		visible = visible[:maxRows]
	}

	var rows []string
	for _, e := range visible {
		line := lipgloss.JoinHorizontal(lipgloss.Left,
			helpStyle.Render(e.Timestamp), " ", specialStyle.Render(e.Action), " ", e.Details)
		rows = append(rows, line)
	}
	list := lipgloss.JoinVertical(lipgloss.Left, rows...)

	footer := footerStyle.Render(i18n.T("audit.help"))
	return lipgloss.JoinVertical(lipgloss.Left, title, list, "", m.status, footer)
}

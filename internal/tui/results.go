// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

// results.go implements the recorded-answers view.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sergiocalde94/advent-of-code-2024/internal/db"
	"github.com/sergiocalde94/advent-of-code-2024/internal/i18n"
	"github.com/sergiocalde94/advent-of-code-2024/internal/model"
)

// resultsLoadedMsg carries the result list fetched from the store.
type resultsLoadedMsg struct {
	results []model.Result
	err     error
}

// resultsModel holds the state for the results view.
type resultsModel struct {
	results []model.Result
	cursor  int
	status  string
	width   int
	height  int
}

func newResultsModel() *resultsModel {
	return &resultsModel{}
}

func (m *resultsModel) Init() tea.Cmd {
	return loadResultsCmd()
}

func loadResultsCmd() tea.Cmd {
	return func() tea.Msg {
		results, err := db.GetAllResults()
		return resultsLoadedMsg{results: results, err: err}
	}
}

func (m *resultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case resultsLoadedMsg:
		if msg.err != nil {
			m.status = errorStyle.Render(i18n.T("results.error_load", msg.err))
			return m, nil
		}
		m.results = msg.results
		if m.cursor >= len(m.results) {
			m.cursor = 0
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, func() tea.Msg { return backToMenuMsg{} }
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
		case "d":
			if len(m.results) == 0 {
				return m, nil
			}
			day := m.results[m.cursor].Day
			n, err := db.DeleteResultsForDay(day)
			if err != nil {
				m.status = errorStyle.Render(i18n.T("common.error", err))
				return m, nil
			}
			m.status = specialStyle.Render(i18n.T("results.cleared", n, day))
			return m, loadResultsCmd()
		}
	}
	return m, nil
}

func (m *resultsModel) View() string {
	title := titleStyle.Render("⭐ " + i18n.T("results.title"))

	if len(m.results) == 0 {
		body := helpStyle.Render(i18n.T("results.empty"))
		return lipgloss.JoinVertical(lipgloss.Left, title, body, "", m.status,
			footerStyle.Render(i18n.T("results.help")))
	}

	start := 0
	visible := m.results
	maxRows := m.height - 8
	if maxRows > 0 && len(visible) > maxRows {
		start = m.cursor
		if start+maxRows > len(visible) {
			start = len(visible) - maxRows
		}
		visible = visible[start : start+maxRows]
	}

	var rows []string
	for i, r := range visible {
		line := fmt.Sprintf("%02d.%d  %-20s %6dms  %s  %s",
			r.Day, r.Part, r.Answer, r.DurationMs, r.InputFile, r.RunAt.Format("2006-01-02 15:04"))
		if m.cursor == start+i {
			rows = append(rows, selectedItemStyle.Render("▸ "+line))
		} else {
			rows = append(rows, itemStyle.Render("  "+line))
		}
	}
	list := lipgloss.JoinVertical(lipgloss.Left, rows...)

	footer := footerStyle.Render(i18n.T("results.help"))
	return lipgloss.JoinVertical(lipgloss.Left, title, list, "", m.status, footer)
}

// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for the advent runner.
// This file, tui.go, is the main entry point for the TUI, containing the
// top-level model that acts as a router to all other sub-views.
package tui // import "github.com/sergiocalde94/advent-of-code-2024/internal/tui"

import (
	"fmt"
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sergiocalde94/advent-of-code-2024/internal/config"
	"github.com/sergiocalde94/advent-of-code-2024/internal/db"
	"github.com/sergiocalde94/advent-of-code-2024/internal/i18n"
	"github.com/sergiocalde94/advent-of-code-2024/internal/logging"
	"github.com/sergiocalde94/advent-of-code-2024/internal/model"
	"github.com/sergiocalde94/advent-of-code-2024/internal/puzzle"
	_ "github.com/sergiocalde94/advent-of-code-2024/internal/puzzle/days" // register all solvers
)

// appCfg holds the configuration the TUI was started with. Run sets it.
var appCfg config.Config

// viewState represents which part of the UI is currently active.
type viewState int

const (
	// menuView is the main dashboard and navigation menu.
	menuView viewState = iota
	daysView
	resultsView
	auditLogView
	languageView
)

// dashboardDataMsg is a message containing the data for the main menu dashboard.
type dashboardDataMsg struct {
	data dashboardData
}

// languageChangedMsg signals that the language has changed and the UI should
// be re-initialized.
type languageChangedMsg struct{}

// dashboardData holds the summary information for the main menu view.
type dashboardData struct {
	daysSolved  int
	totalDays   int
	resultCount int
	recentLogs  []model.AuditLogEntry
	err         error
}

// mainModel is the top-level model for the TUI. It acts as a state machine
// and router, delegating updates and view rendering to the currently active
// sub-model.
type mainModel struct {
	state     viewState
	menu      menuModel
	days      *daysModel
	results   *resultsModel
	auditLog  *auditLogModel
	language  languageModel
	dashboard dashboardData
	width     int
	height    int
	notice    string // one-shot status line under the menu
	err       error
}

// menuModel holds the state for the main menu.
type menuModel struct {
	choices []string // The menu items to show.
	cursor  int      // Which menu item our cursor is pointing at.
}

// languageModel holds the state for the language selection menu.
type languageModel struct {
	choices []string // available locale codes, sorted
	cursor  int
}

// initialModel creates the starting state of the TUI, beginning at the main menu.
func initialModel() mainModel {
	return mainModel{
		state: menuView,
		menu: menuModel{
			choices: []string{
				i18n.T("menu.days"),
				i18n.T("menu.results"),
				i18n.T("menu.audit_log"),
				i18n.T("menu.language"),
				i18n.T("menu.quit"),
			},
		},
	}
}

// Init is the first function that will be called by the Bubble Tea runtime.
// It kicks off the initial command to load data for the dashboard.
func (m mainModel) Init() tea.Cmd {
	return refreshDashboardCmd()
}

// Update is the main message loop. It handles all events (like key presses
// and window size changes) and delegates them to the active sub-model.
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings that work everywhere.
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case dashboardDataMsg:
		m.dashboard = msg.data
		if msg.data.err != nil {
			m.err = msg.data.err
		}
		return m, nil

	case languageChangedMsg:
		// Re-initialize the entire model so every view picks up the new
		// translations, preserving the current window dimensions.
		newModel := initialModel()
		newModel.width = m.width
		newModel.height = m.height
		newModel.notice = i18n.T("language.changed")
		return newModel, newModel.Init()
	}

	// Delegate updates to the currently active view.
	switch m.state {
	case daysView:
		if _, ok := msg.(backToMenuMsg); ok {
			m.state = menuView
			return m, refreshDashboardCmd()
		}
		var newDaysModel tea.Model
		newDaysModel, cmd = m.days.Update(msg)
		m.days = newDaysModel.(*daysModel)

	case resultsView:
		if _, ok := msg.(backToMenuMsg); ok {
			m.state = menuView
			return m, refreshDashboardCmd()
		}
		var newResultsModel tea.Model
		newResultsModel, cmd = m.results.Update(msg)
		m.results = newResultsModel.(*resultsModel)

	case auditLogView:
		if _, ok := msg.(backToMenuMsg); ok {
			m.state = menuView
			return m, refreshDashboardCmd()
		}
		var newAuditLogModel tea.Model
		newAuditLogModel, cmd = m.auditLog.Update(msg)
		m.auditLog = newAuditLogModel.(*auditLogModel)

	case languageView:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "q", "esc":
				m.state = menuView
				return m, refreshDashboardCmd()
			case "up", "k":
				if m.language.cursor > 0 {
					m.language.cursor--
				}
			case "down", "j":
				if m.language.cursor < len(m.language.choices)-1 {
					m.language.cursor++
				}
			case "enter":
				langCode := m.language.choices[m.language.cursor]
				i18n.SetLang(langCode)
				appCfg.Language = langCode
				if err := config.WriteConfigFile(&appCfg, false); err != nil {
					m.err = fmt.Errorf("failed to save config: %w", err)
				}
				return m, func() tea.Msg { return languageChangedMsg{} }
			}
		}

	default: // menuView
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			m.notice = ""
			switch keyMsg.String() {
			case "q":
				return m, tea.Quit
			case "up", "k":
				if m.menu.cursor > 0 {
					m.menu.cursor--
				}
			case "down", "j":
				if m.menu.cursor < len(m.menu.choices)-1 {
					m.menu.cursor++
				}
			case "enter":
				switch m.menu.cursor {
				case 0: // Browse puzzles
					m.state = daysView
					newModel := newDaysModel()
					m.days = newModel
					var updatedModel tea.Model
					updatedModel, cmd = m.days.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
					m.days = updatedModel.(*daysModel)
					return m, tea.Batch(cmd, m.days.Init())
				case 1: // View results
					m.state = resultsView
					m.results = newResultsModel()
					return m, m.results.Init()
				case 2: // View activity log
					m.state = auditLogView
					m.auditLog = newAuditLogModel()
					return m, m.auditLog.Init()
				case 3: // Language
					m.state = languageView
					m.language = newLanguageModel()
					return m, nil
				case 4: // Quit
					return m, tea.Quit
				}
			case "L":
				// "L" opens the language menu from anywhere in the main menu
				m.state = languageView
				m.language = newLanguageModel()
				return m, nil
			}
		}
	}

	return m, cmd
}

// View renders the TUI. It's called after every Update and delegates
// rendering to the currently active sub-model.
func (m mainModel) View() string {
	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1, 2)
		return errStyle.Render(fmt.Sprintf("An error occurred: %v", m.err))
	}

	switch m.state {
	case daysView:
		return m.days.View()
	case resultsView:
		return m.results.View()
	case auditLogView:
		return m.auditLog.View()
	case languageView:
		return m.language.View()
	default: // menuView
		out := m.menu.View(m.dashboard, m.width, m.height)
		if m.notice != "" {
			out += "\n" + successStyle.Render(m.notice)
		}
		return out
	}
}

// View renders the main menu and dashboard.
func (m menuModel) View(data dashboardData, width, height int) string {
	title := mainTitleStyle.Render("🎄 " + i18n.T("menu.title"))
	header := lipgloss.JoinVertical(lipgloss.Left, title)

	paneTitleStyle := lipgloss.NewStyle().Bold(true)

	// Menu List (Left Pane)
	var menuItems []string
	for i, choice := range m.choices {
		if m.cursor == i {
			menuItems = append(menuItems, selectedItemStyle.Render("▸ "+choice))
		} else {
			menuItems = append(menuItems, itemStyle.Render("  "+choice))
		}
	}
	menuContent := lipgloss.JoinVertical(lipgloss.Left, menuItems...)

	// Dashboard (Right Pane)
	var dashboardItems []string
	solvedLine := i18n.T("dashboard.days_solved", data.daysSolved, data.totalDays)
	if data.daysSolved == data.totalDays && data.totalDays > 0 {
		solvedLine = successStyle.Render(solvedLine)
	}
	dashboardItems = append(dashboardItems,
		solvedLine,
		i18n.T("dashboard.results_recorded", data.resultCount),
		"", paneTitleStyle.Render(i18n.T("dashboard.recent_activity")), "")

	if len(data.recentLogs) == 0 {
		dashboardItems = append(dashboardItems, helpStyle.Render(i18n.T("dashboard.no_activity")))
	} else {
		for _, entry := range data.recentLogs {
			ts := entry.Timestamp
			if len(ts) >= 16 {
				ts = ts[5:16] // MM-DD HH:MM
			}
			line := lipgloss.JoinHorizontal(lipgloss.Left,
				helpStyle.Render(ts), " ", specialStyle.Render(entry.Action), " ", helpStyle.Render(entry.Details))
			dashboardItems = append(dashboardItems, line)
		}
	}
	dashboardContent := lipgloss.JoinVertical(lipgloss.Left, dashboardItems...)

	menuWidth := 30
	dashboardWidth := width - 4 - menuWidth - 2
	if dashboardWidth < 30 {
		dashboardWidth = 30
	}
	headerHeight := lipgloss.Height(header)
	paneHeight := height - headerHeight - 4
	if paneHeight < 8 {
		paneHeight = 8
	}

	leftPane := paneStyle.Width(menuWidth).Height(paneHeight).Render(menuContent)
	rightPane := paneStyle.Width(dashboardWidth).Height(paneHeight).MarginLeft(2).Render(dashboardContent)
	mainArea := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)

	footer := footerStyle.Render(i18n.T("menu.help"))

	return lipgloss.JoinVertical(lipgloss.Top, header, mainArea, footer)
}

// newLanguageModel creates a new model for the language selection view.
func newLanguageModel() languageModel {
	choices := i18n.GetAvailableLocales()
	sort.Strings(choices)
	return languageModel{choices: choices}
}

// Init for languageModel.
func (m languageModel) Init() tea.Cmd { return nil }

// Update for languageModel.
func (m languageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

// View for languageModel.
func (m languageModel) View() string {
	title := mainTitleStyle.Render("🌐 " + i18n.T("language.title"))

	var listItems []string
	for i, langCode := range m.choices {
		line := "  " + langCode
		if m.cursor == i {
			listItems = append(listItems, selectedItemStyle.Render("▸ "+langCode))
		} else {
			listItems = append(listItems, itemStyle.Render(line))
		}
	}

	listPane := paneStyle.Width(40).Render(lipgloss.JoinVertical(lipgloss.Left, listItems...))
	helpLine := footerStyle.Render(i18n.T("common.back"))

	return lipgloss.JoinVertical(lipgloss.Left, title, "", listPane, "", helpLine)
}

// Run is the main entrypoint for the TUI. It initializes and runs the Bubble
// Tea program.
func Run(cfg config.Config) {
	appCfg = cfg
	if _, err := tea.NewProgram(initialModel()).Run(); err != nil {
		logging.Errorf("TUI run error: %v", err)
		os.Exit(1)
	}
}

// refreshDashboardCmd is a tea.Cmd that fetches summary data for the main menu.
func refreshDashboardCmd() tea.Cmd {
	return func() tea.Msg {
		data := dashboardData{totalDays: len(puzzle.Days())}

		results, err := db.GetAllResults()
		if err != nil {
			return dashboardDataMsg{data: dashboardData{err: err}}
		}
		data.resultCount = len(results)
		solved := map[int]bool{}
		for _, r := range results {
			solved[r.Day] = true
		}
		data.daysSolved = len(solved)

		logs, err := db.GetAllAuditLogEntries()
		if err != nil {
			return dashboardDataMsg{data: dashboardData{err: err}}
		}
		if len(logs) > 8 {
			logs = logs[:8]
		}
		data.recentLogs = logs

		return dashboardDataMsg{data: data}
	}
}

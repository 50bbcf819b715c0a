// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

// days.go implements the puzzle browser view. It lists the 25 days with
// their latest recorded answers and runs a day's solver on demand.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sergiocalde94/advent-of-code-2024/internal/db"
	"github.com/sergiocalde94/advent-of-code-2024/internal/i18n"
	"github.com/sergiocalde94/advent-of-code-2024/internal/puzzle"
)

// backToMenuMsg signals the router to return to the main menu.
type backToMenuMsg struct{}

// dayRunDoneMsg carries the outcome of a solver run started from the list.
type dayRunDoneMsg struct {
	day     int
	answers [2]string
	elapsed time.Duration
	err     error
}

// dayEntry is one row of the puzzle list.
type dayEntry struct {
	day     int
	title   string
	part1   string // latest recorded answer, empty when not run
	part2   string
	noPart2 bool
}

// daysModel holds the state for the puzzle browser.
type daysModel struct {
	entries   []dayEntry
	cursor    int
	running   bool
	spinner   spinner.Model
	input     textinput.Model
	prompting bool
	status    string
	width     int
	height    int
}

func newDaysModel() *daysModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorHighlight)

	ti := textinput.New()
	ti.Placeholder = puzzle.InputFileName(1)
	ti.CharLimit = 256

	m := &daysModel{spinner: sp, input: ti}
	m.reload()
	return m
}

// reload rebuilds the day list from the registry and the results store.
func (m *daysModel) reload() {
	m.entries = m.entries[:0]
	for _, day := range puzzle.Days() {
		p, err := puzzle.Get(day)
		if err != nil {
			continue
		}
		e := dayEntry{day: day, title: p.Title, noPart2: p.Part2 == nil}
		if r, err := db.GetLatestResult(day, 1); err == nil && r != nil {
			e.part1 = r.Answer
		}
		if r, err := db.GetLatestResult(day, 2); err == nil && r != nil {
			e.part2 = r.Answer
		}
		m.entries = append(m.entries, e)
	}
}

func (m *daysModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *daysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.running {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case dayRunDoneMsg:
		m.running = false
		if msg.err != nil {
			m.status = errorStyle.Render(i18n.T("common.error", msg.err))
		} else {
			m.status = successStyle.Render(fmt.Sprintf("%s / %s (%s)",
				msg.answers[0], orDash(msg.answers[1]), msg.elapsed.Round(time.Millisecond)))
		}
		m.reload()
		return m, nil

	case tea.KeyMsg:
		if m.prompting {
			switch msg.String() {
			case "esc":
				m.prompting = false
				m.input.Blur()
				return m, nil
			case "enter":
				path := m.input.Value()
				m.prompting = false
				m.input.Blur()
				return m, m.startRun(m.entries[m.cursor].day, path)
			}
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		if m.running {
			return m, nil
		}
		switch msg.String() {
		case "q", "esc":
			return m, func() tea.Msg { return backToMenuMsg{} }
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "enter":
			return m, m.startRun(m.entries[m.cursor].day, "")
		case "i":
			m.prompting = true
			m.input.SetValue("")
			m.input.Placeholder = puzzle.InputPath(appCfg.Inputs.Dir, m.entries[m.cursor].day)
			return m, m.input.Focus()
		}
	}

	return m, nil
}

// startRun kicks off a solver run for one day in the background.
func (m *daysModel) startRun(day int, inputPath string) tea.Cmd {
	m.running = true
	m.status = i18n.T("days.running", day)
	run := func() tea.Msg {
		path := inputPath
		if path == "" {
			path = puzzle.InputPath(appCfg.Inputs.Dir, day)
		}
		input, err := puzzle.ReadInput(path)
		if err != nil {
			return dayRunDoneMsg{day: day, err: err}
		}
		p, err := puzzle.Get(day)
		if err != nil {
			return dayRunDoneMsg{day: day, err: err}
		}
		start := time.Now()
		var answers [2]string
		for part := 1; part <= 2; part++ {
			if part == 2 && p.Part2 == nil {
				break
			}
			partStart := time.Now()
			answer, err := puzzle.Solve(day, part, input)
			if err != nil {
				return dayRunDoneMsg{day: day, err: err}
			}
			answers[part-1] = answer
			if _, err := db.SaveResult(day, part, answer, path, time.Since(partStart)); err != nil {
				return dayRunDoneMsg{day: day, err: err}
			}
		}
		return dayRunDoneMsg{day: day, answers: answers, elapsed: time.Since(start)}
	}
	return tea.Batch(m.spinner.Tick, run)
}

func orDash(s string) string {
	if s == "" {
		return i18n.T("days.no_part_two")
	}
	return s
}

func (m *daysModel) View() string {
	title := titleStyle.Render("📅 " + i18n.T("days.title"))

	var rows []string
	for i, e := range m.entries {
		p1 := e.part1
		if p1 == "" {
			p1 = helpStyle.Render(i18n.T("days.not_run"))
		}
		p2 := e.part2
		if e.noPart2 {
			p2 = helpStyle.Render(i18n.T("days.no_part_two"))
		} else if p2 == "" {
			p2 = helpStyle.Render(i18n.T("days.not_run"))
		}
		line := fmt.Sprintf("%02d  %-32s %s / %s", e.day, e.title, p1, p2)
		if m.cursor == i {
			rows = append(rows, selectedItemStyle.Render("▸ "+line))
		} else {
			rows = append(rows, itemStyle.Render("  "+line))
		}
	}
	list := lipgloss.JoinVertical(lipgloss.Left, rows...)

	var tail string
	switch {
	case m.prompting:
		tail = i18n.T("days.input_prompt") + m.input.View()
	case m.running:
		tail = m.spinner.View() + " " + m.status
	default:
		tail = m.status
	}

	footer := footerStyle.Render(i18n.T("days.help"))
	return lipgloss.JoinVertical(lipgloss.Left, title, list, "", tail, footer)
}

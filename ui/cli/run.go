// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sergiocalde94/advent-of-code-2024/internal/db"
	"github.com/sergiocalde94/advent-of-code-2024/internal/i18n"
	"github.com/sergiocalde94/advent-of-code-2024/internal/puzzle"
	_ "github.com/sergiocalde94/advent-of-code-2024/internal/puzzle/days" // register all solvers
)

var runPart int
var runInput string
var runCopy bool
var runNoSave bool
var runAll bool

func init() {
	runCmd.Flags().IntVarP(&runPart, "part", "p", 0, "Part to run (1 or 2; 0 runs both)")
	runCmd.Flags().StringVarP(&runInput, "input", "i", "", "Input file (overrides the inputs directory)")
	runCmd.Flags().BoolVarP(&runCopy, "copy", "c", false, "Copy the (last) answer to the clipboard")
	runCmd.Flags().BoolVar(&runNoSave, "no-save", false, "Do not record the run in the database")
	runCmd.Flags().BoolVar(&runAll, "all", false, "Run every day with an available input")
}

// runCmd represents the 'run' command.
// It solves one day (or all days) against the configured puzzle inputs and
// records the answers in the results database.
var runCmd = &cobra.Command{
	Use:   "run [day]",
	Short: "Solve a day's puzzle and record the answers",
	Long: `Solves one puzzle day against its input file and prints the answers.

The input is read from <inputs.dir>/dayNN.txt unless --input points at a
specific file. Both parts run by default; restrict to one with --part.
Every successful answer is recorded in the results database unless
--no-save is given. With --all, every day that has an input file is run
concurrently and day 0 must be omitted.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: setupDefaultServices,
	RunE: func(cmd *cobra.Command, args []string) error {
		if runAll {
			if len(args) > 0 {
				return errors.New("cannot combine --all with a day argument")
			}
			return runAllDays()
		}
		if len(args) == 0 {
			return errors.New("day argument required (or use --all)")
		}
		day, err := strconv.Atoi(args[0])
		if err != nil || day < 1 || day > 25 {
			return fmt.Errorf("invalid day %q: must be 1-25", args[0])
		}
		return runDay(day)
	},
}

// loadInput resolves the input file for a day, honoring --input.
func loadInput(day int) (string, string, error) {
	path := runInput
	if path == "" {
		path = puzzle.InputPath(appConfig.Inputs.Dir, day)
	}
	input, err := puzzle.ReadInput(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", path, fmt.Errorf("%s", i18n.T("run.missing_input", day, path))
		}
		return "", path, err
	}
	return input, path, nil
}

func runDay(day int) error {
	p, err := puzzle.Get(day)
	if err != nil {
		return fmt.Errorf("%s", i18n.T("run.unknown_day", day))
	}
	input, path, err := loadInput(day)
	if err != nil {
		return err
	}

	fmt.Println(i18n.T("run.day_header", day, p.Title))

	parts := []int{1, 2}
	if runPart != 0 {
		parts = []int{runPart}
	}

	var lastAnswer string
	for _, part := range parts {
		if part == 2 && p.Part2 == nil {
			if runPart == 2 {
				return fmt.Errorf("%s", i18n.T("run.no_part_two", day))
			}
			continue
		}
		start := time.Now()
		answer, err := puzzle.Solve(day, part, input)
		elapsed := time.Since(start)
		if err != nil {
			return fmt.Errorf("%s", i18n.T("run.error", day, part, err))
		}
		fmt.Println(i18n.T("run.answer", part, answer, elapsed.Round(time.Microsecond)))
		lastAnswer = answer
		if !runNoSave {
			if _, err := db.SaveResult(day, part, answer, path, elapsed); err != nil {
				log.Warnf("could not save result: %v", err)
			} else if isTerminal() {
				fmt.Println(i18n.T("run.saved"))
			}
		}
	}

	if runCopy && lastAnswer != "" {
		if err := clipboard.WriteAll(lastAnswer); err != nil {
			log.Warnf("could not copy to clipboard: %v", err)
		} else {
			fmt.Println(i18n.T("run.copied"))
		}
	}
	return nil
}

// dayRunOutcome collects the result of one concurrent day run.
type dayRunOutcome struct {
	day int
	err error
}

// runAllDays solves every registered day that has an input file, running the
// days concurrently and printing a summary at the end.
func runAllDays() error {
	var days []int
	for _, day := range puzzle.Days() {
		path := puzzle.InputPath(appConfig.Inputs.Dir, day)
		if _, err := os.Stat(path); err == nil {
			days = append(days, day)
		}
	}
	if len(days) == 0 {
		return fmt.Errorf("%s", i18n.T("run.missing_input", 1, puzzle.InputPath(appConfig.Inputs.Dir, 1)))
	}

	fmt.Println(i18n.T("run.all_starting", len(days)))
	start := time.Now()

	var wg sync.WaitGroup
	results := make(chan dayRunOutcome, len(days))
	for _, day := range days {
		wg.Add(1)
		go func(day int) {
			defer wg.Done()
			results <- dayRunOutcome{day: day, err: solveAndRecord(day)}
		}(day)
	}
	wg.Wait()
	close(results)

	var failed []dayRunOutcome
	ok := 0
	for r := range results {
		if r.err != nil {
			failed = append(failed, r)
		} else {
			ok++
		}
	}
	sort.Slice(failed, func(i, j int) bool { return failed[i].day < failed[j].day })
	for _, f := range failed {
		log.Errorf("%s: %v", i18n.T("run.all_task", f.day), f.err)
	}
	fmt.Println(i18n.T("run.all_done", ok, len(failed), time.Since(start).Round(time.Millisecond)))
	if len(failed) > 0 {
		return fmt.Errorf("%d day(s) failed", len(failed))
	}
	return nil
}

// solveAndRecord runs both parts of a day quietly; used by the --all path.
func solveAndRecord(day int) error {
	p, err := puzzle.Get(day)
	if err != nil {
		return err
	}
	path := puzzle.InputPath(appConfig.Inputs.Dir, day)
	input, err := puzzle.ReadInput(path)
	if err != nil {
		return err
	}
	parts := []int{1}
	if p.Part2 != nil {
		parts = append(parts, 2)
	}
	for _, part := range parts {
		start := time.Now()
		answer, err := puzzle.Solve(day, part, input)
		elapsed := time.Since(start)
		if err != nil {
			return fmt.Errorf("part %d: %w", part, err)
		}
		fmt.Println(i18n.T("run.day_header", day, p.Title) + " " + i18n.T("run.answer", part, answer, elapsed.Round(time.Microsecond)))
		if !runNoSave {
			if _, err := db.SaveResult(day, part, answer, path, elapsed); err != nil {
				log.Warnf("could not save result for day %d: %v", day, err)
			}
		}
	}
	return nil
}

// isTerminal reports whether stdout is an interactive terminal. Progress
// chatter is suppressed when output is piped.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

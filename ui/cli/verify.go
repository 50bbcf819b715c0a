// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"strconv"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sergiocalde94/advent-of-code-2024/internal/db"
	"github.com/sergiocalde94/advent-of-code-2024/internal/i18n"
	"github.com/sergiocalde94/advent-of-code-2024/internal/puzzle/days"
)

// verifyCmd represents the 'verify' command.
// It runs every solver against the published example inputs and compares the
// answers with the known expected values.
var verifyCmd = &cobra.Command{
	Use:   "verify [day...]",
	Short: "Check solvers against the published example inputs",
	Long: `Runs the built-in example inputs through each solver and compares the
answers against the values published alongside the puzzles. With no
arguments every day is checked; pass day numbers to restrict the check.`,
	PreRunE: setupDefaultServices,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := map[int]bool{}
		for _, a := range args {
			day, err := strconv.Atoi(a)
			if err != nil || day < 1 || day > 25 {
				return fmt.Errorf("invalid day %q: must be 1-25", a)
			}
			filter[day] = true
		}

		cases := days.VerifyExamples(filter)
		failed := 0
		for _, c := range cases {
			if verbose {
				fmt.Println(i18n.T("verify.running", c.Day, c.Part, c.File))
			}
			switch {
			case c.Err != nil:
				failed++
				fmt.Println(i18n.T("verify.error", c.Day, c.Part, c.Err))
			case !c.Passed:
				failed++
				fmt.Println(i18n.T("verify.fail", c.Day, c.Part, c.Expected, c.Actual))
			default:
				fmt.Println(i18n.T("verify.pass", c.Day, c.Part, c.File))
			}
		}

		details := fmt.Sprintf("%d/%d passed", len(cases)-failed, len(cases))
		if err := db.LogAction("VERIFY", details); err != nil {
			log.Debugf("could not log verify action: %v", err)
		}

		if failed > 0 {
			fmt.Println(i18n.T("verify.summary_fail", failed, len(cases)))
			os.Exit(1)
		}
		fmt.Println(i18n.T("verify.summary_ok", len(cases)))
		return nil
	},
}

// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sergiocalde94/advent-of-code-2024/internal/db"
	"github.com/sergiocalde94/advent-of-code-2024/internal/i18n"
	"github.com/sergiocalde94/advent-of-code-2024/internal/model"
)

var resultsLatest bool

func init() {
	resultsCmd.Flags().BoolVar(&resultsLatest, "latest", false, "Show only the most recent result per day and part")
	resultsCmd.AddCommand(resultsClearCmd)
	resultsCmd.AddCommand(auditLogCmd)
}

// resultsCmd represents the 'results' command.
// It lists the recorded answers as a table.
var resultsCmd = &cobra.Command{
	Use:   "results [day]",
	Short: "List recorded puzzle answers",
	Long: `Lists the answers recorded by previous runs. With a day argument only
that day's runs are shown; --latest collapses the list to the most
recent answer per day and part.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: setupDefaultServices,
	RunE: func(cmd *cobra.Command, args []string) error {
		var results []model.Result
		var err error
		if len(args) > 0 {
			day, aerr := strconv.Atoi(args[0])
			if aerr != nil || day < 1 || day > 25 {
				return fmt.Errorf("invalid day %q: must be 1-25", args[0])
			}
			results, err = db.GetResultsForDay(day)
		} else {
			results, err = db.GetAllResults()
		}
		if err != nil {
			log.Fatalf("%s", i18n.T("results.error_load", err))
		}

		if resultsLatest {
			results = latestPerPart(results)
		}

		if len(results) == 0 {
			fmt.Println(i18n.T("results.none"))
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DAY\tPART\tANSWER\tDURATION\tINPUT\tRUN AT")
		for _, r := range results {
			fmt.Fprintf(w, "%02d\t%d\t%s\t%dms\t%s\t%s\n",
				r.Day, r.Part, r.Answer, r.DurationMs, r.InputFile, r.RunAt.Format("2006-01-02 15:04:05"))
		}
		w.Flush()
		return nil
	},
}

// latestPerPart keeps only the newest result for each day/part combination.
// Results arrive newest-first from the store.
func latestPerPart(results []model.Result) []model.Result {
	type key struct{ day, part int }
	seen := map[key]bool{}
	var out []model.Result
	for _, r := range results {
		k := key{r.Day, r.Part}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}
	return out
}

// resultsClearCmd deletes the stored results for one day.
var resultsClearCmd = &cobra.Command{
	Use:     "clear <day>",
	Short:   "Delete the stored results for a day",
	Args:    cobra.ExactArgs(1),
	PreRunE: setupDefaultServices,
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := strconv.Atoi(args[0])
		if err != nil || day < 1 || day > 25 {
			return fmt.Errorf("invalid day %q: must be 1-25", args[0])
		}
		n, err := db.DeleteResultsForDay(day)
		if err != nil {
			log.Fatalf("%s", i18n.T("results.error_load", err))
		}
		fmt.Println(i18n.T("results.cleared", n, day))
		return nil
	},
}

// auditLogCmd lists the activity log.
var auditLogCmd = &cobra.Command{
	Use:     "audit-log",
	Short:   "Show the recorded activity log",
	PreRunE: setupDefaultServices,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := db.GetAllAuditLogEntries()
		if err != nil {
			log.Fatalf("%s", i18n.T("results.error_load", err))
		}
		if len(entries) == 0 {
			fmt.Println(i18n.T("audit.empty"))
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TIMESTAMP\tACTION\tDETAILS")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.Timestamp, e.Action, e.Details)
		}
		w.Flush()
		return nil
	},
}

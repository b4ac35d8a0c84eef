package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kmarens/famsched/config"
	"github.com/kmarens/famsched/core/recurrence"
)

var (
	occChildID    string
	occActivityID string
	occCount      int
)

var occurrencesCmd = &cobra.Command{
	Use:   "occurrences",
	Short: "Project the next occurrences of a recurring activity",
	RunE:  runOccurrences,
}

func init() {
	occurrencesCmd.Flags().StringVarP(&familyPath, "family", "f", "family.yaml", "family definition file")
	occurrencesCmd.Flags().StringVar(&occChildID, "child", "", "child id")
	occurrencesCmd.Flags().StringVar(&occActivityID, "activity", "", "activity id")
	occurrencesCmd.Flags().IntVarP(&occCount, "count", "n", 5, "number of occurrences")
	occurrencesCmd.Flags().StringVar(&nowFlag, "now", "", "reference time, RFC3339 (defaults to wall clock)")
	rootCmd.AddCommand(occurrencesCmd)
}

type occurrenceOut struct {
	Date  string `json:"date"`
	Start string `json:"start"`
}

func runOccurrences(cmd *cobra.Command, args []string) error {
	children, _, err := config.LoadFamily(familyPath)
	if err != nil {
		return fmt.Errorf("load family: %w", err)
	}
	now := time.Now()
	if nowFlag != "" {
		now, err = time.Parse(time.RFC3339, nowFlag)
		if err != nil {
			return fmt.Errorf("parse --now: %w", err)
		}
	}
	for _, child := range children {
		if occChildID != "" && child.ID != occChildID {
			continue
		}
		for _, act := range child.Activities {
			if act.ID != occActivityID {
				continue
			}
			var out []occurrenceOut
			for _, occ := range recurrence.NextOccurrences(act, now, occCount) {
				out = append(out, occurrenceOut{
					Date:  occ.Date.Format("2006-01-02"),
					Start: occ.Start.String(),
				})
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}
	}
	return fmt.Errorf("activity %q not found", occActivityID)
}

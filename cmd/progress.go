package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show progress toward the next level",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		user := userID(cmd)
		lvl := a.Profiles.Get(user).Level
		report, err := a.Progress.Calculate(cmd.Context(), user, lvl)
		if err != nil {
			return err
		}

		if jsonOutput(cmd) {
			return printJSON(report)
		}

		fmt.Printf("%s progress: %.0f%%\n", report.Level.DisplayName(), report.OverallPercent)
		fmt.Println()
		fmt.Printf("  competencies %5.1f  %s\n", report.Components.Competencies.Score, report.Components.Competencies.Detail)
		fmt.Printf("  mastery      %5.1f  %s\n", report.Components.Mastery.Score, report.Components.Mastery.Detail)
		fmt.Printf("  coverage     %5.1f  %s\n", report.Components.Coverage.Score, report.Components.Coverage.Detail)
		fmt.Printf("  consistency  %5.1f  %s\n", report.Components.Consistency.Score, report.Components.Consistency.Detail)

		if len(report.MissingCompetencies) > 0 {
			fmt.Println()
			fmt.Println("Still needed:")
			for _, m := range report.MissingCompetencies {
				fmt.Println("  -", m)
			}
		}
		if len(report.StrongestAreas) > 0 {
			fmt.Println()
			fmt.Println("Strongest:")
			for _, s := range report.StrongestAreas {
				fmt.Printf("  - %s (%.0f%% over %d attempts)\n", s.Name, s.Accuracy*100, s.Attempts)
			}
		}
		if len(report.WeakestAreas) > 0 {
			fmt.Println()
			fmt.Println("Weakest:")
			for _, w := range report.WeakestAreas {
				fmt.Printf("  - %s (%.0f%% over %d attempts)\n", w.Name, w.Accuracy*100, w.Attempts)
			}
		}
		if len(report.NextMilestones) > 0 {
			fmt.Println()
			fmt.Println("Next milestones:")
			for _, m := range report.NextMilestones {
				fmt.Println("  -", m)
			}
		}
		return nil
	},
}

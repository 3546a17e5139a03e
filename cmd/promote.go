package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/conjugo/internal/progression"
)

var promoteCmd = &cobra.Command{
	Use:   "promote",
	Short: "Check promotion requirements and promote if they are met",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := cmd.Context()
		user := userID(cmd)

		elig, err := a.Progression.EvaluateEligibility(ctx, user)
		if err != nil {
			return err
		}

		checkOnly, _ := cmd.Flags().GetBool("check")
		if checkOnly {
			if jsonOutput(cmd) {
				return printJSON(elig)
			}
			printEligibility(elig)
			return nil
		}

		result, err := a.Progression.AttemptPromotion(ctx, user)
		if err != nil {
			return err
		}
		a.InvalidateCaches()

		if jsonOutput(cmd) {
			return printJSON(map[string]any{"eligibility": elig, "result": result})
		}
		if result.Promoted {
			fmt.Printf("Promoted: %s -> %s\n", result.From.DisplayName(), result.To.DisplayName())
			return nil
		}
		fmt.Printf("Not promoted: %s.\n", result.Reason)
		printEligibility(elig)
		return nil
	},
}

func printEligibility(elig *progression.Eligibility) {
	if elig.CurrentLevel.IsTerminal() {
		fmt.Printf("%s is the highest level.\n", elig.CurrentLevel.DisplayName())
		return
	}

	fmt.Printf("Requirements for %s -> %s (confidence %.2f):\n",
		elig.CurrentLevel.DisplayName(), elig.NextLevel.DisplayName(), elig.Confidence)
	for _, c := range elig.Evaluation.Competencies {
		mark := "ok"
		if !c.Met {
			mark = "needs work"
		}
		fmt.Printf("  %-28s %3d/%d attempts  %3.0f%% of %.0f%% required  %s\n",
			c.Key, c.Attempts, c.MinAttempts, c.Accuracy*100, c.MinAccuracy*100, mark)
	}
	fmt.Printf("  overall accuracy %.0f%% (met: %v), total attempts %d (met: %v)\n",
		elig.Evaluation.OverallAccuracy*100, elig.Evaluation.OverallAccuracyMet,
		elig.Evaluation.TotalAttempts, elig.Evaluation.TotalAttemptsMet)
}

func init() {
	promoteCmd.Flags().Bool("check", false, "Only report eligibility, never promote")
}

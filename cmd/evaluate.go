package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate how well your level fits your recent results",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		user := userID(cmd)
		declared := a.Profiles.Get(user).Level
		report, err := a.Evaluator.Evaluate(cmd.Context(), user, declared)
		if err != nil {
			return err
		}

		if jsonOutput(cmd) {
			return printJSON(report)
		}

		fmt.Printf("Declared level:  %s\n", report.DeclaredLevel.DisplayName())
		fmt.Printf("Effective level: %s\n", report.EffectiveLevel.DisplayName())
		fmt.Printf("Score:           %.2f    Confidence: %.2f    Stability: %.2f\n",
			report.Score, report.Confidence, report.Stability)
		fmt.Println()
		fmt.Println("Factors:")
		fmt.Printf("  accuracy      %.2f\n", report.Factors.Accuracy)
		fmt.Printf("  consistency   %.2f\n", report.Factors.Consistency)
		fmt.Printf("  response time %.2f\n", report.Factors.ResponseTime)
		fmt.Printf("  coverage      %.2f\n", report.Factors.Coverage)
		fmt.Printf("  confidence    %.2f\n", report.Factors.Confidence)
		if len(report.Recommendations) > 0 {
			fmt.Println()
			for _, r := range report.Recommendations {
				fmt.Println("-", r)
			}
		}
		return nil
	},
}

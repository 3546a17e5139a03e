package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/conjugo/internal/recommend"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Get practice recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		limit, _ := cmd.Flags().GetInt("limit")
		set, err := a.Recommend.Generate(cmd.Context(), userID(cmd), recommend.Options{Limit: limit})
		if err != nil {
			return err
		}

		if jsonOutput(cmd) {
			return printJSON(set)
		}

		if len(set.Recommendations) == 0 {
			fmt.Println("Nothing new to recommend right now. Keep practicing.")
			return nil
		}
		for i, r := range set.Recommendations {
			fmt.Printf("%d. [%s] %s\n", i+1, r.Priority, r.Title)
			fmt.Printf("   %s\n", r.Description)
			for _, action := range r.Actions {
				fmt.Printf("   -> %s\n", action)
			}
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().Int("limit", 0, "Maximum number of recommendations (up to 8)")
}

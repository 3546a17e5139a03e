package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/conjugo/internal/level"
	"github.com/abhisek/conjugo/internal/profile"
)

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Show or set your CEFR level",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		p := a.Profiles.Get(userID(cmd))
		if jsonOutput(cmd) {
			return printJSON(map[string]any{
				"level":            p.Level.String(),
				"progress_percent": p.ProgressPercent,
				"manual_override":  p.ManualOverride,
			})
		}
		fmt.Printf("Level: %s (%.0f%% progress)\n", p.Level.DisplayName(), p.ProgressPercent)
		if p.ManualOverride {
			fmt.Println("Set manually; automatic promotion is paused.")
		}
		return nil
	},
}

var levelSetCmd = &cobra.Command{
	Use:   "set <level>",
	Short: "Set your level manually (pauses automatic promotion)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := level.Parse(args[0])
		if err != nil {
			return err
		}

		a, cleanup, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		user := userID(cmd)
		if err := a.Profiles.SetLevel(cmd.Context(), user, lvl, profile.ReasonManual); err != nil {
			return err
		}
		a.InvalidateCaches()
		fmt.Printf("Level set to %s.\n", lvl.DisplayName())
		return nil
	},
}

func init() {
	levelCmd.AddCommand(levelSetCmd)
}

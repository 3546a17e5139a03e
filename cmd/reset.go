package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/conjugo/internal/level"
	"github.com/abhisek/conjugo/internal/profile"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset your level back to A1",
	Long:  "Moves the profile back to A1 with the reset reason and clears any manual override. Competency history is kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm("Reset your level to A1?") {
			fmt.Println("Cancelled.")
			return nil
		}

		a, cleanup, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		user := userID(cmd)
		if err := a.Profiles.SetLevel(cmd.Context(), user, level.A1, profile.ReasonReset); err != nil {
			return err
		}
		a.InvalidateCaches()
		fmt.Println("Level reset to A1.")
		return nil
	},
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	in := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return in == "y" || in == "yes"
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}

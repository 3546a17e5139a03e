package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/conjugo/internal/app"
	"github.com/abhisek/conjugo/internal/logging"
	"github.com/abhisek/conjugo/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "conjugo",
	Short: "Spanish verb conjugation trainer",
	Long:  "Conjugo — terminal trainer that tracks Spanish conjugation skill per mood and tense, places you on the CEFR scale, and tells you what to practice next.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CONJUGO_DB env var)")
	rootCmd.PersistentFlags().String("user", "default", "Learner profile to operate on")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("json", false, "Print machine-readable JSON instead of text")

	rootCmd.AddCommand(placementCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(levelCmd)
	rootCmd.AddCommand(promoteCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CONJUGO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openApp builds the full application stack for a command invocation. The
// returned cleanup saves a snapshot and closes the store.
func openApp(cmd *cobra.Command) (*app.App, func(), error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	log, err := logging.New(verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("init logging: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}

	a, err := app.New(cmd.Context(), dbPath, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := a.Close(cmd.Context()); err != nil {
			fmt.Fprintln(os.Stderr, "warning:", err)
		}
		_ = log.Sync()
	}
	return a, cleanup, nil
}

func userID(cmd *cobra.Command) string {
	u, _ := cmd.Flags().GetString("user")
	if u == "" {
		u = "default"
	}
	return u
}

func jsonOutput(cmd *cobra.Command) bool {
	j, _ := cmd.Flags().GetBool("json")
	return j
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

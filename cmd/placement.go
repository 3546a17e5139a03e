package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/conjugo/internal/placement"
)

var placementCmd = &cobra.Command{
	Use:   "placement",
	Short: "Take the adaptive placement test",
	Long:  "Runs the adaptive placement assessment on stdin/stdout and stores the determined level and baseline on completion.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := cmd.Context()
		user := userID(cmd)

		_, q, err := a.Placement.Start(ctx, user)
		if err != nil {
			return fmt.Errorf("start placement: %w", err)
		}

		fmt.Println("Placement test. Answer with a, b, c or d; q quits.")
		fmt.Println()

		scanner := bufio.NewScanner(os.Stdin)
		number := 1
		for {
			printQuestion(number, q)

			choice, ok := readChoice(scanner, q)
			if !ok {
				a.Placement.Abort(ctx, user)
				fmt.Println("Placement aborted.")
				return nil
			}

			step, err := a.Placement.Submit(ctx, user, q.ID, choice)
			if err != nil {
				return fmt.Errorf("submit answer: %w", err)
			}

			if choice == q.Correct {
				fmt.Println("Correct.")
			} else {
				fmt.Printf("Not quite: %s. %s\n", q.Correct, q.Explanation)
			}
			fmt.Println()

			if step.Completed {
				printPlacementResult(cmd, step)
				return nil
			}
			q = step.NextQuestion
			number++
		}
	},
}

func printQuestion(number int, q *placement.Question) {
	fmt.Printf("%d. %s\n", number, q.Prompt)
	labels := [4]string{"a", "b", "c", "d"}
	for i, opt := range q.Options {
		fmt.Printf("   %s) %s\n", labels[i], opt)
	}
}

// readChoice maps an a-d answer to the option text. It re-prompts on
// anything else and reports false on q or EOF.
func readChoice(scanner *bufio.Scanner, q *placement.Question) (string, bool) {
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return "", false
		}
		in := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch in {
		case "q", "quit":
			return "", false
		case "a", "b", "c", "d":
			return q.Options[in[0]-'a'], true
		}
		fmt.Println("Please answer a, b, c or d.")
	}
}

func printPlacementResult(cmd *cobra.Command, step *placement.Step) {
	if jsonOutput(cmd) {
		_ = printJSON(map[string]any{
			"determined_level": step.DeterminedLevel.String(),
			"questions":        len(step.Results),
			"baseline":         step.Baseline,
		})
		return
	}

	correct := 0
	for _, r := range step.Results {
		if r.Correct {
			correct++
		}
	}
	fmt.Printf("Done. You answered %d of %d correctly.\n", correct, len(step.Results))
	fmt.Printf("Your level: %s\n", step.DeterminedLevel.DisplayName())
}

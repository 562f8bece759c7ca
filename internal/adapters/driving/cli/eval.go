package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var evalJSON bool

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Run the built-in evaluation queries",
	Long: `Runs a small set of canned questions through the full pipeline and
grades each answer by expected-keyword presence. Useful as a smoke check
after re-indexing or changing the completion backend.`,
	Args: cobra.NoArgs,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().BoolVar(&evalJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, _ []string) error {
	if evalService == nil {
		return errors.New("eval service not configured")
	}

	report, err := evalService.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("eval run failed: %w", err)
	}

	if evalJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Eval run %s\n\n", report.RunID)
	for _, result := range report.Results {
		cmd.Printf("  [%s] %s\n", result.Label, result.Question)
	}
	cmd.Println()
	cmd.Printf("Summary: %d looks correct, %d partially correct, %d wrong\n",
		report.Summary.LooksCorrect, report.Summary.PartiallyCorrect, report.Summary.Wrong)
	return nil
}

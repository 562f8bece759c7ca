package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the page index from the corpus directory",
	Long: `Extracts per-page text from every recognized document in the corpus
directory and replaces the persisted index. Unreadable files are skipped
with a warning.`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	stats, err := indexService.Build(cmd.Context())
	if err != nil {
		return fmt.Errorf("index build failed: %w", err)
	}

	cmd.Printf("Indexed %d pages from %d files", stats.Pages, stats.Files)
	if stats.Skipped > 0 {
		cmd.Printf(" (%d files skipped)", stats.Skipped)
	}
	cmd.Println()
	return nil
}

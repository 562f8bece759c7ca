package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var scheduleJSON bool

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Extract a door schedule from the indexed documents",
	Long: `Retrieves door-related pages and asks the configured completion
backend to extract a normalized door schedule. Prints a table by
default, or JSON with --json.`,
	Args: cobra.NoArgs,
	RunE: runSchedule,
}

func init() {
	scheduleCmd.Flags().BoolVar(&scheduleJSON, "json", false, "output the schedule as JSON")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, _ []string) error {
	if scheduleService == nil {
		return errors.New("schedule service not configured")
	}

	schedule, err := scheduleService.ExtractSchedule(cmd.Context(), "Generate a door schedule")
	if err != nil {
		return fmt.Errorf("schedule extraction failed: %w", err)
	}

	if scheduleJSON {
		data, err := json.MarshalIndent(schedule, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal schedule: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(schedule.Doors) == 0 {
		cmd.Println("No doors found in the indexed documents.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MARK\tLOCATION\tWIDTH\tHEIGHT\tFIRE RATING\tMATERIAL")
	for _, door := range schedule.Doors {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			door.Mark,
			door.Location,
			formatMM(door.WidthMM),
			formatMM(door.HeightMM),
			formatStr(door.FireRating),
			formatStr(door.Material),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	printSources(cmd, schedule.Sources)
	return nil
}

func formatMM(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.0f mm", *v)
}

func formatStr(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}

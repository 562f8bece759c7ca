package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/planqa-cli/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change configuration values stored in the TOML config file.

Common keys:
  corpus_dir               directory holding the project documents
  index_path               path of the persisted index snapshot
  top_k                    number of pages retrieved per question
  http.addr                listen address for planqa serve
  llm.backend              completion backend (ollama or openai)
  llm.model                model identifier
  llm.base_url             backend API base URL
  llm.requests_per_minute  throttle on completion calls (0 = off)`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Printf("Config file: %s\n\n", configStore.Path())
	for _, key := range []string{
		configfile.KeyCorpusDir,
		configfile.KeyIndexPath,
		configfile.KeyTopK,
		configfile.KeyHTTPAddr,
		configfile.KeyLLMBackend,
		configfile.KeyLLMModel,
		configfile.KeyLLMBaseURL,
		configfile.KeyLLMRequestsPerMin,
	} {
		val, ok := configStore.Get(key)
		if !ok {
			cmd.Printf("  %s = (default)\n", key)
			continue
		}
		cmd.Printf("  %s = %v\n", key, val)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	val, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("key %q is not set", args[0])
	}
	cmd.Printf("%v\n", val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	if err := configStore.Set(args[0], coerceValue(args[1])); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}

// coerceValue stores numeric and boolean literals with their natural
// TOML type, so top_k set from the CLI reads back as an integer.
func coerceValue(raw string) any {
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if raw == "true" || raw == "false" {
		return raw == "true"
	}
	return raw
}

// Package cli provides the cobra command-line interface for PlanQA.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/planqa-cli/internal/adapters/driven/config/file"
	indexfile "github.com/custodia-labs/planqa-cli/internal/adapters/driven/index/file"
	"github.com/custodia-labs/planqa-cli/internal/adapters/driven/llm"
	"github.com/custodia-labs/planqa-cli/internal/core/domain"
	"github.com/custodia-labs/planqa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/planqa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/planqa-cli/internal/core/services"
	"github.com/custodia-labs/planqa-cli/internal/loaders"
	"github.com/custodia-labs/planqa-cli/internal/logger"
)

// version is the CLI version, printed by the version command.
const version = "0.1.0"

// DefaultCorpusDir is used when no corpus directory is configured.
const DefaultCorpusDir = "docs"

// Services used by the commands. Populated by setupServices on first
// run; tests inject mocks directly.
var (
	configStore     driven.ConfigStore
	loaderRegistry  driven.LoaderRegistry
	indexService    driving.IndexService
	answerService   driving.AnswerService
	scheduleService driving.ScheduleService
	chatService     driving.ChatService
	evalService     driving.EvalService
	llmService      driven.CompletionService
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "planqa",
	Short: "Ask questions about construction project documents",
	Long: `PlanQA indexes a folder of construction documents (PDF drawings and
specifications) page by page and answers natural-language questions about
them, grounding every answer on retrieved pages and citing the file and
page it came from. A structured mode extracts a normalized door schedule.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		return setupServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose pipeline logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupServices wires the real adapters behind the driving ports.
// Already-populated services are left alone, so tests can inject mocks
// before running a command.
func setupServices() error {
	if chatService != nil {
		return nil
	}

	var err error
	if configStore == nil {
		configStore, err = configfile.NewConfigStore("")
		if err != nil {
			return fmt.Errorf("opening config: %w", err)
		}
	}

	if loaderRegistry == nil {
		loaderRegistry = loaders.Default()
	}

	corpusDir := configStore.GetString(configfile.KeyCorpusDir)
	if corpusDir == "" {
		corpusDir = DefaultCorpusDir
	}

	indexPath := configStore.GetString(configfile.KeyIndexPath)
	if indexPath == "" {
		indexPath = filepath.Join(filepath.Dir(configStore.Path()), indexfile.DefaultFileName)
	}

	store := indexfile.NewSnapshotStore(indexPath)
	idx := services.NewIndexService(corpusDir, loaderRegistry, store)
	indexService = idx

	if llmService == nil {
		llmService, err = llm.Create(domain.LLMSettings{
			Backend:           domain.LLMBackend(configStore.GetString(configfile.KeyLLMBackend)),
			Model:             configStore.GetString(configfile.KeyLLMModel),
			BaseURL:           configStore.GetString(configfile.KeyLLMBaseURL),
			APIKey:            os.Getenv("OPENAI_API_KEY"),
			RequestsPerMinute: configStore.GetInt(configfile.KeyLLMRequestsPerMin),
		})
		if err != nil {
			return fmt.Errorf("creating completion service: %w", err)
		}
	}

	topK := configStore.GetInt(configfile.KeyTopK)
	retriever := services.NewRetriever(idx)
	answerService = services.NewAnswerService(idx, retriever, llmService, topK)
	scheduleService = services.NewScheduleService(idx, retriever, llmService, topK)
	chatService = services.NewChatService(answerService, scheduleService)
	evalService = services.NewEvalService(chatService)

	return nil
}

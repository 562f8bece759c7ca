package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	configfile "github.com/custodia-labs/planqa-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/planqa-cli/internal/adapters/driven/watch"
	"github.com/custodia-labs/planqa-cli/internal/adapters/driving/httpapi"
	"github.com/custodia-labs/planqa-cli/internal/core/domain"
	"github.com/custodia-labs/planqa-cli/internal/logger"
)

var (
	serveAddr  string
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the question answering API over HTTP",
	Long: `Starts an HTTP server exposing /health, /chat and /eval for browser
frontends. The index is loaded from the persisted snapshot, or built
from the corpus directory if none exists.

With --watch, the corpus directory is watched and the index rebuilt
automatically when documents change.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default :8000)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "rebuild the index when corpus files change")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if chatService == nil || evalService == nil || indexService == nil {
		return errors.New("services not configured")
	}

	ctx := cmd.Context()

	// Make an index available before accepting requests.
	if err := indexService.Ensure(ctx); err != nil {
		if !errors.Is(err, domain.ErrIndexMissing) {
			return fmt.Errorf("preparing index: %w", err)
		}
		logger.Warn("no index available yet, serving empty results until one is built")
	}

	addr := serveAddr
	if addr == "" && configStore != nil {
		addr = configStore.GetString(configfile.KeyHTTPAddr)
	}

	group, ctx := errgroup.WithContext(ctx)

	server := httpapi.NewServer(addr, chatService, evalService)
	group.Go(func() error {
		return server.Run(ctx)
	})

	if serveWatch {
		corpusDir := DefaultCorpusDir
		if configStore != nil && configStore.GetString(configfile.KeyCorpusDir) != "" {
			corpusDir = configStore.GetString(configfile.KeyCorpusDir)
		}
		watcher := watch.New(corpusDir, loaderRegistry.Recognized, func(ctx context.Context) {
			if _, err := indexService.Build(ctx); err != nil {
				logger.Warn("watch rebuild failed: %v", err)
			}
		})
		group.Go(func() error {
			return watcher.Run(ctx)
		})
	}

	return group.Wait()
}

// Package cli provides the cobra command tree for tatt.
package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/attable-dev/tatt-cli/internal/adapters/driven/analytics"
	"github.com/attable-dev/tatt-cli/internal/adapters/driven/api"
	configfile "github.com/attable-dev/tatt-cli/internal/adapters/driven/config/file"
	"github.com/attable-dev/tatt-cli/internal/adapters/driven/nav"
	"github.com/attable-dev/tatt-cli/internal/adapters/driven/storage/sqlite"
	"github.com/attable-dev/tatt-cli/internal/core/domain"
	"github.com/attable-dev/tatt-cli/internal/core/ports/driven"
	"github.com/attable-dev/tatt-cli/internal/core/ports/driving"
	"github.com/attable-dev/tatt-cli/internal/core/services"
	"github.com/attable-dev/tatt-cli/internal/humanize"
	"github.com/attable-dev/tatt-cli/internal/logger"
)

// version is the tatt release version.
const version = "0.3.0"

var (
	flagVerbose   bool
	flagConfigDir string

	configStore driven.ConfigStore

	// Composition root state, built lazily by ensureSession.
	sessionService driving.SessionService
	navigator      *nav.History
	historyStore   driven.HistoryStore
	formatter      = humanize.New()
)

var rootCmd = &cobra.Command{
	Use:   "tatt",
	Short: "Search the table-top transcript archive",
	Long: `tatt searches the transcript archive of the tabletop podcast
from the command line, with the same phrase and advanced query kinds,
season filters and highlighted excerpts as the website.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)

		store, err := configfile.NewConfigStore(flagConfigDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		configStore = store
		logger.Debug("Config: %s", store.Path())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "config directory (default ~/.tatt)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ensureSession builds the search session and its collaborators.
// Called by commands that actually talk to the service.
func ensureSession() error {
	if sessionService != nil {
		return nil
	}

	store, err := sqlite.NewStore(configStore.GetString("data.dir"))
	if err != nil {
		// History is a convenience; searching works without it.
		logger.Warn("History store unavailable: %v", err)
	} else {
		historyStore = store
	}

	// Start where the last run left off, like a browser reopening its
	// last address.
	initial := domain.Location{Kind: domain.QueryKindPhrase}
	if historyStore != nil {
		if entries, err := historyStore.Recent(context.Background(), 1); err == nil && len(entries) > 0 {
			initial = entries[0].Location
		}
	}

	navigator = nav.NewHistory(initial, historyStore)

	client := api.NewClient(configStore.GetString("service.url"), http.DefaultClient)

	opts := []services.Option{}
	if size := configStore.GetInt("service.page_size"); size > 0 {
		opts = append(opts, services.WithPageSize(size))
	}
	if endpoint := configStore.GetString("analytics.url"); endpoint != "" {
		opts = append(opts, services.WithAnalytics(analytics.NewBeacon(endpoint, http.DefaultClient)))
	}

	sessionService = services.NewSessionService(client, navigator, opts...)
	return nil
}

// closeStores releases any open resources after a command finishes.
func closeStores() {
	if historyStore != nil {
		if err := historyStore.Close(); err != nil {
			logger.Warn("Closing history store: %v", err)
		}
	}
}

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/attable-dev/tatt-cli/internal/core/domain"
)

var (
	searchKind     string
	searchSeasons  []string
	searchPages    int
	searchPageSize int
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search episode transcripts",
	Long: `Searches the transcript archive and prints matching episodes with
their highlighted excerpts. Matched text is wrapped in *asterisks*.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchKind, "kind", "k", "phrase", "query kind: phrase or advanced")
	searchCmd.Flags().StringSliceVarP(&searchSeasons, "seasons", "s", nil, "season slugs to filter by (default all)")
	searchCmd.Flags().IntVarP(&searchPages, "pages", "p", 1, "number of result pages to fetch")
	searchCmd.Flags().IntVar(&searchPageSize, "page-size", 0, "results per page (server default 50)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	kind, err := domain.ParseQueryKind(searchKind)
	if err != nil {
		return err
	}
	seasons, err := domain.ParseSeasons(searchSeasons)
	if err != nil {
		return fmt.Errorf("%w (known seasons: %s)", err, strings.Join(catalogueSlugs(), ", "))
	}

	if err := ensureSession(); err != nil {
		return err
	}
	defer closeStores()

	sessionService.SetText(args[0])
	sessionService.SetKind(kind)
	sessionService.SetSeasons(seasons)
	if searchPageSize > 0 {
		// Flag wins over the configured page size.
		sessionService.SetPageSize(searchPageSize)
	}

	ctx := cmd.Context()
	results := sessionService.RunSearch(ctx)
	// Every call result is terminal: a failed continuation is not
	// retried for the remaining pages.
	for page := 1; page < searchPages && results.CanLoadMore() && results.Err == ""; page++ {
		results = sessionService.LoadMore(ctx)
	}

	output := outputTable
	if searchJSON {
		output = outputJSON
	}

	if results.Err != "" {
		// A failed continuation keeps the pages fetched before it;
		// show them before reporting the failure.
		if len(results.Episodes) > 0 {
			if err := output(cmd, results); err != nil {
				return err
			}
		}
		return errors.New(results.Err)
	}
	return output(cmd, results)
}

func outputJSON(cmd *cobra.Command, results domain.ResultSet) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputTable(cmd *cobra.Command, results domain.ResultSet) error {
	if len(results.Episodes) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	for i, ep := range results.Episodes {
		cmd.Printf("  [%d] %s — %s\n", i+1, ep.Title, ep.Season.Title())
		for _, group := range ep.Highlights {
			cmd.Printf("      %s\n", renderGroup(group))
		}
		cmd.Println()
	}

	cmd.Printf("%d episodes · %d highlights · took %s\n",
		len(results.Episodes),
		results.TotalHighlights(),
		formatter.Duration(results.QueryTime),
	)
	if results.CanLoadMore() {
		cmd.Println("More pages available; rerun with --pages to fetch them.")
	}
	return nil
}

// renderGroup flattens one excerpt, wrapping matched spans in asterisks.
func renderGroup(group domain.HighlightGroup) string {
	var b strings.Builder
	for _, span := range group {
		if span.Highlighted {
			b.WriteString("*")
			b.WriteString(span.Text)
			b.WriteString("*")
		} else {
			b.WriteString(span.Text)
		}
	}
	return b.String()
}

func catalogueSlugs() []string {
	catalogue := domain.SeasonCatalogue()
	slugs := make([]string, len(catalogue))
	for i, s := range catalogue {
		slugs[i] = string(s)
	}
	return slugs
}

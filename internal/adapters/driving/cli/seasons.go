package cli

import (
	"github.com/spf13/cobra"

	"github.com/attable-dev/tatt-cli/internal/core/domain"
)

var seasonsCmd = &cobra.Command{
	Use:   "seasons",
	Short: "List the season slugs accepted by --seasons",
	Run: func(cmd *cobra.Command, _ []string) {
		for _, s := range domain.SeasonCatalogue() {
			cmd.Printf("%-18s %s\n", string(s), s.Title())
		}
	},
}

func init() {
	rootCmd.AddCommand(seasonsCmd)
}

package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"artwork-search-service/internal/adapters/primary/terminal"
	"artwork-search-service/internal/core/services"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search public-domain artworks",
	Long: `Search queries the catalog and prints one entry per artwork. With no
arguments it lists the same unfiltered selection the web page shows on load.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newSearchService(cfg)

		var result *services.SearchResult
		if len(args) == 0 {
			result = svc.InitialLoad(cmd.Context())
		} else {
			result = svc.Submit(cmd.Context(), strings.Join(args, " "))
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		terminal.RenderSearch(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}

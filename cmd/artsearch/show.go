package main

import (
	"encoding/json"
	"strconv"

	"github.com/spf13/cobra"

	"artwork-search-service/internal/adapters/primary/terminal"
	"artwork-search-service/internal/core/domain"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show full details of one artwork",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id <= 0 {
			return domain.ErrInvalidArtworkID
		}

		content, err := newSearchService(cfg).FetchDetail(cmd.Context(), id)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(content)
		}

		terminal.RenderModal(cmd.OutOrStdout(), content)
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("json", false, "output the artwork as JSON")

	rootCmd.AddCommand(showCmd)
}

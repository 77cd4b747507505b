// Command artsearch searches the public-domain collection of the Art
// Institute of Chicago, either as a web server or from the terminal.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"artwork-search-service/internal/adapters/secondary/artic"
	"artwork-search-service/internal/config"
	"artwork-search-service/internal/core/domain"
	"artwork-search-service/internal/core/services"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "artsearch",
	Short:         "Search public-domain artworks from the Art Institute of Chicago",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configFile, _ := cmd.Flags().GetString("config")

		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded

		initLogger(cfg)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "optional YAML config file (environment variables take precedence)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newSearchService(cfg *config.Config) *services.SearchService {
	catalog := artic.NewCatalogClient(&cfg.Catalog)
	images := domain.ImageResolver{
		BaseURL:        cfg.Catalog.ImageURL,
		PlaceholderURL: cfg.Catalog.PlaceholderURL,
	}
	return services.NewSearchService(catalog, images, cfg.Catalog.PageSize)
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

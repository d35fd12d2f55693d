package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/localmind/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "localmind",
	Short: "Local business intelligence API and analysis tools",
	Long:  "Queries the Foursquare Places API, cleans the results, and runs competitor, hours, and market-opportunity analysis. Serves a JSON API or runs one-shot analyses from the command line.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

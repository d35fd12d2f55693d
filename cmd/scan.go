package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/localmind/internal/model"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a market for gaps and opportunities",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		location, _ := cmd.Flags().GetString("location")
		radius, _ := cmd.Flags().GetFloat64("radius")
		focus, _ := cmd.Flags().GetString("focus")

		env, err := initAnalysis(ctx, "analyze")
		if err != nil {
			return err
		}
		defer env.Close()

		req := model.AnalyzeRequest{Location: location, FocusIndustry: focus}
		if radius > 0 {
			req.Radius = &radius
		}

		scan, err := env.Service.ScanMarket(ctx, req)
		if err != nil {
			return eris.Wrap(err, "scan market")
		}
		return printJSON(scan)
	},
}

func init() {
	scanCmd.Flags().String("location", "", "location to scan (required)")
	scanCmd.Flags().Float64("radius", 0, "search radius in meters")
	scanCmd.Flags().String("focus", "", "filter opportunities to one industry")
	scanCmd.MarkFlagRequired("location")
	rootCmd.AddCommand(scanCmd)
}

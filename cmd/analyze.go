package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/localmind/internal/analysis"
	"github.com/sells-group/localmind/internal/model"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze competitors near a location",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		location, _ := cmd.Flags().GetString("location")
		businessType, _ := cmd.Flags().GetString("type")
		radius, _ := cmd.Flags().GetFloat64("radius")
		asCSV, _ := cmd.Flags().GetBool("csv")

		env, err := initAnalysis(ctx, "analyze")
		if err != nil {
			return err
		}
		defer env.Close()

		req := model.AnalyzeRequest{Location: location, BusinessType: businessType}
		if radius > 0 {
			req.Radius = &radius
		}

		report, err := env.Service.AnalyzeCompetitors(ctx, req)
		if err != nil {
			return eris.Wrap(err, "analyze competitors")
		}

		if asCSV {
			out, err := analysis.CompetitorsCSV(report.Competitors)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		}
		return printJSON(report)
	},
}

// printJSON writes indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return eris.Wrap(enc.Encode(v), "encode output")
}

func init() {
	analyzeCmd.Flags().String("location", "", "location to analyze (required)")
	analyzeCmd.Flags().String("type", "", "business type (required)")
	analyzeCmd.Flags().Float64("radius", 0, "search radius in meters")
	analyzeCmd.Flags().Bool("csv", false, "print competitors as CSV")
	analyzeCmd.MarkFlagRequired("location")
	analyzeCmd.MarkFlagRequired("type")
	rootCmd.AddCommand(analyzeCmd)
}

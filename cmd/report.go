package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/localmind/internal/model"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a comprehensive market report",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		location, _ := cmd.Flags().GetString("location")
		businessType, _ := cmd.Flags().GetString("type")

		env, err := initAnalysis(ctx, "analyze")
		if err != nil {
			return err
		}
		defer env.Close()

		report, err := env.Service.GenerateReport(ctx, model.AnalyzeRequest{
			Location:     location,
			BusinessType: businessType,
		})
		if err != nil {
			return eris.Wrap(err, "generate report")
		}
		return printJSON(report)
	},
}

func init() {
	reportCmd.Flags().String("location", "", "location to report on (required)")
	reportCmd.Flags().String("type", "", "business type (required)")
	reportCmd.MarkFlagRequired("location")
	reportCmd.MarkFlagRequired("type")
	rootCmd.AddCommand(reportCmd)
}

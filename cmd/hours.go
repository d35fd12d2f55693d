package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/localmind/internal/model"
)

var hoursCmd = &cobra.Command{
	Use:   "hours",
	Short: "Recommend operating hours for a business type",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		location, _ := cmd.Flags().GetString("location")
		businessType, _ := cmd.Flags().GetString("type")
		current, _ := cmd.Flags().GetString("current")

		env, err := initAnalysis(ctx, "analyze")
		if err != nil {
			return err
		}
		defer env.Close()

		report, err := env.Service.OptimizeHours(ctx, model.AnalyzeRequest{
			Location:     location,
			BusinessType: businessType,
			CurrentHours: current,
		})
		if err != nil {
			return eris.Wrap(err, "optimize hours")
		}
		return printJSON(report)
	},
}

func init() {
	hoursCmd.Flags().String("location", "", "location to survey (required)")
	hoursCmd.Flags().String("type", "", "business type (required)")
	hoursCmd.Flags().String("current", "", "current operating hours")
	hoursCmd.MarkFlagRequired("location")
	hoursCmd.MarkFlagRequired("type")
	rootCmd.AddCommand(hoursCmd)
}

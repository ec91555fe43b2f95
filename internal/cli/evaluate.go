package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newEvaluateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate",
		Short: "Trigger a full evaluation cycle for the tenant",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			report, err := apiClient.Evaluations().Run(ctx)
			if err != nil {
				return fmt.Errorf("evaluation failed: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(report)
			}

			fmt.Printf("Rules evaluated: %d\n", report.RulesEvaluated)
			fmt.Printf("Events created:  %d\n", report.EventsCreated)
			fmt.Println("Metrics:")
			for name, value := range report.Metrics {
				fmt.Printf("  %-18s %s\n", name, formatThreshold(value))
			}
			return nil
		},
	}
}

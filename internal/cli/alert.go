package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/telewatch/telewatch/pkg/client"
)

func newAlertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alert",
		Short: "Manage alert rules",
	}

	cmd.AddCommand(newAlertListCmd())
	cmd.AddCommand(newAlertCreateCmd())
	cmd.AddCommand(newAlertUpdateCmd())
	cmd.AddCommand(newAlertEnableCmd())
	cmd.AddCommand(newAlertDisableCmd())
	cmd.AddCommand(newAlertDeleteCmd())

	return cmd
}

func newAlertListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List alert rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			rules, err := apiClient.Alerts().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list alert rules: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(rules)
			}

			t := NewTable("ID", "NAME", "CONDITION", "COOLDOWN", "STATE")
			for _, r := range rules {
				cooldown := "default"
				if r.CooldownSeconds > 0 {
					cooldown = fmt.Sprintf("%ds", r.CooldownSeconds)
				}
				t.AddRow(
					truncate(r.ID, 12),
					truncate(r.Name, 30),
					fmt.Sprintf("%s %s %s", r.Metric, r.Operator, formatThreshold(r.Threshold)),
					cooldown,
					formatEnabled(r.Enabled),
				)
			}
			t.Render()
			return nil
		},
	}
}

func newAlertCreateCmd() *cobra.Command {
	var (
		name     string
		metric   string
		operator string
		thresh   float64
		cooldown int
		disabled bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an alert rule",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			enabled := !disabled
			rule, err := apiClient.Alerts().Create(ctx, client.CreateAlertRuleRequest{
				Name:            name,
				Metric:          metric,
				Operator:        operator,
				Threshold:       thresh,
				CooldownSeconds: cooldown,
				Enabled:         &enabled,
			})
			if err != nil {
				return fmt.Errorf("failed to create alert rule: %w", err)
			}

			fmt.Printf("Alert rule %s created\n", rule.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "rule name")
	cmd.Flags().StringVar(&metric, "metric", "", "metric: telemetry_last_5m, telemetry_last_1h or ingest_per_min")
	cmd.Flags().StringVar(&operator, "operator", "", "operator: gt, gte, lt, lte or eq")
	cmd.Flags().Float64Var(&thresh, "threshold", 0, "threshold value")
	cmd.Flags().IntVar(&cooldown, "cooldown", 0, "suppression window in seconds (0 uses the server default)")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "create the rule disabled")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("metric")
	_ = cmd.MarkFlagRequired("operator")

	return cmd
}

func newAlertUpdateCmd() *cobra.Command {
	var (
		name     string
		metric   string
		operator string
		thresh   float64
		cooldown int
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an alert rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req := client.UpdateAlertRuleRequest{}
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("metric") {
				req.Metric = &metric
			}
			if cmd.Flags().Changed("operator") {
				req.Operator = &operator
			}
			if cmd.Flags().Changed("threshold") {
				req.Threshold = &thresh
			}
			if cmd.Flags().Changed("cooldown") {
				req.CooldownSeconds = &cooldown
			}

			rule, err := apiClient.Alerts().Update(ctx, args[0], req)
			if err != nil {
				return fmt.Errorf("failed to update alert rule: %w", err)
			}

			fmt.Printf("Alert rule %s updated\n", rule.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "rule name")
	cmd.Flags().StringVar(&metric, "metric", "", "metric name")
	cmd.Flags().StringVar(&operator, "operator", "", "comparison operator")
	cmd.Flags().Float64Var(&thresh, "threshold", 0, "threshold value")
	cmd.Flags().IntVar(&cooldown, "cooldown", 0, "suppression window in seconds")

	return cmd
}

func newAlertEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enable <id>",
		Short: "Enable an alert rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := apiClient.Alerts().Enable(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to enable alert rule: %w", err)
			}
			fmt.Printf("Alert rule %s enabled\n", args[0])
			return nil
		},
	}
}

func newAlertDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disable <id>",
		Short: "Disable an alert rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := apiClient.Alerts().Disable(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to disable alert rule: %w", err)
			}
			fmt.Printf("Alert rule %s disabled\n", args[0])
			return nil
		},
	}
}

func newAlertDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an alert rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := apiClient.Alerts().Delete(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete alert rule: %w", err)
			}
			fmt.Printf("Alert rule %s deleted\n", args[0])
			return nil
		},
	}
}

func formatThreshold(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/telewatch/telewatch/pkg/client"
)

func newEventCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Inspect alert events",
	}

	cmd.AddCommand(newEventListCmd())

	return cmd
}

func newEventListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent alert events, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			events, err := apiClient.Events().List(ctx, &client.EventListOptions{Limit: limit})
			if err != nil {
				return fmt.Errorf("failed to list alert events: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(events)
			}

			t := NewTable("TRIGGERED", "ALERT", "MESSAGE")
			for _, e := range events {
				t.AddRow(
					e.TriggeredAt.Format("2006-01-02 15:04:05"),
					truncate(e.AlertID, 12),
					truncate(e.Message, 60),
				)
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "maximum number of events to return")

	return cmd
}

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/telewatch/telewatch/pkg/client"
)

func newSeedCmd() *cobra.Command {
	var (
		count    int
		deviceID string
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed telemetry readings through the ingest API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			for i := 0; i < count; i++ {
				_, err := apiClient.Telemetry().Ingest(ctx, client.IngestTelemetryRequest{
					DeviceID: deviceID,
					Payload:  fmt.Sprintf(`{"seq":%d}`, i),
				})
				if err != nil {
					return fmt.Errorf("failed to ingest reading %d: %w", i, err)
				}
				if interval > 0 && i < count-1 {
					time.Sleep(interval)
				}
			}

			fmt.Printf("Seeded %d telemetry readings\n", count)
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 10, "number of readings to ingest")
	cmd.Flags().StringVar(&deviceID, "device", "seed-device", "device ID to attach to readings")
	cmd.Flags().DurationVar(&interval, "interval", 0, "pause between readings")

	return cmd
}

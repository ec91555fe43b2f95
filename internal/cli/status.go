package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show server connectivity and readiness",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			fmt.Printf("Server: %s\n", viper.GetString("server_url"))

			health, err := apiClient.Health(ctx)
			if err != nil {
				return fmt.Errorf("server unreachable: %w", err)
			}
			fmt.Printf("Health: %s\n", health.Status)

			ready, err := apiClient.Ready(ctx)
			if err != nil {
				fmt.Println("Ready:  unavailable")
				return nil
			}
			fmt.Printf("Ready:  %s\n", ready.Status)
			return nil
		},
	}
}

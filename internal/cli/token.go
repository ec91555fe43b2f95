package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/telewatch/telewatch/internal/auth"
)

func newTokenCmd() *cobra.Command {
	var (
		secret   string
		tenantID string
		role     string
		ttl      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a tenant-scoped JWT for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := auth.Role(role)
			if !r.Valid() {
				return fmt.Errorf("invalid role %q (want owner, staff or viewer)", role)
			}

			token, err := auth.MintToken(tenantID, r, secret, ttl)
			if err != nil {
				return fmt.Errorf("failed to mint token: %w", err)
			}

			fmt.Println(token)
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "JWT signing secret (must match the server)")
	cmd.Flags().StringVar(&tenantID, "tenant", "", "tenant ID to scope the token to")
	cmd.Flags().StringVar(&role, "role", "viewer", "role: owner, staff or viewer")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("secret")
	_ = cmd.MarkFlagRequired("tenant")

	return cmd
}

package cli

import (
	"fmt"
	"time"

	"elearning/internal/domain"
	"elearning/internal/service"

	"github.com/spf13/cobra"
)

// NewTokenCmd signs a development bearer token with the configured secret.
func NewTokenCmd(load ConfigLoader) *cobra.Command {
	var (
		userID string
		role   string
		ttl    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a development bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			tokens, err := service.NewTokenService(cfg.JWT)
			if err != nil {
				return err
			}
			token, err := tokens.IssueToken(cmd.Context(), domain.Principal{UserID: userID, Role: domain.Role(role)}, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user ID carried by the token")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleStudent), "student or teacher")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

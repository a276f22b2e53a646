package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"lentoflow/internal/domain"
)

func newTokenCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage API tokens",
	}
	cmd.AddCommand(newTokenCreateCmd(app))
	return cmd
}

func newTokenCreateCmd(app *App) *cobra.Command {
	var username string
	var register bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Mint a bearer token for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			user, err := app.Users.GetByUsername(ctx, username)
			if err != nil {
				if !register {
					return fmt.Errorf("resolving user %q (use --register to create): %w", username, err)
				}
				now := app.Clock.Now().UTC()
				user = &domain.User{
					Username:          username,
					Email:             username + "@localhost",
					DailyEnergyBudget: domain.DefaultDailyEnergyBudget,
					MaxDailyTasks:     domain.DefaultMaxDailyTasks,
					CreatedAt:         now,
					UpdatedAt:         now,
				}
				if err := user.Validate(); err != nil {
					return err
				}
				if err := app.Users.Create(ctx, user); err != nil {
					return err
				}
			}

			token := uuid.NewString()
			if err := app.Tokens.Create(ctx, token, user.ID, app.Clock.Now()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "user", "", "username the token belongs to")
	cmd.Flags().BoolVar(&register, "register", false, "create the user if missing")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newUserCmd() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "User management commands",
	}

	userCmd.AddCommand(newUserGetCmd())
	userCmd.AddCommand(newUserListCmd())

	return userCmd
}

func newUserListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all registered users",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			users, err := app.Storage.ListUsers(ctx)
			if err != nil {
				return err
			}
			for _, user := range users {
				user.PasswordHash = ""
			}

			NewOutput(outputFormat).Print(users)
			return nil
		},
	}
}

func newUserGetCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Look up a registered user by email",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return fmt.Errorf("--email is required")
			}

			ctx := context.Background()
			app, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			user, err := app.Storage.GetUserByEmail(ctx, email)
			if err != nil {
				return err
			}

			// Never expose the password derivation
			user.PasswordHash = ""

			NewOutput(outputFormat).Print(user)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address of the user")

	return cmd
}

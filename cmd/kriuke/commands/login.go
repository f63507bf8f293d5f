package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/wichananm65/kriuke-snack/cmd/kriuke/output"
	"github.com/wichananm65/kriuke-snack/internal/storefront"
	"github.com/wichananm65/kriuke-snack/internal/user"
)

var credentials user.Credentials

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Open an admin session",
	Long: `Open an admin session. The session is kept in the store, so later
admin commands against the same store are allowed until logout.

Examples:
  kriuke login -u arjune -p kriuke123
  kriuke products rm p3
  kriuke logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, sf *storefront.App) error {
			admin, err := sf.Users.Login(ctx, credentials)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), admin)
			}
			output.Success("Masuk sebagai %s", admin.Username)
			return nil
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Close the admin session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, sf *storefront.App) error {
			if err := sf.Users.Logout(ctx); err != nil {
				return err
			}
			output.Success("Sesi admin ditutup.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd)
	loginCmd.Flags().StringVarP(&credentials.Username, "username", "u", "", "Admin username")
	loginCmd.Flags().StringVarP(&credentials.Password, "password", "p", "", "Admin password")
	loginCmd.MarkFlagRequired("username")
	loginCmd.MarkFlagRequired("password")
}

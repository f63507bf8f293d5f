package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/wichananm65/kriuke-snack/cmd/kriuke/tui"
	"github.com/wichananm65/kriuke-snack/internal/storefront"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse the storefront in an interactive terminal UI",
	Long: `Browse the catalog, open product details, edit the cart and copy share
links from the terminal.

Examples:
  kriuke shop
  kriuke shop --store memory           # Throwaway session on the seed catalog`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, sf *storefront.App) error {
			sf.Start(ctx)
			return tui.RunShop(ctx, sf)
		})
	},
}

func init() {
	rootCmd.AddCommand(shopCmd)
}

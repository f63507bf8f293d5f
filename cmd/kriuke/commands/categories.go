package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/wichananm65/kriuke-snack/cmd/kriuke/output"
	"github.com/wichananm65/kriuke-snack/internal/storefront"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List and manage categories",
	Long: `List and manage categories.

Deleting a category moves its products to "Lainnya", which itself cannot
be deleted.

Examples:
  kriuke categories
  kriuke categories add "Asin Gurih"
  kriuke categories rm Manis`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, sf *storefront.App) error {
			list := sf.Categories.List(ctx)
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), list)
			}
			output.Section("Kategori")
			for _, c := range list {
				output.Info("%s", c)
			}
			return nil
		})
	},
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return adminOnly(cmd, func(ctx context.Context, sf *storefront.App) error {
			if _, err := sf.Categories.Add(ctx, args[0]); err != nil {
				return err
			}
			output.Success("Kategori %s ditambahkan.", args[0])
			return nil
		})
	},
}

var categoryRemoveCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return adminOnly(cmd, func(ctx context.Context, sf *storefront.App) error {
			moved, err := sf.Categories.Delete(ctx, args[0])
			if err != nil {
				return err
			}
			notify(sf)
			if moved > 0 {
				output.Muted("%d produk dipindah ke Lainnya", moved)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	categoriesCmd.AddCommand(categoryAddCmd, categoryRemoveCmd)
}

package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/wichananm65/kriuke-snack/cmd/kriuke/output"
	"github.com/wichananm65/kriuke-snack/internal/product"
	"github.com/wichananm65/kriuke-snack/internal/storefront"
)

var likeCmd = &cobra.Command{
	Use:   "like <id>",
	Short: "Toggle a product in the favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, sf *storefront.App) error {
			liked, err := sf.Favorites.Toggle(ctx, args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), map[string]interface{}{"id": args[0], "liked": liked})
			}
			if liked {
				output.Success("%s disukai", args[0])
			} else {
				output.Info("%s dihapus dari favorit", args[0])
			}
			return nil
		})
	},
}

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List liked products",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, sf *storefront.App) error {
			liked := sf.Favorites.List(ctx)
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), product.NewViews(liked))
			}
			if len(liked) == 0 {
				output.Warning("Belum ada produk favorit.")
				return nil
			}
			output.Section("Favorit")
			for _, v := range product.NewViews(liked) {
				output.Info("%s  %s  %s", v.ID, v.Name, output.Price(v.PriceLabel, v.OriginalLabel, v.HasDiscount))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(likeCmd, favoritesCmd)
}

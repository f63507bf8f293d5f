package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wichananm65/kriuke-snack/cmd/kriuke/output"
	"github.com/wichananm65/kriuke-snack/internal/product"
	"github.com/wichananm65/kriuke-snack/internal/share"
	"github.com/wichananm65/kriuke-snack/internal/storefront"
)

var (
	// Products flags
	productCategory string
	productQuery    string
)

var productsCmd = &cobra.Command{
	Use:     "products",
	Aliases: []string{"ls"},
	Short:   "List the catalog",
	Long: `List the catalog, optionally narrowed by category and search text.

Examples:
  kriuke products                      # Every product
  kriuke products --category Pedas     # One category
  kriuke products --q pisang --json    # Search name and subtitle`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, sf *storefront.App) error {
			return runProducts(ctx, cmd, sf)
		})
	},
}

var productShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one product with its share and shop links",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, sf *storefront.App) error {
			return runProductShow(ctx, cmd, sf, args[0])
		})
	},
}

var productRemoveCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a product and drop it from cart and favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return adminOnly(cmd, func(ctx context.Context, sf *storefront.App) error {
			if err := sf.Admin.DeleteProduct(ctx, args[0]); err != nil {
				return err
			}
			notify(sf)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(productsCmd)
	productsCmd.AddCommand(productShowCmd, productRemoveCmd)

	productsCmd.Flags().StringVarP(&productCategory, "category", "c", "", "Only this category")
	productsCmd.Flags().StringVarP(&productQuery, "q", "q", "", "Case-insensitive search on name and subtitle")
}

func runProducts(ctx context.Context, cmd *cobra.Command, sf *storefront.App) error {
	res := sf.Products.List(ctx, product.Filter{Category: productCategory, Query: productQuery})
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), res)
	}

	switch res.Empty {
	case product.NoProducts:
		output.Warning("Belum ada produk.")
		return nil
	case product.NoMatches:
		output.Warning("Produk tidak ditemukan.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tRATING\tSOLD\t")
	_, _ = fmt.Fprintln(w, "--\t----\t--------\t-----\t------\t----\t")
	for _, v := range product.NewViews(res.Products) {
		_, _ = fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\t%d\t\n",
			v.ID,
			output.Heart(sf.Favorites.IsLiked(ctx, v.ID)),
			v.Name,
			v.Category,
			output.Price(v.PriceLabel, v.OriginalLabel, v.HasDiscount),
			product.RatingLabel(v.Rating),
			v.Sold,
		)
	}
	_ = w.Flush()
	output.Muted("%d produk", len(res.Products))
	return nil
}

func runProductShow(ctx context.Context, cmd *cobra.Command, sf *storefront.App, id string) error {
	v, err := sf.Products.Detail(ctx, id)
	if err != nil {
		return err
	}
	sheet, err := sf.Share.Sheet(ctx, id)
	if err != nil {
		return err
	}
	buyNow, err := sf.Share.BuyNow(ctx, id)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), struct {
			Product product.View `json:"product"`
			Share   share.Sheet  `json:"share"`
			BuyNow  string       `json:"buyNow"`
		}{v, sheet, buyNow})
	}

	output.Section(v.Name)
	output.Muted("%s · %s", v.Subtitle, v.Category)
	fmt.Fprintln(cmd.OutOrStdout(), output.Price(v.PriceLabel, v.OriginalLabel, v.HasDiscount))
	if v.HasDiscount {
		output.Info("Hemat %d%%", v.DiscountPercent)
	}
	output.Muted("Rating %s · %d terjual · %d ulasan", product.RatingLabel(v.Rating), v.Sold, v.ReviewCount)
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), v.Description)

	output.Section("Beli")
	output.Info("WhatsApp: %s", buyNow)
	for _, l := range v.Platforms {
		output.Info("%s: %s", l.Label, l.URL)
	}
	if len(v.Platforms) == 0 {
		output.Muted("Produk ini belum tersedia di e-commerce.")
	}

	output.Section("Bagikan")
	output.Info("Link: %s", sheet.ProductURL)
	for _, o := range sheet.Options {
		output.Muted("%s: %s", o.Name, o.URL)
	}
	return nil
}

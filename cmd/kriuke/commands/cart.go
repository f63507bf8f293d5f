package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wichananm65/kriuke-snack/cmd/kriuke/output"
	"github.com/wichananm65/kriuke-snack/internal/cart"
	"github.com/wichananm65/kriuke-snack/internal/product"
	"github.com/wichananm65/kriuke-snack/internal/storefront"
)

var qtyDelta int

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show and edit the shopping cart",
	Long: `Show and edit the shopping cart.

Examples:
  kriuke cart                          # Show the cart
  kriuke cart add p1                   # One more of p1
  kriuke cart qty p1 --by=-1           # One less of p1, dropped at zero
  kriuke cart rm p1                    # Drop p1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, sf *storefront.App) error {
			return printCart(cmd, sf.Cart.Get(ctx))
		})
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cartOp(cmd, func(ctx context.Context, sf *storefront.App) (cart.Summary, error) {
			return sf.Cart.Add(ctx, args[0])
		})
	},
}

var cartQtyCmd = &cobra.Command{
	Use:   "qty <id>",
	Short: "Change the quantity of a cart line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cartOp(cmd, func(ctx context.Context, sf *storefront.App) (cart.Summary, error) {
			return sf.Cart.ChangeQuantity(ctx, args[0], qtyDelta)
		})
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a product from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cartOp(cmd, func(ctx context.Context, sf *storefront.App) (cart.Summary, error) {
			return sf.Cart.Remove(ctx, args[0])
		})
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cartOp(cmd, func(ctx context.Context, sf *storefront.App) (cart.Summary, error) {
			if err := sf.Cart.Clear(ctx); err != nil {
				return cart.Summary{}, err
			}
			return sf.Cart.Get(ctx), nil
		})
	},
}

func init() {
	rootCmd.AddCommand(cartCmd)
	cartCmd.AddCommand(cartAddCmd, cartQtyCmd, cartRemoveCmd, cartClearCmd)
	cartQtyCmd.Flags().IntVar(&qtyDelta, "by", 1, "Quantity delta, negative to reduce")
}

func cartOp(cmd *cobra.Command, fn func(ctx context.Context, sf *storefront.App) (cart.Summary, error)) error {
	return withApp(cmd, func(ctx context.Context, sf *storefront.App) error {
		sum, err := fn(ctx, sf)
		if err != nil {
			return err
		}
		notify(sf)
		return printCart(cmd, sum)
	})
}

func printCart(cmd *cobra.Command, sum cart.Summary) error {
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), sum)
	}
	if len(sum.Lines) == 0 {
		output.Warning("Keranjang belanja kosong.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tQTY\tPRICE\tSUBTOTAL\t")
	_, _ = fmt.Fprintln(w, "--\t----\t---\t-----\t--------\t")
	for _, l := range sum.Lines {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t\n",
			l.Product.ID,
			l.Product.Name,
			l.Quantity,
			product.PriceLabel(l.UnitPrice),
			product.PriceLabel(l.Subtotal),
		)
	}
	_ = w.Flush()
	output.Info("%d item · Total %s", sum.Count, sum.TotalLabel)
	return nil
}

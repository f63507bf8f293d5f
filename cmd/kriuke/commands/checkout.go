package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/wichananm65/kriuke-snack/cmd/kriuke/output"
	"github.com/wichananm65/kriuke-snack/internal/order"
	"github.com/wichananm65/kriuke-snack/internal/storefront"
)

var customer order.Customer

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Submit the cart as a WhatsApp order",
	Long: `Submit the cart as a WhatsApp order. The cart is emptied and the
prepared WhatsApp link is printed.

Examples:
  kriuke checkout --name Budi --wa 0812345 --address "Jl. Mawar 1"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, sf *storefront.App) error {
			sf.Start(ctx)
			o, err := sf.Orders.Submit(ctx, customer)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), o)
			}
			notify(sf)
			output.Section("Pesanan " + o.Reference)
			output.Muted("%s", o.Message)
			output.Info("Kirim lewat WhatsApp: %s", o.WhatsAppURL)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(checkoutCmd)
	checkoutCmd.Flags().StringVar(&customer.Name, "name", "", "Customer name")
	checkoutCmd.Flags().StringVar(&customer.Phone, "wa", "", "Customer WhatsApp number")
	checkoutCmd.Flags().StringVar(&customer.Address, "address", "", "Full delivery address")
	checkoutCmd.Flags().StringVar(&customer.Notes, "notes", "", "Optional notes")
}

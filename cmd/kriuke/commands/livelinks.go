package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/wichananm65/kriuke-snack/cmd/kriuke/output"
	"github.com/wichananm65/kriuke-snack/internal/livelink"
	"github.com/wichananm65/kriuke-snack/internal/storefront"
)

var liveLinks livelink.Links

var liveLinksCmd = &cobra.Command{
	Use:   "live-links",
	Short: "Show or replace the live shopping links",
	Long: `Show the TikTok and Shopee live links, or replace both at once.

Examples:
  kriuke live-links
  kriuke live-links set --tiktok https://tiktok.com/@kriuke/live --shopee https://shopee.co.id/kriuke`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, sf *storefront.App) error {
			return printLiveLinks(cmd, sf.LiveLinks.Get(ctx))
		})
	},
}

var liveLinksSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Replace both live links",
	RunE: func(cmd *cobra.Command, args []string) error {
		return adminOnly(cmd, func(ctx context.Context, sf *storefront.App) error {
			links, err := sf.LiveLinks.Update(ctx, liveLinks)
			if err != nil {
				return err
			}
			notify(sf)
			return printLiveLinks(cmd, links)
		})
	},
}

func init() {
	rootCmd.AddCommand(liveLinksCmd)
	liveLinksCmd.AddCommand(liveLinksSetCmd)
	liveLinksSetCmd.Flags().StringVar(&liveLinks.Tiktok, "tiktok", "", "TikTok live URL")
	liveLinksSetCmd.Flags().StringVar(&liveLinks.Shopee, "shopee", "", "Shopee live URL")
}

func printLiveLinks(cmd *cobra.Command, links livelink.Links) error {
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), links)
	}
	output.Info("TikTok: %s", links.Tiktok)
	output.Info("Shopee: %s", links.Shopee)
	return nil
}

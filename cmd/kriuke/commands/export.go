package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wichananm65/kriuke-snack/cmd/kriuke/output"
	"github.com/wichananm65/kriuke-snack/internal/storefront"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the catalog to an Excel workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		return adminOnly(cmd, func(ctx context.Context, sf *storefront.App) error {
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", exportOut, err)
			}
			if err := sf.Admin.Export(ctx, f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			output.Success("Katalog diekspor ke %s", exportOut)
			return nil
		})
	},
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Dump every stored key as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return adminOnly(cmd, func(ctx context.Context, sf *storefront.App) error {
			snap, err := sf.Admin.Snapshot(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), snap)
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, snapshotCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "produk.xlsx", "Output file")
}

package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wichananm65/kriuke-snack/internal/server"
	"github.com/wichananm65/kriuke-snack/internal/storefront"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the storefront HTTP API until interrupted.

Examples:
  kriuke serve                         # Listen on KRIUKE_ADDR (:8080)
  kriuke serve --addr :9000 --store memory`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		verbose = true
		return withApp(cmd, func(_ context.Context, sf *storefront.App) error {
			sf.Start(ctx)
			addr := sf.Config.Server.Addr
			if serveAddr != "" {
				addr = serveAddr
			}
			if err := server.Serve(ctx, server.New(sf), addr, sf.Log); err != nil {
				sf.Log.Error("server stopped", zap.Error(err))
				return err
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from KRIUKE_ADDR)")
}

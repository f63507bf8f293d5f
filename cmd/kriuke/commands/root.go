package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/wichananm65/kriuke-snack/cmd/kriuke/output"
	"github.com/wichananm65/kriuke-snack/internal/config"
	"github.com/wichananm65/kriuke-snack/internal/logger"
	"github.com/wichananm65/kriuke-snack/internal/storefront"
)

var (
	// Global flags
	storeDriver string
	storeDir    string
	dbURL       string
	redisAddr   string
	verbose     bool
	jsonOutput  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "kriuke",
	Short: "Kriuke Snack storefront",
	Long: `kriuke runs and operates the Kriuke Snack storefront.

The same store backs the HTTP API, this CLI and the terminal shop, so a
cart filled from the terminal is the cart the API serves.

Store drivers:
  memory    - nothing survives the process
  file      - one JSON file per key under --store-dir (default)
  postgres  - a kv table in the database given by --db
  redis     - keys prefixed with kriuke: on --redis`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.Out = cmd.OutOrStdout()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&storeDriver, "store", "", "Store driver: memory, file, postgres or redis (default from STORE_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&storeDir, "store-dir", "", "Directory for the file store (default from STORE_DIR)")
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "Postgres URL for the postgres store (default from DATABASE_URL)")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", "", "Redis address for the redis store (default from REDIS_ADDR)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

// loadConfig is config.Load with the global flags applied.
func loadConfig() config.Config {
	cfg := config.Load()
	if storeDriver != "" {
		cfg.Store.Driver = storeDriver
	}
	if storeDir != "" {
		cfg.Store.Dir = storeDir
	}
	if dbURL != "" {
		cfg.Store.DatabaseURL = dbURL
		if storeDriver == "" {
			cfg.Store.Driver = "postgres"
		}
	}
	if redisAddr != "" {
		cfg.Store.RedisAddr = redisAddr
		if storeDriver == "" {
			cfg.Store.Driver = "redis"
		}
	}
	if !verbose {
		cfg.Logger.Level = "warn"
	}
	return cfg
}

func openApp(ctx context.Context) (*storefront.App, error) {
	cfg := loadConfig()
	log, err := logger.New(cfg.Logger, cfg.Server.AppEnv)
	if err != nil {
		return nil, err
	}
	sf, err := storefront.Open(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return sf, nil
}

// withApp opens the storefront for the length of fn.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, sf *storefront.App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	sf, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer sf.Close()
	return fn(ctx, sf)
}

var errAdminOnly = errors.New("perintah admin: jalankan kriuke login dulu")

// adminOnly is withApp for commands that need an open admin session.
func adminOnly(cmd *cobra.Command, fn func(ctx context.Context, sf *storefront.App) error) error {
	return withApp(cmd, func(ctx context.Context, sf *storefront.App) error {
		if !sf.Users.LoggedIn(ctx) {
			return errAdminOnly
		}
		return fn(ctx, sf)
	})
}

// notify echoes the message the last operation raised, if any. JSON output
// stays machine readable.
func notify(sf *storefront.App) {
	if jsonOutput {
		return
	}
	if n := sf.Toast.Current(); n.Show {
		output.Success("%s", n.Message)
	}
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

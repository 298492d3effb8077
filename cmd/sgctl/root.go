package main

import (
	"context"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/app"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/config"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/logger"
)

// options holds flags shared by every subcommand.
type options struct {
	configPath string
	apiKey     string
	baseURL    string
	dsn        string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "sgctl",
		Short: "ShareGourmet maintenance CLI",
		Long: `sgctl talks to the HotPepper gourmet API and the ShareGourmet store.

Available subcommands:
  search   - search shops and print them normalized as JSON
  backfill - refresh coordinates of every shared shop`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Configuration file path (or set CONFIG env)")
	rootCmd.PersistentFlags().StringVar(&opts.apiKey, "api-key", "", "HotPepper API key (or set HOTPEPPER_API_KEY env)")
	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "HotPepper API base URL")
	rootCmd.PersistentFlags().StringVarP(&opts.dsn, "dsn", "d", "", "PSQL DB connection (or set DATABASE_DSN env)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "error", "Log level")

	rootCmd.AddCommand(newSearchCmd(opts))
	rootCmd.AddCommand(newBackfillCmd(opts))
	return rootCmd
}

// load resolves configuration from file and environment, then applies flag overrides.
func (o *options) load() (*config.Config, error) {
	cfg := config.NewDefaultConfiguration()
	var args []string
	if o.configPath != "" {
		args = append(args, "-c", o.configPath)
	}
	if err := cfg.Parse(args); err != nil {
		return nil, err
	}
	if o.apiKey != "" {
		cfg.HotPepperAPIKey = o.apiKey
	}
	if o.baseURL != "" {
		cfg.HotPepperBaseURL = o.baseURL
	}
	if o.dsn != "" {
		cfg.DatabaseDSN = o.dsn
	}
	cfg.LogLevel = o.logLevel
	return cfg, nil
}

// run builds the application, calls fn and releases background resources afterwards.
func (o *options) run(ctx context.Context, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := o.load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()
	ctx, cancel := context.WithCancel(ctx)
	wg := &sync.WaitGroup{}
	defer func() {
		cancel()
		wg.Wait()
	}()
	a, err := app.InitApp(ctx, wg, cfg, log)
	if err != nil {
		log.Error("Initialization failed", zap.Error(err))
		return err
	}
	return fn(ctx, a)
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"portfolio/internal/bootstrap"
	"portfolio/internal/config"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var (
	cfg        *config.Config
	configFile string
	dataDir    string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "cvctl",
		Short:        "cvctl - inspect, validate and publish the portfolio book",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if dataDir != "" {
				cfg.Data.Dir = dataDir
				cfg.Data.Source = config.SourceFile
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default ./config.yaml or $HOME/.portfolio/config.yaml)")
	root.PersistentFlags().StringVar(&dataDir, "data", "", "read sections from this directory instead of the configured source")

	root.AddCommand(
		validateCmd(),
		statsCmd(),
		pagesCmd(),
		readCmd(),
		buildCmd(),
		pdfCmd(),
		seedCmd(),
		migrateCmd(),
	)
	return root
}

func newLogger() *slog.Logger {
	if cfg == nil {
		return config.NewLogger(config.LoggingConfig{}, os.Stderr)
	}
	return config.NewLogger(cfg.Logging, os.Stderr)
}

func newRuntime(cmd *cobra.Command) (*bootstrap.Runtime, error) {
	return bootstrap.New(cmd.Context(), cfg, newLogger())
}

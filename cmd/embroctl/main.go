// Command embroctl is the operator CLI for the embroidery service: it
// bootstraps the store, manages accounts and flips the saved theme.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yogi-fashion/embroidery-service/internal/app"
	"github.com/yogi-fashion/embroidery-service/internal/config"
	"github.com/yogi-fashion/embroidery-service/internal/logging"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "embroctl",
	Short:         "Manage the embroidery business store",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the YAML config (default $CONFIG_PATH or configs/development.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(schemaCmd, registerCmd, loginCmd, themeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		if err := os.Setenv("CONFIG_PATH", configPath); err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	cfg.Log.Pretty = true
	if verbose {
		cfg.Log.Level = "debug"
	} else {
		cfg.Log.Level = "warn"
	}
	return cfg, nil
}

// openApp loads configuration and opens the store, creating tables on the
// way. Callers must Close the result.
func openApp(ctx context.Context) (*app.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return app.New(ctx, cfg, logging.New(cfg.Log))
}

// Package main is the gearscore command line tool
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/osse101/RaidBot_Go/internal/config"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	itemsPath string
	armoryURL string
	timeout   time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "gearscore",
		Short:         "GearScore tooling for Warmane characters",
		Long:          `Score equipment files or live armory characters, look up and validate catalog items, and run database migrations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.itemsPath, "items", envOr("ITEMS_PATH", config.DefaultItemsPath), "Item catalog JSON file")
	root.PersistentFlags().StringVar(&opts.armoryURL, "armory", envOr("ARMORY_BASE_URL", config.DefaultArmoryBaseURL), "Armory API base URL")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Request timeout")

	root.AddCommand(newScoreCmd(opts))
	root.AddCommand(newItemCmd(opts))
	root.AddCommand(newMigrateCmd(opts))
	root.AddCommand(newValidateCmd(opts))
	return root
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

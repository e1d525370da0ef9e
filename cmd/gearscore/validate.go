package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/RaidBot_Go/internal/catalog"
	"github.com/osse101/RaidBot_Go/internal/validation"
)

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the item catalog against its schema",
		Long: `Validate the item catalog file strictly. The bot itself skips invalid records
at startup; this reports every one of them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validation.NewSchemaValidator().ValidateFile(opts.itemsPath, validation.SchemaItems); err != nil {
				return err
			}
			items, _, err := catalog.ReadFile(opts.itemsPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d items)\n", opts.itemsPath, len(items))
			return nil
		},
	}
}

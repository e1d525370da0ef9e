package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/osse101/RaidBot_Go/internal/catalog"
	"github.com/osse101/RaidBot_Go/internal/gearscore"
)

func newItemCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "item <id>...",
		Short: "Look up items in the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, dropped, err := catalog.ReadFile(opts.itemsPath)
			if err != nil {
				return err
			}
			c := catalog.New(items)
			out := cmd.OutOrStdout()
			if dropped > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d invalid catalog record(s) ignored\n", dropped)
			}

			for _, arg := range args {
				id, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid item id %q", arg)
				}
				it, ok := c.Lookup(id)
				if !ok {
					fmt.Fprintf(out, "%d: not found\n", id)
					continue
				}
				quality := it.Quality
				if quality == "" {
					quality = catalog.QualityEpic
				}
				fmt.Fprintf(out, "%d: ilvl %d %s %s (%s)\n", it.ID, it.Level, quality, it.Slot, gearscore.InvType(it.Slot))
			}
			return nil
		},
	}
}

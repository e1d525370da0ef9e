package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/RaidBot_Go/internal/armory"
	"github.com/osse101/RaidBot_Go/internal/catalog"
	"github.com/osse101/RaidBot_Go/internal/config"
	"github.com/osse101/RaidBot_Go/internal/domain"
	"github.com/osse101/RaidBot_Go/internal/gearscore"
)

var errNoInput = errors.New("provide an equipment file or --character")

// equipmentFile is the on-disk form. A bare array of items is also accepted.
type equipmentFile struct {
	Class     string                `json:"class"`
	Equipment []domain.EquippedItem `json:"equipment"`
}

func newScoreCmd(opts *options) *cobra.Command {
	var (
		class     string
		character string
		realm     string
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "score [equipment.json]",
		Short: "Calculate a GearScore",
		Long: `Calculate the GearScore of an equipment JSON file, or of a live character
fetched from the armory with --character.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			var (
				equipment   []domain.EquippedItem
				playerClass = class
				label       string
			)
			switch {
			case character != "":
				client := armory.NewClient(opts.armoryURL, armory.WithTimeout(opts.timeout))
				summary, err := client.CharacterSummary(ctx, character, realm)
				if err != nil {
					return fmt.Errorf("failed to fetch %s-%s: %w", character, realm, err)
				}
				equipment = summary.Equipment
				if playerClass == "" {
					playerClass = summary.Class
				}
				label = fmt.Sprintf("%s-%s (%s)", summary.Name, summary.Realm, summary.Class)
			case len(args) == 1:
				file, err := readEquipmentFile(args[0])
				if err != nil {
					return err
				}
				equipment = file.Equipment
				if playerClass == "" {
					playerClass = file.Class
				}
				label = args[0]
			default:
				return errNoInput
			}

			items, _, err := catalog.ReadFile(opts.itemsPath)
			if err != nil {
				return err
			}
			engine := gearscore.NewEngine(catalog.New(items))
			printResult(cmd.OutOrStdout(), label, engine.Breakdown(equipment, playerClass), verbose)
			return nil
		},
	}

	cmd.Flags().StringVar(&class, "class", "", "Player class (hunters weight ranged slots differently)")
	cmd.Flags().StringVar(&character, "character", "", "Fetch equipment for this character from the armory")
	cmd.Flags().StringVar(&realm, "realm", envOr("WARMANE_REALM", config.DefaultRealm), "Realm of --character")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the per-item breakdown")
	return cmd
}

func readEquipmentFile(path string) (*equipmentFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read equipment file: %w", err)
	}
	data = bytes.TrimSpace(data)

	var file equipmentFile
	if len(data) > 0 && data[0] == '[' {
		err = json.Unmarshal(data, &file.Equipment)
	} else {
		err = json.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse equipment file: %w", err)
	}
	return &file, nil
}

func printResult(w io.Writer, label string, res gearscore.Result, verbose bool) {
	if verbose {
		for _, it := range res.Items {
			fmt.Fprintf(w, "  %-8s %6d  ilvl %3d  %s\n", it.InvType, it.Score, it.Level, it.Name)
		}
		if res.Skipped > 0 {
			fmt.Fprintf(w, "  %d item(s) not in catalog\n", res.Skipped)
		}
	}
	fmt.Fprintf(w, "%s: %d\n", label, res.Total)
}

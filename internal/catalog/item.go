package catalog

import (
	"encoding/json"
	"strings"
)

// Quality is an item rarity tier as written in the item export.
type Quality string

const (
	QualityPoor      Quality = "Poor"
	QualityCommon    Quality = "Common"
	QualityUncommon  Quality = "Uncommon"
	QualityRare      Quality = "Rare"
	QualityEpic      Quality = "Epic"
	QualityLegendary Quality = "Legendary"
	QualityHeirloom  Quality = "Heirloom"
)

// Rarity returns the ordinal tier used by the scoring tables.
// Missing or unrecognised quality counts as epic.
func (q Quality) Rarity() int {
	switch Quality(strings.ToLower(string(q))) {
	case "poor":
		return 0
	case "common":
		return 1
	case "uncommon":
		return 2
	case "rare":
		return 3
	case "legendary":
		return 5
	default:
		// epic, heirloom, unknown
		return 4
	}
}

// IsHeirloom reports whether the item scales with character level.
func (q Quality) IsHeirloom() bool {
	return strings.EqualFold(string(q), string(QualityHeirloom))
}

// Item is the static description of one item id.
type Item struct {
	ID      int     `json:"item_id" validate:"gt=0"`
	Level   int     `json:"item_level"`
	Slot    string  `json:"slot" validate:"required"`
	Quality Quality `json:"quality,omitempty"`
}

// UnmarshalJSON accepts both snake_case and camelCase id/level keys.
func (i *Item) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       *int    `json:"item_id"`
		IDAlt    *int    `json:"itemId"`
		Level    *int    `json:"item_level"`
		LevelAlt *int    `json:"itemLevel"`
		Slot     string  `json:"slot"`
		Quality  Quality `json:"quality"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*i = Item{Slot: raw.Slot, Quality: raw.Quality}
	switch {
	case raw.ID != nil:
		i.ID = *raw.ID
	case raw.IDAlt != nil:
		i.ID = *raw.IDAlt
	}
	switch {
	case raw.Level != nil:
		i.Level = *raw.Level
	case raw.LevelAlt != nil:
		i.Level = *raw.LevelAlt
	}
	return nil
}

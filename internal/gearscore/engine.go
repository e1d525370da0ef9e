// Package gearscore converts a character's equipped items into a single
// GearScore using the quality-tiered WotLK addon formula.
package gearscore

import (
	"math"
	"strings"

	"github.com/osse101/RaidBot_Go/internal/catalog"
	"github.com/osse101/RaidBot_Go/internal/domain"
)

// ItemLookup resolves item ids. *catalog.Catalog satisfies it.
type ItemLookup interface {
	Lookup(id int) (catalog.Item, bool)
}

// MissReason says why an equipped item contributed nothing.
type MissReason string

const (
	MissUnparseableID MissReason = "unparseable_id"
	MissUnknownItem   MissReason = "unknown_item"
)

// MissObserver is told about every skipped item. It must be safe for
// concurrent use when the Engine is shared.
type MissObserver func(ref domain.ItemRef, reason MissReason)

// Option configures an Engine.
type Option func(*Engine)

// WithMissObserver registers a callback for skipped items.
func WithMissObserver(fn MissObserver) Option {
	return func(e *Engine) {
		e.onMiss = fn
	}
}

// Engine scores equipment against a fixed item lookup. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	items  ItemLookup
	onMiss MissObserver
}

// NewEngine creates an engine over items. A nil lookup scores everything as 0.
func NewEngine(items ItemLookup, opts ...Option) *Engine {
	e := &Engine{items: items}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ItemScore is the contribution of one resolved item.
type ItemScore struct {
	ItemID  int
	Name    string
	Slot    string
	InvType string
	Level   int
	Score   int
}

// Result is a full scoring breakdown.
type Result struct {
	Total   int
	Items   []ItemScore
	Skipped int
}

// Calculate returns the GearScore of equipment. playerClass may be empty.
func (e *Engine) Calculate(equipment []domain.EquippedItem, playerClass string) int {
	return e.Breakdown(equipment, playerClass).Total
}

// Breakdown scores equipment and reports each resolved item's share.
func (e *Engine) Breakdown(equipment []domain.EquippedItem, playerClass string) Result {
	var res Result
	if len(equipment) == 0 {
		return res
	}

	hunter := strings.EqualFold(strings.TrimSpace(playerClass), "hunter")
	twoHands := 0
	total := 0.0

	for _, eq := range equipment {
		item, ok := e.resolve(eq.Item)
		if !ok {
			res.Skipped++
			continue
		}

		inv := InvType(item.Slot)
		weight := SlotWeight(inv)

		if inv == invTwoHand {
			twoHands++
			if twoHands == 2 {
				weight *= secondTwoHandFactor
			}
		}

		if hunter {
			switch inv {
			case invMainHand:
				weight *= hunterMainHandMod
			case invRanged, invRangedRight:
				weight *= hunterRangedMod
			}
		}

		enchant := 1.0
		if enchantableSlots[inv] && eq.Enchanted != nil && !*eq.Enchanted {
			enchant = unenchantedMod
		}

		score := itemScore(item, weight, enchant)
		total += float64(score)
		res.Items = append(res.Items, ItemScore{
			ItemID:  item.ID,
			Name:    eq.Name,
			Slot:    item.Slot,
			InvType: inv,
			Level:   item.Level,
			Score:   score,
		})
	}

	res.Total = int(math.Round(total))
	return res
}

func (e *Engine) resolve(ref domain.ItemRef) (catalog.Item, bool) {
	id, ok := ref.ID()
	if !ok {
		e.miss(ref, MissUnparseableID)
		return catalog.Item{}, false
	}
	if e.items == nil {
		e.miss(ref, MissUnknownItem)
		return catalog.Item{}, false
	}
	item, ok := e.items.Lookup(id)
	if !ok {
		e.miss(ref, MissUnknownItem)
		return catalog.Item{}, false
	}
	return item, true
}

func (e *Engine) miss(ref domain.ItemRef, reason MissReason) {
	if e.onMiss != nil {
		e.onMiss(ref, reason)
	}
}

// itemScore applies the level/quality formula to one item, floored and
// clamped at zero.
func itemScore(item catalog.Item, slotWeight, enchantMod float64) int {
	level := item.Level
	rarity := item.Quality.Rarity()
	if item.Quality.IsHeirloom() {
		level = 0
	}

	c := coefficientsFor(level, rarity)
	raw := (float64(level) - c.a) / c.b * slotWeight * scale * qualityScale(rarity) * enchantMod

	score := int(math.Floor(raw))
	if score < 0 {
		return 0
	}
	return score
}

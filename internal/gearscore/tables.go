package gearscore

// Calibration constants of the community GearScore addon. Keep them literal.
const (
	scale = 1.8618

	// Items above this level use the high-level coefficient table.
	highLevelThreshold = 120

	secondTwoHandFactor = 0.5
	hunterMainHandMod   = 0.3164
	hunterRangedMod     = 5.3224
	unenchantedMod      = 0.98

	legendaryScale = 1.3
	lowRarityScale = 0.005

	defaultSlotWeight = 1.0
	defaultRarity     = 4
)

// Inventory types
const (
	invHead        = "INVTYPE_HEAD"
	invNeck        = "INVTYPE_NECK"
	invShoulder    = "INVTYPE_SHOULDER"
	invCloak       = "INVTYPE_CLOAK"
	invChest       = "INVTYPE_CHEST"
	invRobe        = "INVTYPE_ROBE"
	invWrist       = "INVTYPE_WRIST"
	invHand        = "INVTYPE_HAND"
	invWaist       = "INVTYPE_WAIST"
	invLegs        = "INVTYPE_LEGS"
	invFeet        = "INVTYPE_FEET"
	invFinger      = "INVTYPE_FINGER"
	invTrinket     = "INVTYPE_TRINKET"
	invMainHand    = "INVTYPE_WEAPONMAINHAND"
	invOffHand     = "INVTYPE_WEAPONOFFHAND"
	invOneHand     = "INVTYPE_WEAPON"
	invTwoHand     = "INVTYPE_2HWEAPON"
	invRanged      = "INVTYPE_RANGED"
	invRangedRight = "INVTYPE_RANGEDRIGHT"
	invThrown      = "INVTYPE_THROWN"
	invShield      = "INVTYPE_SHIELD"
	invHoldable    = "INVTYPE_HOLDABLE"
	invRelic       = "INVTYPE_RELIC"
)

type coefficients struct {
	a, b float64
}

// Keyed by table rarity after clamping into 2..4.
var highLevelTable = map[int]coefficients{
	4: {a: 91.45, b: 0.65},
	3: {a: 81.375, b: 0.8125},
	2: {a: 73.0, b: 1.0},
}

// Key 1 is unreachable after clamping but kept so the table matches the addon.
var lowLevelTable = map[int]coefficients{
	4: {a: 26.0, b: 1.2},
	3: {a: 0.75, b: 1.8},
	2: {a: 8.0, b: 2.0},
	1: {a: 0.0, b: 2.25},
}

// Armory slot names to addon inventory types.
var slotToInvType = map[string]string{
	"Head":      invHead,
	"Neck":      invNeck,
	"Shoulder":  invShoulder,
	"Back":      invCloak,
	"Chest":     invChest,
	"Robe":      invRobe,
	"Wrist":     invWrist,
	"Hands":     invHand,
	"Waist":     invWaist,
	"Legs":      invLegs,
	"Feet":      invFeet,
	"Finger":    invFinger,
	"Trinket":   invTrinket,
	"Main Hand": invMainHand,
	"Off Hand":  invOffHand,
	"One-Hand":  invOneHand,
	"Two-Hand":  invTwoHand,
	"Ranged":    invRanged,
	"Shield":    invShield,
	"Holdable":  invHoldable,
	"Relic":     invRelic,
}

var slotWeights = map[string]float64{
	invTwoHand:     2.0,
	invMainHand:    1.0,
	invOffHand:     1.0,
	invRanged:      0.3164,
	invThrown:      0.3164,
	invRangedRight: 0.3164,
	invShield:      1.0,
	invOneHand:     1.0,
	invHoldable:    1.0,
	invHead:        1.0,
	invNeck:        0.5625,
	invShoulder:    0.75,
	invChest:       1.0,
	invRobe:        1.0,
	invWaist:       0.75,
	invLegs:        1.0,
	invFeet:        0.75,
	invWrist:       0.5625,
	invHand:        0.75,
	invFinger:      0.5625,
	invTrinket:     0.5625,
	invCloak:       0.5625,
	invRelic:       0.3164,
}

var enchantableSlots = map[string]bool{
	invHead:     true,
	invShoulder: true,
	invChest:    true,
	invRobe:     true,
	invLegs:     true,
	invFeet:     true,
	invWrist:    true,
	invHand:     true,
	invCloak:    true,
	invMainHand: true,
	invOffHand:  true,
	invOneHand:  true,
	invTwoHand:  true,
	invShield:   true,
}

// InvType maps an armory slot name to its inventory type. Unknown names
// are returned unchanged so raw INVTYPE_* values also work.
func InvType(slot string) string {
	if inv, ok := slotToInvType[slot]; ok {
		return inv
	}
	return slot
}

// SlotWeight returns the base weight of an inventory type.
func SlotWeight(invType string) float64 {
	if w, ok := slotWeights[invType]; ok {
		return w
	}
	return defaultSlotWeight
}

func tableRarity(rarity int) int {
	switch {
	case rarity <= 1:
		return 2
	case rarity == 5:
		return 4
	}
	return rarity
}

func coefficientsFor(level, rarity int) coefficients {
	table := lowLevelTable
	if level > highLevelThreshold {
		table = highLevelTable
	}
	if c, ok := table[tableRarity(rarity)]; ok {
		return c
	}
	return table[defaultRarity]
}

func qualityScale(rarity int) float64 {
	switch {
	case rarity == 5:
		return legendaryScale
	case rarity <= 1:
		return lowRarityScale
	}
	return 1.0
}

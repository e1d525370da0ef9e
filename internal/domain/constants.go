package domain

// Raid roles
const (
	RoleTank   = "tank"
	RoleHealer = "healer"
	RoleDPS    = "dps"
)

// Default raid composition
const (
	DefaultTankSlots   = 2
	DefaultHealerSlots = 6
	DefaultDPSSlots    = 17
)

// Manual gear score bounds
const (
	MinManualGearScore = 3000
	MaxManualGearScore = 7000
)

// ValidRole reports whether role is one of tank, healer or dps.
func ValidRole(role string) bool {
	switch role {
	case RoleTank, RoleHealer, RoleDPS:
		return true
	}
	return false
}

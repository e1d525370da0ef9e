package domain

import "strings"

// PlayerClasses are the classes available on a Wrath of the Lich King realm,
// in the spelling the armory uses.
var PlayerClasses = []string{
	"Death Knight",
	"Druid",
	"Hunter",
	"Mage",
	"Paladin",
	"Priest",
	"Rogue",
	"Shaman",
	"Warlock",
	"Warrior",
}

var classByKey = func() map[string]string {
	m := make(map[string]string, len(PlayerClasses))
	for _, c := range PlayerClasses {
		m[classKey(c)] = c
	}
	return m
}()

func classKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
}

// CanonicalClass maps loose input such as "deathknight" or " mage" to the
// armory spelling.
func CanonicalClass(s string) (string, bool) {
	c, ok := classByKey[classKey(s)]
	return c, ok
}

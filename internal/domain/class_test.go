package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalClass(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Hunter", "Hunter", true},
		{"mage", "Mage", true},
		{"DeathKnight", "Death Knight", true},
		{"death knight", "Death Knight", true},
		{"  Druid ", "Druid", true},
		{"Monk", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := CanonicalClass(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

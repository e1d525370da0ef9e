package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ItemRef is an item identifier as reported by the armory. The API sends it
// either as a JSON string or as a number; both decode to the same value.
type ItemRef string

// UnmarshalJSON accepts "12345", 12345, 12345.0 and null.
func (r *ItemRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = ItemRef(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("item reference must be a string or number: %w", err)
	}
	*r = ItemRef(n.String())
	// 1001.0 and 1.001e3 are the same id as 1001
	if strings.ContainsAny(n.String(), ".eE") {
		if f, err := n.Float64(); err == nil && f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32 {
			*r = ItemRef(strconv.FormatInt(int64(f), 10))
		}
	}
	return nil
}

// ID reads the leading decimal digits of the reference, so "1001abc" is
// item 1001. It fails when no digits lead.
func (r ItemRef) ID() (int, bool) {
	s := strings.TrimSpace(string(r))
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	id, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return id, true
}

// EquippedItem is one occupied gear slot on a character.
type EquippedItem struct {
	Name     string  `json:"name"`
	Item     ItemRef `json:"item"`
	Transmog ItemRef `json:"transmog,omitempty"`
	// Enchanted is nil when the source did not report enchant state.
	Enchanted *bool `json:"enchant,omitempty"`
}

// UnmarshalJSON also accepts "item_id" in place of "item".
func (e *EquippedItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name      string  `json:"name"`
		Item      ItemRef `json:"item"`
		ItemID    ItemRef `json:"item_id"`
		Transmog  ItemRef `json:"transmog"`
		Enchanted *bool   `json:"enchant"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.Name = raw.Name
	e.Item = raw.Item
	if e.Item == "" {
		e.Item = raw.ItemID
	}
	e.Transmog = raw.Transmog
	e.Enchanted = raw.Enchanted
	return nil
}

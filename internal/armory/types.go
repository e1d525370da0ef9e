package armory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/osse101/RaidBot_Go/internal/domain"
)

// Text is a scalar the armory sends as either a string or a number.
type Text string

// UnmarshalJSON accepts strings, numbers and null.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*t = ""
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	*t = Text(n.String())
	return nil
}

// CharacterSummary is the armory view of one character.
type CharacterSummary struct {
	Name      string                `json:"name"`
	Realm     string                `json:"realm"`
	Online    bool                  `json:"online"`
	Level     Text                  `json:"level"`
	Faction   string                `json:"faction"`
	Gender    string                `json:"gender"`
	Race      string                `json:"race"`
	Class     string                `json:"class"`
	Guild     string                `json:"guild"`
	Equipment []domain.EquippedItem `json:"equipment"`
}

// RosterMember is one character on a guild roster.
type RosterMember struct {
	Name   string `json:"name"`
	Online bool   `json:"online"`
	Level  Text   `json:"level"`
	Class  string `json:"class"`
	Race   string `json:"race"`
}

// GuildRoster is a guild and its members.
type GuildRoster struct {
	Name        string         `json:"name"`
	Realm       string         `json:"realm"`
	MemberCount int            `json:"membercount"`
	Members     []RosterMember `json:"members"`
}

// UnmarshalJSON accepts the member list under either "members" or "roster".
func (g *GuildRoster) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name        string         `json:"name"`
		Realm       string         `json:"realm"`
		MemberCount Text           `json:"membercount"`
		Members     []RosterMember `json:"members"`
		Roster      []RosterMember `json:"roster"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	g.Name = raw.Name
	g.Realm = raw.Realm
	g.Members = raw.Members
	if g.Members == nil {
		g.Members = raw.Roster
	}
	g.MemberCount = len(g.Members)
	if n, err := strconv.Atoi(string(raw.MemberCount)); err == nil {
		g.MemberCount = n
	}
	return nil
}

// Online returns the members currently online.
func (g *GuildRoster) Online() []RosterMember {
	var out []RosterMember
	for _, m := range g.Members {
		if m.Online {
			out = append(out, m)
		}
	}
	return out
}

// CharacterURL is the public armory page of a character.
func CharacterURL(name, realm string) string {
	return fmt.Sprintf("%s/character/%s/%s", WebURL, url.PathEscape(name), url.PathEscape(realm))
}

func rosterKey(name, realm string) string {
	return rosterKeyPrefix + strings.ToLower(name) + ":" + strings.ToLower(realm)
}

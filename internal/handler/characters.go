package handler

import (
	"net/http"

	"github.com/osse101/RaidBot_Go/internal/armory"
	"github.com/osse101/RaidBot_Go/internal/character"
	"github.com/osse101/RaidBot_Go/internal/domain"
)

// CharacterResponse is a registered character plus its armory link.
type CharacterResponse struct {
	domain.Character
	ArmoryURL string `json:"armory_url"`
}

// HandleGetCharacter returns GET /characters/{guild}/{name} from storage.
// It never calls the armory.
func HandleGetCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guildID, ok := GetPathParam(r, w, "guild")
		if !ok {
			return
		}
		name, ok := GetPathParam(r, w, "name")
		if !ok {
			return
		}

		c, err := svc.Get(r.Context(), guildID, name)
		if err != nil {
			respondServiceError(w, r, "get character", err)
			return
		}

		respondJSON(w, http.StatusOK, CharacterResponse{
			Character: *c,
			ArmoryURL: armory.CharacterURL(c.Name, c.Realm),
		})
	}
}

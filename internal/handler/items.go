package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/RaidBot_Go/internal/gearscore"
)

// ItemResponse describes one catalog entry.
type ItemResponse struct {
	ItemID  int    `json:"item_id"`
	Level   int    `json:"item_level"`
	Slot    string `json:"slot"`
	InvType string `json:"inv_type"`
	Quality string `json:"quality,omitempty"`
}

// HandleGetItem looks up GET /items/{id} in the catalog.
func HandleGetItem(items gearscore.ItemLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := GetPathParam(r, w, "id")
		if !ok {
			return
		}
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidItemID)
			return
		}

		item, found := items.Lookup(id)
		if !found {
			respondError(w, http.StatusNotFound, ErrMsgItemNotFoundError)
			return
		}

		respondJSON(w, http.StatusOK, ItemResponse{
			ItemID:  item.ID,
			Level:   item.Level,
			Slot:    item.Slot,
			InvType: gearscore.InvType(item.Slot),
			Quality: string(item.Quality),
		})
	}
}

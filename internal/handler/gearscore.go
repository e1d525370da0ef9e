package handler

import (
	"net/http"

	"github.com/osse101/RaidBot_Go/internal/domain"
	"github.com/osse101/RaidBot_Go/internal/gearscore"
	"github.com/osse101/RaidBot_Go/internal/logger"
	"github.com/osse101/RaidBot_Go/internal/metrics"
)

// Breakdowner scores equipment with a per-item breakdown.
type Breakdowner interface {
	Breakdown(equipment []domain.EquippedItem, playerClass string) gearscore.Result
}

// GearScoreRequest is the body of POST /api/v1/gearscore.
type GearScoreRequest struct {
	Class     string                `json:"class" validate:"playerclass"`
	Equipment []domain.EquippedItem `json:"equipment" validate:"max=32"`
}

// GearScoreItem is one resolved item in a GearScoreResponse.
type GearScoreItem struct {
	ItemID  int    `json:"item_id"`
	Name    string `json:"name,omitempty"`
	Slot    string `json:"slot"`
	InvType string `json:"inv_type"`
	Level   int    `json:"item_level"`
	Score   int    `json:"score"`
}

// GearScoreResponse is the result of POST /api/v1/gearscore.
type GearScoreResponse struct {
	GearScore int             `json:"gear_score"`
	Items     []GearScoreItem `json:"items"`
	Skipped   int             `json:"skipped"`
}

// HandleGearScore scores a posted equipment list. An empty list scores 0.
func HandleGearScore(scorer Breakdowner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GearScoreRequest
		if err := DecodeAndValidateRequest(r, w, &req, "GearScore"); err != nil {
			return
		}

		res := scorer.Breakdown(req.Equipment, req.Class)
		metrics.GearScoreCalculations.WithLabelValues(sourceAPI).Inc()

		items := make([]GearScoreItem, 0, len(res.Items))
		for _, it := range res.Items {
			items = append(items, GearScoreItem{
				ItemID:  it.ItemID,
				Name:    it.Name,
				Slot:    it.Slot,
				InvType: it.InvType,
				Level:   it.Level,
				Score:   it.Score,
			})
		}

		logger.FromContext(r.Context()).Debug(LogMsgGearScoreScored,
			"class", req.Class,
			"items", len(req.Equipment),
			"gear_score", res.Total)

		respondJSON(w, http.StatusOK, GearScoreResponse{
			GearScore: res.Total,
			Items:     items,
			Skipped:   res.Skipped,
		})
	}
}

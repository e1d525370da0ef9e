package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RaidBot_Go/internal/armory"
	"github.com/osse101/RaidBot_Go/internal/catalog"
	"github.com/osse101/RaidBot_Go/internal/domain"
	"github.com/osse101/RaidBot_Go/internal/gearscore"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Item{
		{ID: 1001, Level: 277, Slot: "Chest", Quality: catalog.QualityEpic},
		{ID: 1002, Level: 245, Slot: "Neck", Quality: catalog.QualityEpic},
	})
}

func TestHandleGearScore(t *testing.T) {
	h := HandleGearScore(gearscore.NewEngine(testCatalog()))

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantScore  int
		wantSkip   int
	}{
		{
			name:       "scores resolved items",
			body:       `{"class":"Warrior","equipment":[{"name":"Chest","item":"1001"},{"name":"Neck","item":1002}]}`,
			wantStatus: http.StatusOK,
			wantScore:  778,
		},
		{
			name:       "unknown items are skipped",
			body:       `{"equipment":[{"item":"1001"},{"item":"999999"},{"item":"junk"}]}`,
			wantStatus: http.StatusOK,
			wantScore:  531,
			wantSkip:   2,
		},
		{
			name:       "item_id alias",
			body:       `{"equipment":[{"item_id":"1002"}]}`,
			wantStatus: http.StatusOK,
			wantScore:  247,
		},
		{
			name:       "empty equipment scores zero",
			body:       `{"class":"Mage","equipment":[]}`,
			wantStatus: http.StatusOK,
			wantScore:  0,
		},
		{
			name:       "malformed json",
			body:       `{"equipment":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown class",
			body:       `{"class":"Monk","equipment":[]}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/gearscore", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus != http.StatusOK {
				return
			}
			var resp GearScoreResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantScore, resp.GearScore)
			assert.Equal(t, tt.wantSkip, resp.Skipped)
			assert.NotNil(t, resp.Items)
		})
	}
}

func TestHandleGearScore_ItemFields(t *testing.T) {
	h := HandleGearScore(gearscore.NewEngine(testCatalog()))
	body := `{"equipment":[{"name":"Sanctified Ymirjar Lord's Battleplate","item":1001.0}]}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/gearscore", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var raw struct {
		Items []map[string]any `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.Len(t, raw.Items, 1)
	item := raw.Items[0]
	assert.Equal(t, "Sanctified Ymirjar Lord's Battleplate", item["name"])
	assert.Equal(t, "Chest", item["slot"])
	assert.Equal(t, "INVTYPE_CHEST", item["inv_type"])
	assert.EqualValues(t, 1001, item["item_id"])
	assert.EqualValues(t, 531, item["score"])
}

func TestHandleGearScore_ValidationFields(t *testing.T) {
	h := HandleGearScore(gearscore.NewEngine(testCatalog()))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/gearscore", strings.NewReader(`{"class":"Monk"}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ErrMsgInvalidRequestSummary, resp.Error)
	assert.Contains(t, resp.Fields["class"], "Unknown player class")
}

func TestHandleGetItem(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/items/{id}", HandleGetItem(testCatalog()))

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"found", "/items/1001", http.StatusOK, `"inv_type":"INVTYPE_CHEST"`},
		{"missing", "/items/42", http.StatusNotFound, ErrMsgItemNotFoundError},
		{"not a number", "/items/abc", http.StatusBadRequest, ErrMsgInvalidItemID},
		{"zero", "/items/0", http.StatusBadRequest, ErrMsgInvalidItemID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestHandleGetCharacter(t *testing.T) {
	score := 5600

	tests := []struct {
		name       string
		setup      func(*MockCharacterService)
		wantStatus int
		wantBody   []string
	}{
		{
			name: "found",
			setup: func(m *MockCharacterService) {
				m.On("Get", mock.Anything, "g1", "Arthas").Return(&domain.Character{
					ID: 7, GuildID: "g1", Name: "Arthas", Realm: "Lordaeron", Class: "Paladin", GearScore: &score,
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: []string{
				`"gear_score":5600`,
				`"armory_url":"https://armory.warmane.com/character/Arthas/Lordaeron"`,
			},
		},
		{
			name: "not registered",
			setup: func(m *MockCharacterService) {
				m.On("Get", mock.Anything, "g1", "Arthas").Return(nil, domain.ErrCharacterNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   []string{ErrMsgCharacterNotFoundErr},
		},
		{
			name: "wrapped armory maintenance",
			setup: func(m *MockCharacterService) {
				m.On("Get", mock.Anything, "g1", "Arthas").Return(nil, fmt.Errorf("lookup: %w", armory.ErrMaintenance))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   []string{ErrMsgArmoryUnavailable},
		},
		{
			name: "storage failure hides details",
			setup: func(m *MockCharacterService) {
				m.On("Get", mock.Anything, "g1", "Arthas").Return(nil, fmt.Errorf("pg: connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{ErrMsgGenericServerError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockCharacterService{}
			tt.setup(svc)

			r := chi.NewRouter()
			r.Get("/characters/{guild}/{name}", HandleGetCharacter(svc))

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/characters/g1/Arthas", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			for _, s := range tt.wantBody {
				assert.Contains(t, w.Body.String(), s)
			}
			assert.NotContains(t, w.Body.String(), "connection reset")
			svc.AssertExpectations(t)
		})
	}
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{nil, http.StatusInternalServerError},
		{domain.ErrNoCharacters, http.StatusNotFound},
		{domain.ErrGuildNotConfigured, http.StatusNotFound},
		{domain.ErrOnCooldown, http.StatusTooManyRequests},
		{fmt.Errorf("%w: bad", domain.ErrInvalidInput), http.StatusBadRequest},
		{armory.ErrNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		status, _ := mapServiceErrorToUserMessage(tt.err)
		assert.Equal(t, tt.wantStatus, status, "%v", tt.err)
	}
}

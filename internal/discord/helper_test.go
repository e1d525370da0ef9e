package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// CapturedRequest is one call the bot made to the Discord REST API
type CapturedRequest struct {
	Method string
	Path   string
	Body   []byte
}

// CapturedResponse is the subset of an interaction callback tests inspect
type CapturedResponse struct {
	Type discordgo.InteractionResponseType `json:"type"`
	Data struct {
		Content    string                    `json:"content"`
		Flags      discordgo.MessageFlags    `json:"flags"`
		CustomID   string                    `json:"custom_id"`
		Title      string                    `json:"title"`
		Components []json.RawMessage         `json:"components"`
		Choices    []CapturedChoice          `json:"choices"`
		Embeds     []*discordgo.MessageEmbed `json:"embeds"`
	} `json:"data"`
}

// CapturedChoice is an autocomplete choice
type CapturedChoice struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CapturedEdit is the subset of a webhook or message edit tests inspect
type CapturedEdit struct {
	Content         *string                   `json:"content"`
	Embeds          []*discordgo.MessageEmbed `json:"embeds"`
	Components      []json.RawMessage         `json:"components"`
	AllowedMentions *struct {
		Users []string `json:"users"`
	} `json:"allowed_mentions"`
}

// TestContext is a bot session whose HTTP traffic is captured, plus mock services.
type TestContext struct {
	Session      *discordgo.Session
	DiscordMocks *MockRoundTripper
	Services     *Services
	Characters   *MockCharacterService
	Raids        *MockRaidService
	Guilds       *fakeGuilds

	mu       sync.Mutex
	requests []CapturedRequest
	// ReplyBody is returned for every captured request.
	ReplyBody string
}

// SetupTestContext sets up the test environment:
// 1. Mock Discord Session (with intercepted HTTP client)
// 2. Mock services the handlers call into
func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("Failed to create mock session: %v", err)
	}

	ctx := &TestContext{
		Session:    session,
		Characters: &MockCharacterService{},
		Raids:      &MockRaidService{},
		Guilds:     newFakeGuilds(),
		ReplyBody:  `{"id":"msg-1"}`,
	}
	ctx.Services = &Services{
		Characters: ctx.Characters,
		Raids:      ctx.Raids,
		Guilds:     ctx.Guilds,
	}

	// Intercept Discord API calls
	ctx.DiscordMocks = &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			var body []byte
			if req.Body != nil {
				body, _ = io.ReadAll(req.Body)
			}
			ctx.mu.Lock()
			ctx.requests = append(ctx.requests, CapturedRequest{Method: req.Method, Path: req.URL.Path, Body: body})
			reply := ctx.ReplyBody
			ctx.mu.Unlock()

			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString(reply)),
				Header:     make(http.Header),
			}, nil
		},
	}
	session.Client = &http.Client{Transport: ctx.DiscordMocks}

	return ctx
}

// Requests returns every captured request in order.
func (c *TestContext) Requests() []CapturedRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]CapturedRequest(nil), c.requests...)
}

// Responses decodes every interaction callback.
func (c *TestContext) Responses(t *testing.T) []CapturedResponse {
	t.Helper()
	var out []CapturedResponse
	for _, r := range c.Requests() {
		if r.Method != http.MethodPost || !strings.HasSuffix(r.Path, "/callback") {
			continue
		}
		var resp CapturedResponse
		if err := json.Unmarshal(r.Body, &resp); err != nil {
			t.Fatalf("decode interaction response: %v", err)
		}
		out = append(out, resp)
	}
	return out
}

// LastEdit decodes the most recent edit of the interaction's original response.
func (c *TestContext) LastEdit(t *testing.T) *CapturedEdit {
	t.Helper()
	return c.lastMatching(t, http.MethodPatch, "/messages/@original")
}

// ChannelMessages decodes every message posted to channelID.
func (c *TestContext) ChannelMessages(t *testing.T, channelID string) []CapturedEdit {
	t.Helper()
	var out []CapturedEdit
	for _, r := range c.Requests() {
		if r.Method == http.MethodPost && strings.HasSuffix(r.Path, "/channels/"+channelID+"/messages") {
			var e CapturedEdit
			if err := json.Unmarshal(r.Body, &e); err != nil {
				t.Fatalf("decode channel message: %v", err)
			}
			out = append(out, e)
		}
	}
	return out
}

// HasRequest reports whether a request with method was made to a path ending in suffix.
func (c *TestContext) HasRequest(method, suffix string) bool {
	for _, r := range c.Requests() {
		if r.Method == method && strings.HasSuffix(r.Path, suffix) {
			return true
		}
	}
	return false
}

func (c *TestContext) lastMatching(t *testing.T, method, suffix string) *CapturedEdit {
	t.Helper()
	reqs := c.Requests()
	for idx := len(reqs) - 1; idx >= 0; idx-- {
		r := reqs[idx]
		if r.Method != method || !strings.HasSuffix(r.Path, suffix) {
			continue
		}
		var e CapturedEdit
		if err := json.Unmarshal(r.Body, &e); err != nil {
			t.Fatalf("decode edit: %v", err)
		}
		return &e
	}
	return nil
}

// commandInteraction builds a guild slash command interaction.
func commandInteraction(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:        "interaction-1",
			Token:     "token",
			Type:      discordgo.InteractionApplicationCommand,
			GuildID:   "guild-1",
			ChannelID: "channel-1",
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: options,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "user-1", Username: "Tester"},
			},
		},
	}
}

// componentInteraction builds a button or select menu interaction.
func componentInteraction(customID string, values ...string) *discordgo.InteractionCreate {
	i := commandInteraction("")
	i.Type = discordgo.InteractionMessageComponent
	i.Data = discordgo.MessageComponentInteractionData{CustomID: customID, Values: values}
	return i
}

func stringOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: value}
}

func subcommandOpt(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionSubCommand, Options: options}
}

func intOpt(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(value)}
}

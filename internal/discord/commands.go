package discord

import (
	"fmt"
	"log/slog"
	"reflect"
	"runtime/debug"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RaidBot_Go/internal/metrics"
)

// CommandHandler handles a slash command, component or modal interaction
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services)

// CommandRegistry holds the registered commands and interaction handlers.
// Components and modals are keyed by the custom id prefix before ':'.
type CommandRegistry struct {
	Commands   map[string]*discordgo.ApplicationCommand
	Handlers   map[string]CommandHandler
	Components map[string]CommandHandler
	Modals     map[string]CommandHandler
}

func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands:   make(map[string]*discordgo.ApplicationCommand),
		Handlers:   make(map[string]CommandHandler),
		Components: make(map[string]CommandHandler),
		Modals:     make(map[string]CommandHandler),
	}
}

// Register adds a slash command and its handler.
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// RegisterComponent routes message components whose custom id starts with prefix
func (r *CommandRegistry) RegisterComponent(prefix string, handler CommandHandler) {
	r.Components[prefix] = handler
}

// RegisterModal routes modal submissions whose custom id starts with prefix
func (r *CommandRegistry) RegisterModal(prefix string, handler CommandHandler) {
	r.Modals[prefix] = handler
}

// Handle dispatches an interaction to its handler. A panicking handler is
// logged and the gateway loop keeps running.
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
	route, h := r.route(i)
	if h == nil {
		if route != "" {
			slog.Warn(LogMsgUnhandledInteraction, "type", i.Type.String(), "route", route)
		}
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			slog.Error(LogMsgHandlerPanic, "route", route, "guild_id", i.GuildID,
				"panic", fmt.Sprint(rec), "stack", string(debug.Stack()))
		}
	}()
	h(s, i, svc)
}

// route resolves the handler for an interaction and a label for logs.
func (r *CommandRegistry) route(i *discordgo.InteractionCreate) (string, CommandHandler) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		h, ok := r.Handlers[name]
		if ok {
			metrics.CommandsTotal.WithLabelValues(name).Inc()
		}
		return "/" + name, h
	case discordgo.InteractionApplicationCommandAutocomplete:
		return "autocomplete", HandleAutocomplete
	case discordgo.InteractionMessageComponent:
		prefix, _ := splitCustomID(i.MessageComponentData().CustomID)
		return "component:" + prefix, r.Components[prefix]
	case discordgo.InteractionModalSubmit:
		prefix, _ := splitCustomID(i.ModalSubmitData().CustomID)
		return "modal:" + prefix, r.Modals[prefix]
	}
	return "", nil
}

// splitCustomID splits "raid-signup:<id>" into its prefix and argument.
func splitCustomID(customID string) (string, string) {
	prefix, arg, _ := strings.Cut(customID, ":")
	return prefix, arg
}

// RegisterCommands pushes the registry to Discord when it differs from what
// is already registered, or always when forceUpdate is set. Commands go to
// GuildID when it is set so changes show up immediately.
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	existing, err := b.Session.ApplicationCommands(b.AppID, b.GuildID)
	if err != nil {
		return fmt.Errorf("failed to fetch existing commands: %w", err)
	}

	desired := registry.sortedCommands()
	plan := planCommandSync(existing, desired)
	if plan.empty() && !forceUpdate {
		slog.Info(LogMsgCommandsUnchanged, "count", len(desired), "guild_id", b.GuildID)
		return nil
	}

	slog.Info(LogMsgCommandsUpdating, "guild_id", b.GuildID, "forced", forceUpdate,
		"added", plan.Added, "changed", plan.Changed, "removed", plan.Removed)
	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, b.GuildID, desired); err != nil {
		return fmt.Errorf("failed to overwrite commands: %w", err)
	}
	return nil
}

func (r *CommandRegistry) sortedCommands() []*discordgo.ApplicationCommand {
	out := make([]*discordgo.ApplicationCommand, 0, len(r.Commands))
	for _, cmd := range r.Commands {
		out = append(out, cmd)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out
}

// commandPlan lists command names by how they differ from Discord's copy.
type commandPlan struct {
	Added   []string
	Changed []string
	Removed []string
}

func (p commandPlan) empty() bool {
	return len(p.Added) == 0 && len(p.Changed) == 0 && len(p.Removed) == 0
}

func planCommandSync(existing, desired []*discordgo.ApplicationCommand) commandPlan {
	current := make(map[string]commandShape, len(existing))
	for _, cmd := range existing {
		current[cmd.Name] = shapeOf(cmd)
	}

	var plan commandPlan
	for _, cmd := range desired {
		have, ok := current[cmd.Name]
		switch {
		case !ok:
			plan.Added = append(plan.Added, cmd.Name)
		case !reflect.DeepEqual(have, shapeOf(cmd)):
			plan.Changed = append(plan.Changed, cmd.Name)
		}
		delete(current, cmd.Name)
	}
	for name := range current {
		plan.Removed = append(plan.Removed, name)
	}
	sort.Strings(plan.Removed)
	return plan
}

// commandShape is the part of a command we define. Discord fills ids,
// versions and localizations on its copy, so those are left out.
type commandShape struct {
	Description string
	Permissions int64
	HasPerms    bool
	Options     []optionShape
}

type optionShape struct {
	Type         discordgo.ApplicationCommandOptionType
	Name         string
	Description  string
	Required     bool
	Autocomplete bool
	Choices      []string
	Options      []optionShape
}

func shapeOf(cmd *discordgo.ApplicationCommand) commandShape {
	s := commandShape{Description: cmd.Description, Options: optionShapes(cmd.Options)}
	if cmd.DefaultMemberPermissions != nil {
		s.HasPerms = true
		s.Permissions = *cmd.DefaultMemberPermissions
	}
	return s
}

func optionShapes(opts []*discordgo.ApplicationCommandOption) []optionShape {
	if len(opts) == 0 {
		return nil
	}
	out := make([]optionShape, len(opts))
	for i, o := range opts {
		out[i] = optionShape{
			Type:         o.Type,
			Name:         o.Name,
			Description:  o.Description,
			Required:     o.Required,
			Autocomplete: o.Autocomplete,
			Options:      optionShapes(o.Options),
		}
		for _, c := range o.Choices {
			out[i].Choices = append(out[i].Choices, c.Name+"="+fmt.Sprint(c.Value))
		}
	}
	return out
}

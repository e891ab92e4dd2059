package bot

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/duel"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/handle"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/metrics"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/pubsub"
)

// Bot wires the Discord gateway to the command handlers.
type Bot struct {
	session   *discordgo.Session
	registrar *handle.Registrar
	duels     duel.DuelStore
	metrics   metrics.Metrics
	events    pubsub.Publisher
	commands  []*discordgo.ApplicationCommand
	botUserID string
}

// New creates a new Bot instance. events may be nil when event
// publishing is not configured.
func New(token string, registrar *handle.Registrar, duels duel.DuelStore, metricsSvc metrics.Metrics, events pubsub.Publisher) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	b := &Bot{
		session:   session,
		registrar: registrar,
		duels:     duels,
		metrics:   metricsSvc,
		events:    events,
	}

	session.AddHandler(b.handleInteraction)
	session.AddHandler(b.handleReady)

	return b, nil
}

// Start opens the Discord connection and registers the slash commands.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	log.Info("Connected to Discord", "user", b.session.State.User.Username)

	if err := b.registerCommands(); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the bot.
func (b *Bot) Stop() error {
	if b.session != nil {
		return b.session.Close()
	}
	return nil
}

func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	b.botUserID = r.User.ID
	log.Info("Bot is ready", "guilds", len(r.Guilds))

	err := s.UpdateStatusComplex(discordgo.UpdateStatusData{
		Status: string(discordgo.StatusDoNotDisturb),
		Activities: []*discordgo.Activity{
			{
				Name: statusActivity,
				Type: discordgo.ActivityTypeGame,
			},
		},
	})
	if err != nil {
		log.Error("Failed to update status", "error", err)
	}
}

// registerCommands registers all slash commands with Discord.
func (b *Bot) registerCommands() error {
	log.Info("Registering slash commands")

	commandDefinitions := b.getCommandDefinitions()
	registeredCommands := make([]*discordgo.ApplicationCommand, 0, len(commandDefinitions))

	for _, cmd := range commandDefinitions {
		registered, err := b.session.ApplicationCommandCreate(
			b.session.State.User.ID,
			"", // Empty string = global command
			cmd,
		)
		if err != nil {
			return fmt.Errorf("failed to register command %s: %w", cmd.Name, err)
		}
		registeredCommands = append(registeredCommands, registered)
		log.Debug("Registered command", "name", cmd.Name)
	}

	b.commands = registeredCommands
	log.Info("Slash commands registered", "count", len(registeredCommands))
	return nil
}

// handleInteraction processes slash command interactions. Guards run
// before the handler body; a guard failure is reported to the invoking
// user and never reaches the handler.
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	log.Debug("Received command", "command", data.Name, "guild", i.GuildID)

	start := time.Now()
	b.metrics.IncCommandsHandled()
	defer func() {
		b.metrics.ObserveCommandDuration(time.Since(start).Seconds())
	}()

	type route struct {
		guards  []guard
		handler func(s *discordgo.Session, i *discordgo.InteractionCreate)
	}

	routes := map[string]route{
		"ping":                {nil, b.handlePing},
		"handle_set":          {nil, b.handleHandleSet},
		"handle_get":          {nil, b.handleHandleGet},
		"duel_challenge":      {[]guard{requireGuild}, b.handleDuelChallenge},
		"duel_withdraw":       {[]guard{requireGuild}, b.handleDuelWithdraw},
		"tournament_create":   {[]guard{requireGuild}, b.handleTournamentCreate},
		"tournament_withdraw": {[]guard{requireModerator}, b.handleTournamentWithdraw},
		"about":               {nil, b.handleAbout},
	}

	r, ok := routes[data.Name]
	if !ok {
		log.Warn("Unknown command", "command", data.Name)
		return
	}

	for _, g := range r.guards {
		if err := g(i); err != nil {
			b.respondEmbed(s, i, errorEmbed(err), true)
			return
		}
	}

	r.handler(s, i)
}

// Response helpers

func (b *Bot) respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, ephemeral bool) {
	var flags discordgo.MessageFlags
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  flags,
		},
	})
	if err != nil {
		log.Error("Failed to respond to interaction", "error", err)
	}
}

// deferEphemeral acknowledges the interaction so a slow remote lookup
// does not hit Discord's 3 second response deadline.
func (b *Bot) deferEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Error("Failed to defer interaction", "error", err)
	}
}

func (b *Bot) editEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		log.Error("Failed to edit interaction response", "error", err)
	}
}

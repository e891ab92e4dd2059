package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/codeforces"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/duel"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/pubsub"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/tournament"
)

// optionMap indexes the interaction's options by name.
func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

// invokingUser returns the user who triggered the interaction, whether
// it came from a guild or a DM.
func invokingUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

func mention(userID string) string {
	return "<@" + userID + ">"
}

func (b *Bot) handlePing(s *discordgo.Session, i *discordgo.InteractionCreate) {
	latency := s.HeartbeatLatency().Milliseconds()
	b.respondEmbed(s, i, messageEmbed(fmt.Sprintf("Pong! Latency: %dms", latency)), true)
}

func (b *Bot) handleAbout(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.respondEmbed(s, i, aboutEmbed(), true)
}

func (b *Bot) handleHandleSet(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i)
	cfHandle := opts["handle"].StringValue()

	target := invokingUser(i)
	if opt, ok := opts["member"]; ok {
		target = opt.UserValue(s)
	}

	// Registering the bot itself is guarded explicitly, not looked up.
	if target.ID == b.botUserID {
		b.respondEmbed(s, i, messageEmbed(msgNoAccount), true)
		return
	}

	b.deferEphemeral(s, i)
	embed := b.registerEmbed(context.Background(), target.ID, cfHandle)
	b.editEmbed(s, i, embed)
}

func (b *Bot) handleHandleGet(s *discordgo.Session, i *discordgo.InteractionCreate) {
	target := optionMap(i)["member"].UserValue(s)

	b.deferEphemeral(s, i)
	embed := b.profileLookupEmbed(context.Background(), target.ID)
	b.editEmbed(s, i, embed)
}

// registerEmbed verifies and stores the member's handle, rendering the
// fetched profile on success.
func (b *Bot) registerEmbed(ctx context.Context, memberID, cfHandle string) *discordgo.MessageEmbed {
	b.metrics.IncLookups()
	user, err := b.registrar.Register(ctx, memberID, cfHandle)
	if err != nil {
		b.metrics.IncLookupFailures()
		b.logUnexpected("handle_set", err)
		return errorEmbed(err)
	}
	return profileEmbed(mention(memberID), user)
}

// profileLookupEmbed renders the profile for the member's registered handle.
func (b *Bot) profileLookupEmbed(ctx context.Context, memberID string) *discordgo.MessageEmbed {
	b.metrics.IncLookups()
	user, err := b.registrar.Profile(ctx, memberID)
	if err != nil {
		b.metrics.IncLookupFailures()
		b.logUnexpected("handle_get", err)
		return errorEmbed(err)
	}
	return profileEmbed(mention(memberID), user)
}

func (b *Bot) handleDuelChallenge(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i)

	rating := int(opts["rating"].IntValue())
	if rating <= 0 {
		b.respondEmbed(s, i, messageEmbed("Rating should be a positive integer"), true)
		return
	}

	req := duel.Request{
		GuildID:      i.GuildID,
		ChallengerID: invokingUser(i).ID,
		Rating:       rating,
	}
	if opt, ok := opts["tag"]; ok {
		tag := opt.StringValue()
		if !codeforces.IsValidTag(tag) {
			b.respondEmbed(s, i, messageEmbed("Unknown problem tag"), true)
			return
		}
		req.Tag = &tag
	}
	if opt, ok := opts["opponent"]; ok {
		opponentID := opt.UserValue(s).ID
		req.OpponentID = &opponentID
	}

	embed, accepted, err := b.duelChallengeEmbed(req)
	if err != nil {
		b.metrics.IncCommandErrors()
		log.Error("duel_challenge failed", "error", err, "guild", i.GuildID)
		b.respondEmbed(s, i, errorEmbed(err), true)
		return
	}
	// An accepted challenge is announced to the guild; a conflict is
	// only shown to the challenger.
	b.respondEmbed(s, i, embed, !accepted)
}

// duelChallengeEmbed runs the admission gate and renders the outcome.
func (b *Bot) duelChallengeEmbed(req duel.Request) (*discordgo.MessageEmbed, bool, error) {
	accepted, existing, err := b.duels.TryOpen(req)
	if err != nil {
		return nil, false, err
	}

	if !accepted {
		b.metrics.IncDuelsRejected()
		description := fmt.Sprintf(
			"A duel is already pending in this server: %s challenged %s at rating %d",
			mention(existing.ChallengerID), opponentLabel(existing.OpponentID), existing.Rating,
		)
		return messageEmbed(description), false, nil
	}

	b.metrics.IncDuelsOpened()
	b.publishDuelEvent(pubsub.DuelEvent{
		Action:       pubsub.ActionOpened,
		GuildID:      req.GuildID,
		ChallengerID: req.ChallengerID,
		OpponentID:   req.OpponentID,
		Rating:       req.Rating,
		Tag:          req.Tag,
	})

	description := fmt.Sprintf("%s challenges %s to a duel at rating %d", mention(req.ChallengerID), opponentLabel(req.OpponentID), req.Rating)
	if req.Tag != nil {
		description += fmt.Sprintf(" (tag: %s)", *req.Tag)
	}
	return messageEmbed(description), true, nil
}

func opponentLabel(opponentID *string) string {
	if opponentID == nil {
		return "anyone in this server"
	}
	return mention(*opponentID)
}

func (b *Bot) handleDuelWithdraw(s *discordgo.Session, i *discordgo.InteractionCreate) {
	embed, err := b.duelWithdrawEmbed(i.GuildID)
	if err != nil {
		b.metrics.IncCommandErrors()
		log.Error("duel_withdraw failed", "error", err, "guild", i.GuildID)
		b.respondEmbed(s, i, errorEmbed(err), true)
		return
	}
	b.respondEmbed(s, i, embed, true)
}

// duelWithdrawEmbed closes the pending duel if any. Withdrawing with
// none pending is reported, not treated as an error.
func (b *Bot) duelWithdrawEmbed(guildID string) (*discordgo.MessageEmbed, error) {
	closed, err := b.duels.Close(guildID)
	if err != nil {
		return nil, err
	}
	if !closed {
		return messageEmbed("There is no pending duel in this server"), nil
	}

	b.publishDuelEvent(pubsub.DuelEvent{
		Action:  pubsub.ActionWithdrawn,
		GuildID: guildID,
	})
	return messageEmbed("The pending duel has been withdrawn"), nil
}

func (b *Bot) handleTournamentCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	input := optionMap(i)["n"].StringValue()

	if _, err := tournament.ValidateSize(input); err != nil {
		b.respondEmbed(s, i, errorEmbed(err), true)
		return
	}

	// TODO: create the bracket once tournament execution is built.
	b.respondEmbed(s, i, messageEmbed(msgNotImplemented), true)
}

func (b *Bot) handleTournamentWithdraw(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.respondEmbed(s, i, messageEmbed(msgNotImplemented), true)
}

// publishDuelEvent sends the event when publishing is configured.
func (b *Bot) publishDuelEvent(event pubsub.DuelEvent) {
	if b.events == nil {
		return
	}
	if err := b.events.PublishDuelEvent(context.Background(), event); err != nil {
		log.Error("Failed to publish duel event", "error", err, "action", event.Action)
	}
}

// logUnexpected logs errors that are not part of the user-facing
// taxonomy; expected failures are only rendered, never logged as faults.
func (b *Bot) logUnexpected(command string, err error) {
	if isUserFacing(err) {
		return
	}
	b.metrics.IncCommandErrors()
	log.Error("Command failed", "command", command, "error", err)
}

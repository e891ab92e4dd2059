package bot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/codeforces"
)

// buildTagChoices exposes the fixed problem tag set as option choices.
// Discord caps choices at 25 per option, which the tag set matches.
func buildTagChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(codeforces.Tags))
	for i, tag := range codeforces.Tags {
		choices[i] = &discordgo.ApplicationCommandOptionChoice{
			Name:  tag,
			Value: tag,
		}
	}
	return choices
}

// Slash command definitions
func (b *Bot) getCommandDefinitions() []*discordgo.ApplicationCommand {
	moderatorOnly := int64(discordgo.PermissionModerateMembers)

	return []*discordgo.ApplicationCommand{
		{
			Name:        "ping",
			Description: "Check the bot's latency",
		},
		{
			Name:        "handle_set",
			Description: "Register/change your codeforces handle",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "handle",
					Description: "Codeforces handle",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "member",
					Description: "Member of this server",
					Required:    false,
				},
			},
		},
		{
			Name:        "handle_get",
			Description: "Look up a member's codeforces profile",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "member",
					Description: "Member of this server",
					Required:    true,
				},
			},
		},
		{
			Name:        "duel_challenge",
			Description: "Challenge an opponent to a duel",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "rating",
					Description: "Rating of problem",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "tag",
					Description: "Problem tag",
					Required:    false,
					Choices:     buildTagChoices(),
				},
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "opponent",
					Description: "Member of this server",
					Required:    false,
				},
			},
		},
		{
			Name:        "duel_withdraw",
			Description: "Withdraw the pending duel",
		},
		{
			Name:        "tournament_create",
			Description: "Create a new tournament",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "n",
					Description: "Number of players",
					Required:    true,
				},
			},
		},
		{
			Name:                     "tournament_withdraw",
			Description:              "Cancel the current tournament",
			DefaultMemberPermissions: &moderatorOnly,
		},
		{
			Name:        "about",
			Description: "Get to know খেলিলি আইয়ুন",
		},
	}
}

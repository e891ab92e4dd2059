package bot

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/codeforces"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/handle"
	"github.com/cuet-dev-corpse/khelile-ayyun/internal/tournament"
)

// profileField is one row of the profile embed. The accessor returns the
// display value and whether the field should be shown at all. Keeping
// this list static makes the ignored fields (avatar, names) explicit
// instead of relying on reflection over the profile struct.
type profileField struct {
	name  string
	value func(u *codeforces.User) (string, bool)
}

var profileFields = []profileField{
	{"Rating", func(u *codeforces.User) (string, bool) {
		if u.Rating == nil {
			return "Unrated", true
		}
		return strconv.Itoa(*u.Rating), true
	}},
	{"Max Rating", func(u *codeforces.User) (string, bool) {
		if u.MaxRating == nil {
			return "", false
		}
		return strconv.Itoa(*u.MaxRating), true
	}},
	{"Rank", func(u *codeforces.User) (string, bool) {
		return u.Rank, u.Rank != ""
	}},
	{"Max Rank", func(u *codeforces.User) (string, bool) {
		return u.MaxRank, u.MaxRank != ""
	}},
	{"Contribution", func(u *codeforces.User) (string, bool) {
		return strconv.Itoa(u.Contribution), true
	}},
	{"Friend Of", func(u *codeforces.User) (string, bool) {
		return strconv.Itoa(u.FriendOf), u.FriendOf > 0
	}},
	{"Organization", func(u *codeforces.User) (string, bool) {
		return u.Organization, u.Organization != ""
	}},
	{"Country", func(u *codeforces.User) (string, bool) {
		return u.Country, u.Country != ""
	}},
	{"City", func(u *codeforces.User) (string, bool) {
		return u.City, u.City != ""
	}},
}

// profileEmbed renders a Codeforces profile for the mentioned member.
func profileEmbed(mention string, u *codeforces.User) *discordgo.MessageEmbed {
	var fields []*discordgo.MessageEmbedField
	for _, f := range profileFields {
		value, ok := f.value(u)
		if !ok {
			continue
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   f.name,
			Value:  value,
			Inline: true,
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       u.Handle,
		URL:         "https://codeforces.com/profile/" + u.Handle,
		Description: fmt.Sprintf("%s is registered as [%s](https://codeforces.com/profile/%s)", mention, u.Handle, u.Handle),
		Color:       primaryColor,
		Fields:      fields,
	}
	if u.Avatar != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: u.Avatar}
	}
	return embed
}

// messageEmbed wraps a plain description in the bot's embed style.
func messageEmbed(description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Description: description,
		Color:       primaryColor,
	}
}

// aboutEmbed is the static informational response.
func aboutEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       aboutTitle,
		Description: aboutDescription,
		Color:       primaryColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: aboutFooter},
	}
}

// isUserFacing reports whether err belongs to the expected user-facing
// taxonomy (validation, lookup, scope, permission, unregistered).
func isUserFacing(err error) bool {
	var lookupErr *codeforces.LookupError
	var validationErr *tournament.ValidationError
	var scopeErr *ScopeError
	var permissionErr *PermissionError
	return errors.As(err, &lookupErr) ||
		errors.As(err, &validationErr) ||
		errors.As(err, &scopeErr) ||
		errors.As(err, &permissionErr) ||
		errors.Is(err, handle.ErrNotRegistered)
}

// errorEmbed maps an error to a user-visible embed. Expected user-facing
// failures keep their message; anything else is reported generically so
// internal detail never leaks into the channel.
func errorEmbed(err error) *discordgo.MessageEmbed {
	var lookupErr *codeforces.LookupError
	var validationErr *tournament.ValidationError
	var scopeErr *ScopeError
	var permissionErr *PermissionError

	switch {
	case errors.As(err, &lookupErr):
		return messageEmbed(lookupErr.Error())
	case errors.As(err, &validationErr):
		return messageEmbed(msgTournamentSizeHelp)
	case errors.As(err, &scopeErr), errors.As(err, &permissionErr):
		return messageEmbed(err.Error())
	case errors.Is(err, handle.ErrNotRegistered):
		return messageEmbed("This member has not registered a handle yet. Use /handle_set first")
	default:
		return messageEmbed(msgGenericFailure)
	}
}

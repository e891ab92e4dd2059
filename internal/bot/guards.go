package bot

import "github.com/bwmarrin/discordgo"

// ScopeError is returned when a guild-scoped command is invoked outside
// a guild (e.g. in a DM).
type ScopeError struct{}

func (e *ScopeError) Error() string {
	return "This command can only be used in a server"
}

// PermissionError is returned when a moderator-only command is invoked
// by a member without the required permission.
type PermissionError struct{}

func (e *PermissionError) Error() string {
	return "You need the Moderate Members permission to use this command"
}

// guard is evaluated before a command handler runs. A non-nil error
// aborts the handler and is rendered to the invoking user.
type guard func(i *discordgo.InteractionCreate) error

// requireGuild rejects invocations outside a guild.
func requireGuild(i *discordgo.InteractionCreate) error {
	if i.GuildID == "" {
		return &ScopeError{}
	}
	return nil
}

// requireModerator rejects members without the Moderate Members permission.
func requireModerator(i *discordgo.InteractionCreate) error {
	if err := requireGuild(i); err != nil {
		return err
	}
	if i.Member == nil || i.Member.Permissions&discordgo.PermissionModerateMembers == 0 {
		return &PermissionError{}
	}
	return nil
}

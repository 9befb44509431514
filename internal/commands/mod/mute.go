// Package mod - /mod mute command
package mod

import (
	"fmt"
	"time"

	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/modlog"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/scheduler"
	"github.com/bwmarrin/discordgo"
)

// mutedRoleName is the role applied to muted members, created on demand
const mutedRoleName = "Muted"

// mutedRolePermissions is everything a muted member is still allowed to
// do: see channels and read history, nothing else.
const mutedRolePermissions = int64(discordgo.PermissionViewChannel | discordgo.PermissionReadMessageHistory)

// createMuteCommand creates the /mod mute subcommand
func createMuteCommand() *discord.Command {
	return discord.NewCommand(
		"mute",
		"Mute a member",
		"mod",
		muteHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to mute",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "minutes",
			Description: "Minutes until the mute lifts (0 = until unmuted)",
			Required:    false,
			MinValue:    func() *float64 { v := 0.0; return &v }(),
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the mute",
			Required:    false,
		},
	).AsStaff().WithBotPermissions(discordgo.PermissionManageRoles)
}

// findMutedRole returns the guild's muted role, or nil when absent
func findMutedRole(s *discordgo.Session, guildID string) (*discordgo.Role, error) {
	roles, err := s.GuildRoles(guildID)
	if err != nil {
		return nil, err
	}
	for _, role := range roles {
		if role.Name == mutedRoleName {
			return role, nil
		}
	}
	return nil, nil
}

// ensureMutedRole returns the muted role, creating it on first use
func ensureMutedRole(s *discordgo.Session, guildID string) (*discordgo.Role, error) {
	role, err := findMutedRole(s, guildID)
	if err != nil || role != nil {
		return role, err
	}

	perms := mutedRolePermissions
	role, err = s.GuildRoleCreate(guildID, &discordgo.RoleParams{
		Name:        mutedRoleName,
		Permissions: &perms,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Created the muted role in guild "+guildID, "CMD-Mute")
	return role, nil
}

// memberHasRole reports whether the member carries the given role id
func memberHasRole(member *discordgo.Member, roleID string) bool {
	for _, id := range member.Roles {
		if id == roleID {
			return true
		}
	}
	return false
}

// muteHandler handles the /mod mute command
func muteHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	minutes := ctx.GetIntOption("minutes")
	reason := ctx.GetStringOption("reason")
	if reason == "" {
		reason = "No reason given"
	}

	guildID := ctx.Interaction.GuildID

	role, err := ensureMutedRole(ctx.Session, guildID)
	if err != nil {
		logger.Error("Failed to ensure the muted role: "+err.Error(), "CMD-Mute")
		return ctx.ReplyEphemeral("❌ The muted role could not be created.")
	}

	member, err := ctx.Session.GuildMember(guildID, user.ID)
	if err != nil {
		return ctx.ReplyEphemeral("❌ That user is not a member of this server.")
	}

	if memberHasRole(member, role.ID) {
		return ctx.ReplyEphemeral(fmt.Sprintf("Member is already muted. Use `/mod unmute` to unmute **%s**.", user.Username))
	}

	if err := ctx.Session.GuildMemberRoleAdd(guildID, user.ID, role.ID); err != nil {
		logger.Error("Failed to assign the muted role: "+err.Error(), "CMD-Mute")
		return ctx.ReplyEphemeral("❌ The member could not be muted.")
	}

	durationText := "until unmuted"
	if minutes > 0 {
		durationText = fmt.Sprintf("for %d minute(s)", minutes)

		// Deferred unmute. Not durable, a restart drops it.
		session := ctx.Session
		roleID := role.ID
		userID := user.ID
		scheduler.Get().Schedule(time.Duration(minutes)*time.Minute, func() {
			if err := session.GuildMemberRoleRemove(guildID, userID, roleID); err != nil {
				logger.Warn("Deferred unmute failed: "+err.Error(), "CMD-Mute")
			}
		})
	}

	// Best-effort DM
	if dm, err := ctx.Session.UserChannelCreate(user.ID); err == nil {
		ctx.Session.ChannelMessageSend(dm.ID, fmt.Sprintf(
			"🔇 You have been muted in **%s** %s.\n**Reason:** %s",
			ctx.GuildName(), durationText, reason,
		))
	}

	modlog.Send(ctx.Session, guildID, modlog.Entry{
		Author:      ctx.User().Username,
		AuthorIcon:  ctx.User().AvatarURL(""),
		Thumbnail:   user.AvatarURL(""),
		Title:       "Member muted",
		Description: fmt.Sprintf("**%s** was muted %s.\n**Reason:** %s", user.Username, durationText, reason),
		Color:       modlog.ColorRemove,
	})

	return ctx.Reply(fmt.Sprintf("🔇 **%s** has been muted %s.\n**Reason:** %s", user.Username, durationText, reason))
}

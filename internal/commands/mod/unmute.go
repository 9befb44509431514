// Package mod - /mod unmute command
package mod

import (
	"fmt"

	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/modlog"
	"github.com/bwmarrin/discordgo"
)

// createUnmuteCommand creates the /mod unmute subcommand
func createUnmuteCommand() *discord.Command {
	return discord.NewCommand(
		"unmute",
		"Unmute a member",
		"mod",
		unmuteHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to unmute",
			Required:    true,
		},
	).AsStaff().WithBotPermissions(discordgo.PermissionManageRoles)
}

// unmuteHandler handles the /mod unmute command
func unmuteHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	guildID := ctx.Interaction.GuildID

	role, err := findMutedRole(ctx.Session, guildID)
	if err != nil {
		logger.Error("Failed to look up the muted role: "+err.Error(), "CMD-Unmute")
		return ctx.ReplyEphemeral("❌ The muted role could not be found.")
	}
	if role == nil {
		return ctx.ReplyEphemeral("This server has no muted role, nobody is muted.")
	}

	member, err := ctx.Session.GuildMember(guildID, user.ID)
	if err != nil {
		return ctx.ReplyEphemeral("❌ That user is not a member of this server.")
	}

	if !memberHasRole(member, role.ID) {
		return ctx.ReplyEphemeral(fmt.Sprintf("**%s** is not muted.", user.Username))
	}

	if err := ctx.Session.GuildMemberRoleRemove(guildID, user.ID, role.ID); err != nil {
		logger.Error("Failed to remove the muted role: "+err.Error(), "CMD-Unmute")
		return ctx.ReplyEphemeral("❌ The member could not be unmuted.")
	}

	// Best-effort DM
	if dm, err := ctx.Session.UserChannelCreate(user.ID); err == nil {
		ctx.Session.ChannelMessageSend(dm.ID, fmt.Sprintf("🔊 You have been unmuted in **%s**.", ctx.GuildName()))
	}

	modlog.Send(ctx.Session, guildID, modlog.Entry{
		Author:      ctx.User().Username,
		AuthorIcon:  ctx.User().AvatarURL(""),
		Thumbnail:   user.AvatarURL(""),
		Title:       "Member unmuted",
		Description: fmt.Sprintf("**%s** was unmuted.", user.Username),
		Color:       modlog.ColorAdd,
	})

	return ctx.Reply(fmt.Sprintf("🔊 **%s** has been unmuted.", user.Username))
}

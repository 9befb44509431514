// Package mod - /mod kick command
package mod

import (
	"fmt"

	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/modlog"
	"github.com/bwmarrin/discordgo"
)

// createKickCommand creates the /mod kick subcommand
func createKickCommand() *discord.Command {
	return discord.NewCommand(
		"kick",
		"Kick a member from the server",
		"mod",
		kickHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to kick",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the kick",
			Required:    false,
		},
	).AsStaff().WithBotPermissions(discordgo.PermissionKickMembers)
}

// kickHandler handles the /mod kick command. The member is removed
// first, notifying them afterwards is best effort only.
func kickHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	reason := ctx.GetStringOption("reason")
	if reason == "" {
		reason = "No reason given"
	}

	guildID := ctx.Interaction.GuildID

	if err := ctx.Session.GuildMemberDeleteWithReason(guildID, user.ID, reason); err != nil {
		logger.Error("Failed to kick a member: "+err.Error(), "CMD-Kick")
		return ctx.ReplyEphemeral("❌ The member could not be kicked.")
	}

	// Best-effort DM after removal
	if dm, err := ctx.Session.UserChannelCreate(user.ID); err == nil {
		ctx.Session.ChannelMessageSend(dm.ID, fmt.Sprintf(
			"👢 You have been kicked from **%s**.\n**Reason:** %s",
			ctx.GuildName(), reason,
		))
	}

	if err := ctx.ReplyEphemeral(fmt.Sprintf("👢 **%s** has been kicked.\n**Reason:** %s", user.Username, reason)); err != nil {
		logger.Warn("Could not confirm a kick to the moderator: "+err.Error(), "CMD-Kick")
	}

	modlog.Send(ctx.Session, guildID, modlog.Entry{
		Author:      ctx.User().Username,
		AuthorIcon:  ctx.User().AvatarURL(""),
		Thumbnail:   user.AvatarURL(""),
		Title:       "Member kicked",
		Description: fmt.Sprintf("**%s** was kicked.\n**Reason:** %s", user.Username, reason),
		Color:       modlog.ColorRemove,
	})

	return nil
}

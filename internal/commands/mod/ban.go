// Package mod - /mod ban command
package mod

import (
	"fmt"

	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/modlog"
	"github.com/bwmarrin/discordgo"
)

// createBanCommand creates the /mod ban subcommand
func createBanCommand() *discord.Command {
	return discord.NewCommand(
		"ban",
		"Ban a member from the server",
		"mod",
		banHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to ban",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the ban",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "delete_days",
			Description: "Days of message history to delete (0-7)",
			Required:    false,
			MinValue:    func() *float64 { v := 0.0; return &v }(),
			MaxValue:    7,
		},
	).AsStaff().WithBotPermissions(discordgo.PermissionBanMembers)
}

// banHandler handles the /mod ban command. The member is removed first,
// notifying them afterwards is best effort only.
func banHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	reason := ctx.GetStringOption("reason")
	if reason == "" {
		reason = "No reason given"
	}
	deleteDays := int(ctx.GetIntOption("delete_days"))

	guildID := ctx.Interaction.GuildID

	if err := ctx.Session.GuildBanCreateWithReason(guildID, user.ID, reason, deleteDays); err != nil {
		logger.Error("Failed to ban a member: "+err.Error(), "CMD-Ban")
		return ctx.ReplyEphemeral("❌ The member could not be banned.")
	}

	// Best-effort DM after removal
	if dm, err := ctx.Session.UserChannelCreate(user.ID); err == nil {
		ctx.Session.ChannelMessageSend(dm.ID, fmt.Sprintf(
			"🔨 You have been banned from **%s**.\n**Reason:** %s",
			ctx.GuildName(), reason,
		))
	}

	if err := ctx.ReplyEphemeral(fmt.Sprintf("🔨 **%s** has been banned.\n**Reason:** %s", user.Username, reason)); err != nil {
		logger.Warn("Could not confirm a ban to the moderator: "+err.Error(), "CMD-Ban")
	}

	modlog.Send(ctx.Session, guildID, modlog.Entry{
		Author:      ctx.User().Username,
		AuthorIcon:  ctx.User().AvatarURL(""),
		Thumbnail:   user.AvatarURL(""),
		Title:       "Member banned",
		Description: fmt.Sprintf("**%s** was banned.\n**Reason:** %s", user.Username, reason),
		Color:       0x8B0000, // Dark red
	})

	return nil
}

// Package setup - /set modlog command
package setup

import (
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/database"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createModlogCommand creates the /set modlog subcommand
func createModlogCommand() *discord.Command {
	return discord.NewCommand(
		"modlog",
		"Pick the channel for moderation audit messages",
		"setup",
		modlogHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "Text channel for the moderation log",
			Required:    true,
		},
	).AsStaff()
}

// modlogHandler handles /set modlog
func modlogHandler(ctx *discord.CommandContext) error {
	channel := ctx.GetChannelOption("channel")
	if channel == nil {
		return ctx.ReplyEphemeral("❌ You must specify a channel.")
	}
	if channel.Type != discordgo.ChannelTypeGuildText {
		return ctx.ReplyEphemeral("❌ The moderation log can only go to a text channel.")
	}

	if _, err := database.SetGuildSetting(ctx.Interaction.GuildID, "modlog", channel.ID); err != nil {
		logger.Error("Failed to store the modlog channel: "+err.Error(), "Setup")
		return ctx.ReplyEphemeral("❌ The moderation log channel could not be saved.")
	}

	return ctx.ReplyEphemeral("📋 Moderation actions will be logged in <#" + channel.ID + ">.")
}

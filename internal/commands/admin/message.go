// Package admin - /message command
package admin

import (
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createMessageCommand creates the /message command
func createMessageCommand() *discord.Command {
	return discord.NewCommand(
		"message",
		"Send a plain message as the bot",
		"admin",
		messageHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "Text channel to post in",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "text",
			Description: "Message text",
			Required:    true,
		},
	).AsStaff()
}

// messageHandler handles the /message command
func messageHandler(ctx *discord.CommandContext) error {
	channel := ctx.GetChannelOption("channel")
	if channel == nil {
		return ctx.ReplyEphemeral("❌ You must specify a channel.")
	}
	if channel.Type != discordgo.ChannelTypeGuildText {
		return ctx.ReplyEphemeral("❌ Messages can only go to a text channel.")
	}

	text := ctx.GetStringOption("text")
	if text == "" {
		return ctx.ReplyEphemeral("❌ The message text cannot be empty.")
	}

	if _, err := ctx.Session.ChannelMessageSend(channel.ID, text); err != nil {
		logger.Error("Failed to send a message: "+err.Error(), "CMD-Message")
		return ctx.ReplyEphemeral("❌ The message could not be sent.")
	}

	return ctx.ReplyEphemeral("✅ Message sent to <#" + channel.ID + ">.")
}

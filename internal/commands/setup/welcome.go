// Package setup - /set welcome subcommands
package setup

import (
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/database"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createWelcomeChannelCommand creates the /set welcome channel subcommand
func createWelcomeChannelCommand() *discord.Command {
	return discord.NewCommand(
		"channel",
		"Pick the channel for welcome messages",
		"setup",
		welcomeChannelHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "Text channel for welcome messages",
			Required:    true,
		},
	).AsStaff()
}

// createWelcomeOffCommand creates the /set welcome off subcommand
func createWelcomeOffCommand() *discord.Command {
	return discord.NewCommand(
		"off",
		"Turn welcome messages off",
		"setup",
		welcomeOffHandler,
	).AsStaff()
}

// createWelcomeMessageCommand creates the /set welcome message subcommand
func createWelcomeMessageCommand() *discord.Command {
	return discord.NewCommand(
		"message",
		"Set the welcome message template",
		"setup",
		welcomeMessageHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "template",
			Description: "Welcome text, @u mentions the new member",
			Required:    true,
		},
	).AsStaff()
}

// welcomeChannelHandler handles /set welcome channel
func welcomeChannelHandler(ctx *discord.CommandContext) error {
	channel := ctx.GetChannelOption("channel")
	if channel == nil {
		return ctx.ReplyEphemeral("❌ You must specify a channel.")
	}
	if channel.Type != discordgo.ChannelTypeGuildText {
		return ctx.ReplyEphemeral("❌ Welcome messages can only go to a text channel.")
	}

	if _, err := database.SetGuildSetting(ctx.Interaction.GuildID, "welcomeChannel", channel.ID); err != nil {
		logger.Error("Failed to store the welcome channel: "+err.Error(), "Setup")
		return ctx.ReplyEphemeral("❌ The welcome channel could not be saved.")
	}

	return ctx.ReplyEphemeral("👋 Welcome messages will go to <#" + channel.ID + ">.")
}

// welcomeOffHandler handles /set welcome off. Only the template is
// cleared, the stored channel stays for when it gets turned back on.
func welcomeOffHandler(ctx *discord.CommandContext) error {
	if _, err := database.SetGuildSetting(ctx.Interaction.GuildID, "welcomeMessage", ""); err != nil {
		logger.Error("Failed to clear the welcome message: "+err.Error(), "Setup")
		return ctx.ReplyEphemeral("❌ The welcome message could not be turned off.")
	}

	return ctx.ReplyEphemeral("👋 Welcome messages are now off.")
}

// welcomeMessageHandler handles /set welcome message
func welcomeMessageHandler(ctx *discord.CommandContext) error {
	template := ctx.GetStringOption("template")
	if template == "" {
		return ctx.ReplyEphemeral("❌ The welcome message cannot be empty.")
	}

	if _, err := database.SetGuildSetting(ctx.Interaction.GuildID, "welcomeMessage", template); err != nil {
		logger.Error("Failed to store the welcome message: "+err.Error(), "Setup")
		return ctx.ReplyEphemeral("❌ The welcome message could not be saved.")
	}

	return ctx.ReplyEphemeral("👋 Welcome message saved.")
}

// Package textcmds - !sm and !se commands
package textcmds

import (
	"strings"

	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createSendMessageCommand creates the !sm text command
func createSendMessageCommand() *discord.TextCommand {
	return &discord.TextCommand{
		Name:          "sm",
		Description:   "Sends a plain message to the target channel",
		RequiresStaff: true,
		Run:           sendMessageHandler,
	}
}

// createSendEmbedCommand creates the !se text command
func createSendEmbedCommand() *discord.TextCommand {
	return &discord.TextCommand{
		Name:          "se",
		Description:   "Sends an embed to the target channel",
		RequiresStaff: true,
		Run:           sendEmbedHandler,
	}
}

// sendMessageHandler handles !sm <channel> <text>
func sendMessageHandler(ctx *discord.TextCommandContext) error {
	channelID, text, ok := splitChannelMention(ctx.Args)
	if !ok || text == "" {
		return ctx.Reply("Usage: !sm <channel> <text>")
	}

	channel, err := ctx.Session.Channel(channelID)
	if err != nil || channel.Type != discordgo.ChannelTypeGuildText {
		return ctx.Reply("<channel> must be a text channel.\n\nUsage: !sm <channel> <text>")
	}

	if _, err := ctx.Session.ChannelMessageSend(channel.ID, text); err != nil {
		logger.Error("Failed to send a message: "+err.Error(), "TXT-SendMessage")
		return ctx.Reply("The message could not be sent.")
	}

	return nil
}

// sendEmbedHandler handles !se <channel> <title> | <description>
func sendEmbedHandler(ctx *discord.TextCommandContext) error {
	channelID, rest, ok := splitChannelMention(ctx.Args)
	if !ok || rest == "" {
		return ctx.Reply("Usage: !se <channel> <title> | <description>")
	}

	title, description, found := strings.Cut(rest, "|")
	if !found {
		return ctx.Reply("Usage: !se <channel> <title> | <description>")
	}
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return ctx.Reply("Usage: !se <channel> <title> | <description>")
	}

	channel, err := ctx.Session.Channel(channelID)
	if err != nil || channel.Type != discordgo.ChannelTypeGuildText {
		return ctx.Reply("<channel> must be a text channel.\n\nUsage: !se <channel> <title> | <description>")
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       0x2F3136,
	}

	if _, err := ctx.Session.ChannelMessageSendEmbed(channel.ID, embed); err != nil {
		logger.Error("Failed to send an embed: "+err.Error(), "TXT-SendEmbed")
		return ctx.Reply("The embed could not be sent.")
	}

	return nil
}

// Package textcmds - !announce command
package textcmds

import (
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createAnnounceCommand creates the !announce text command
func createAnnounceCommand() *discord.TextCommand {
	return &discord.TextCommand{
		Name:          "announce",
		Description:   "Sends an announcement to the target channel",
		RequiresStaff: true,
		Run:           announceHandler,
	}
}

// announceHandler handles !announce <channel> <message>
func announceHandler(ctx *discord.TextCommandContext) error {
	channelID, message, ok := splitChannelMention(ctx.Args)
	if !ok || message == "" {
		return ctx.Reply("Usage: !announce <channel> <message>")
	}

	channel, err := ctx.Session.Channel(channelID)
	if err != nil {
		return ctx.Reply("<channel> not found.\n\nUsage: !announce <channel> <message>")
	}
	if channel.Type != discordgo.ChannelTypeGuildNews {
		return ctx.Reply("<channel> must be an announcement channel.\n\nUsage: !announce <channel> <message>")
	}

	if _, err := ctx.Session.ChannelMessageSend(channel.ID, message); err != nil {
		logger.Error("Failed to post an announcement: "+err.Error(), "TXT-Announce")
		return ctx.Reply("The announcement could not be posted.")
	}

	return nil
}

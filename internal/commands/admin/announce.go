// Package admin - /announce command
package admin

import (
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createAnnounceCommand creates the /announce command
func createAnnounceCommand() *discord.Command {
	return discord.NewCommand(
		"announce",
		"Post an announcement to a news channel",
		"admin",
		announceHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "News channel to post in",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "message",
			Description: "Announcement text",
			Required:    true,
		},
	).AsStaff()
}

// announceHandler handles the /announce command
func announceHandler(ctx *discord.CommandContext) error {
	channel := ctx.GetChannelOption("channel")
	if channel == nil {
		return ctx.ReplyEphemeral("❌ You must specify a channel.")
	}
	if channel.Type != discordgo.ChannelTypeGuildNews {
		return ctx.ReplyEphemeral("❌ Announcements can only go to a news channel.")
	}

	message := ctx.GetStringOption("message")
	if message == "" {
		return ctx.ReplyEphemeral("❌ The announcement text cannot be empty.")
	}

	if _, err := ctx.Session.ChannelMessageSend(channel.ID, message); err != nil {
		logger.Error("Failed to post an announcement: "+err.Error(), "CMD-Announce")
		return ctx.ReplyEphemeral("❌ The announcement could not be posted.")
	}

	return ctx.ReplyEphemeral("📢 Announcement posted in <#" + channel.ID + ">.")
}

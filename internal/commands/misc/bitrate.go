// Package misc - /bitrate command
package misc

import (
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/lang"
	"github.com/bwmarrin/discordgo"
)

// createBitrateCommand creates the /bitrate command
func createBitrateCommand() *discord.Command {
	return discord.NewCommand(
		"bitrate",
		"Returns the bitrate of a voice channel",
		"misc",
		bitrateHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "Voice or stage channel",
			Required:    true,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildVoice,
				discordgo.ChannelTypeGuildStageVoice,
			},
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "ephemeral",
			Description: "Visible only to you",
			Required:    false,
		},
	)
}

// bitrateHandler handles the /bitrate command
func bitrateHandler(ctx *discord.CommandContext) error {
	channel := ctx.GetChannelOption("channel")
	if channel == nil {
		return ctx.ReplyEphemeral("❌ You must specify a voice channel.")
	}
	if channel.Type != discordgo.ChannelTypeGuildVoice && channel.Type != discordgo.ChannelTypeGuildStageVoice {
		return ctx.ReplyEphemeral("❌ That is not a voice channel.")
	}

	text := lang.Get().GetString("bitrate_command", ctx.Language(), channel.Name, channel.Bitrate)

	if ctx.GetBoolOption("ephemeral") {
		return ctx.ReplyEphemeral(text)
	}
	return ctx.Reply(text)
}

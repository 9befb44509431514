// Package misc - /ping command
package misc

import (
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/lang"
	"github.com/bwmarrin/discordgo"
)

// createPingCommand creates the /ping command
func createPingCommand() *discord.Command {
	return discord.NewCommand(
		"ping",
		"Pings the bot and returns its latency",
		"misc",
		pingHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "ephemeral",
			Description: "Visible only to you",
			Required:    false,
		},
	)
}

// pingHandler handles the /ping command
func pingHandler(ctx *discord.CommandContext) error {
	latency := ctx.Session.HeartbeatLatency().Milliseconds()
	text := lang.Get().GetString("ping_command", ctx.Language(), latency)

	if ctx.GetBoolOption("ephemeral") {
		return ctx.ReplyEphemeral(text)
	}
	return ctx.Reply(text)
}

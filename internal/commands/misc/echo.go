// Package misc - /echo command
package misc

import (
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createEchoCommand creates the /echo command
func createEchoCommand() *discord.Command {
	return discord.NewCommand(
		"echo",
		"Repeat the input",
		"misc",
		echoHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "input",
			Description: "Text to repeat",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "mention",
			Description: "Mention the user",
			Required:    false,
		},
	)
}

// echoHandler handles the /echo command
func echoHandler(ctx *discord.CommandContext) error {
	input := ctx.GetStringOption("input")
	if input == "" {
		return ctx.ReplyEphemeral("❌ There is nothing to repeat.")
	}

	if ctx.GetBoolOption("mention") {
		input += " " + ctx.User().Mention()
	}

	return ctx.Reply(input)
}

// Package misc - /kalek command
package misc

import (
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
)

// kalekCopypasta is sacred and must not be edited
const kalekCopypasta = "If Kalek has a million fans, I am one of them. If Kalek has 5 fans, I am one of them. If Kalek has one fan, that one is me." +
	" If Kalek has no fans, I am no longer alive. If the world is against Kalek, I am against the world. Till my last breath, I'll love Kalek."

// createKalekCommand creates the /kalek command
func createKalekCommand() *discord.Command {
	return discord.NewCommand(
		"kalek",
		"Praises Kalek (the owner)",
		"misc",
		kalekHandler,
	)
}

// kalekHandler handles the /kalek command
func kalekHandler(ctx *discord.CommandContext) error {
	return ctx.Reply(kalekCopypasta)
}

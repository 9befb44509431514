// Package textcmds - !echo, !help and !kalek commands
package textcmds

import (
	"os"

	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
)

// kalekCopypasta is sacred and must not be edited
const kalekCopypasta = "If Kalek has a million fans, I am one of them. If Kalek has 5 fans, I am one of them. If Kalek has one fan, that one is me." +
	" If Kalek has no fans, I am no longer alive. If the world is against Kalek, I am against the world. Till my last breath, I'll love Kalek."

// createEchoCommand creates the !echo text command
func createEchoCommand() *discord.TextCommand {
	return &discord.TextCommand{
		Name:        "echo",
		Description: "Echoes a message",
		Run: func(ctx *discord.TextCommandContext) error {
			if ctx.Args == "" {
				return ctx.Reply("Usage: !echo <phrase>")
			}
			return ctx.Reply(ctx.Args)
		},
	}
}

// createHelpCommand creates the !help text command
func createHelpCommand() *discord.TextCommand {
	return &discord.TextCommand{
		Name:        "help",
		Description: "Lists all commands",
		Run: func(ctx *discord.TextCommandContext) error {
			data, err := os.ReadFile("help.txt")
			if err != nil {
				logger.Error("File not found: help.txt", "TXT-Help")
				return ctx.Reply("Unable to retrieve help list.")
			}
			return ctx.Reply(string(data))
		},
	}
}

// createKalekCommand creates the !kalek text command
func createKalekCommand() *discord.TextCommand {
	return &discord.TextCommand{
		Name:        "kalek",
		Description: "Praises Kalek (the owner)",
		Run: func(ctx *discord.TextCommandContext) error {
			return ctx.Reply(kalekCopypasta)
		},
	}
}

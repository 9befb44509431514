// Package misc - /help command
package misc

import (
	"os"

	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
)

// helpFile holds the command listing shipped next to the binary
const helpFile = "help.txt"

// readHelpText loads the help listing, with a fallback when missing
func readHelpText() string {
	data, err := os.ReadFile(helpFile)
	if err != nil {
		logger.Error("File not found: "+helpFile, "CMD-Help")
		return "Unable to retrieve help list."
	}
	return string(data)
}

// createHelpCommand creates the /help command
func createHelpCommand() *discord.Command {
	return discord.NewCommand(
		"help",
		"Lists all commands",
		"misc",
		helpHandler,
	)
}

// helpHandler handles the /help command
func helpHandler(ctx *discord.CommandContext) error {
	return ctx.Reply(readHelpText())
}

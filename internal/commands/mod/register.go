// Package mod provides moderation commands organized as subcommands under /mod
// Each command is in its own file for better organization
package mod

import (
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
)

// RegisterModCommands registers all moderation commands
func RegisterModCommands(client *discord.ExtendedClient) {
	warnCmd := createWarnCommand()
	muteCmd := createMuteCommand()
	unmuteCmd := createUnmuteCommand()
	kickCmd := createKickCommand()
	banCmd := createBanCommand()

	// Build the /mod command group with all subcommands
	modGroup := client.CommandHandler.BuildCommandGroup(
		"mod",
		"Moderation commands",
		warnCmd,
		muteCmd,
		unmuteCmd,
		kickCmd,
		banCmd,
	)
	client.CommandHandler.AddGlobalCommand(modGroup)

	// /warnings is its own group so viewing and clearing stay together
	warningsGroup := client.CommandHandler.BuildCommandGroup(
		"warnings",
		"View and manage warnings",
		createWarningsAllCommand(),
		createWarningsUserCommand(),
		createWarningsClearCommand(),
	)
	client.CommandHandler.AddGlobalCommand(warningsGroup)
}

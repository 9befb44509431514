// Package misc provides small utility and fun commands.
package misc

import (
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
)

// RegisterMiscCommands registers all misc commands
func RegisterMiscCommands(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createEchoCommand())
	client.CommandHandler.RegisterCommand(createPingCommand())
	client.CommandHandler.RegisterCommand(createBitrateCommand())
	client.CommandHandler.RegisterCommand(createHelpCommand())
	client.CommandHandler.RegisterCommand(createKalekCommand())
}

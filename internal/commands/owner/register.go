// Package owner provides commands restricted to the bot owner.
package owner

import (
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
)

// RegisterOwnerCommands registers all owner commands
func RegisterOwnerCommands(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createShutdownCommand())
	client.CommandHandler.RegisterCommand(createLeaveCommand())
}

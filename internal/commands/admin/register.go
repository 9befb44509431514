// Package admin provides staff commands for posting as the bot and for
// managing roles.
package admin

import (
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
)

// RegisterAdminCommands registers all admin commands
func RegisterAdminCommands(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createAnnounceCommand())
	client.CommandHandler.RegisterCommand(createEmbedCommand())
	client.CommandHandler.RegisterCommand(createMessageCommand())

	roleGroup := client.CommandHandler.BuildCommandGroup(
		"role",
		"Manage server roles",
		createRoleCreateCommand(),
		createRoleDeleteCommand(),
		createRoleAssignCommand(),
		createRoleUnassignCommand(),
		createRoleListCommand(),
		createRoleInfoCommand(),
	)
	client.CommandHandler.AddGlobalCommand(roleGroup)
}

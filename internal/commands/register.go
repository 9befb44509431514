// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category.
package commands

import (
	"github.com/KalekStudios/SleepDeprivedBotGo/internal/commands/admin"
	"github.com/KalekStudios/SleepDeprivedBotGo/internal/commands/dev"
	"github.com/KalekStudios/SleepDeprivedBotGo/internal/commands/misc"
	"github.com/KalekStudios/SleepDeprivedBotGo/internal/commands/mod"
	"github.com/KalekStudios/SleepDeprivedBotGo/internal/commands/owner"
	"github.com/KalekStudios/SleepDeprivedBotGo/internal/commands/setup"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	// Moderation (/mod warn|mute|unmute|kick|ban, /warnings)
	mod.RegisterModCommands(client)

	// Staff posting and role management (/announce, /embed, /message, /role)
	admin.RegisterAdminCommands(client)

	// Server configuration (/set language|prefix|modlog|welcome ...)
	setup.RegisterSetupCommands(client)

	// Misc (/echo, /ping, /bitrate, /help, /kalek)
	misc.RegisterMiscCommands(client)

	// Owner only (/shutdown, /leave)
	owner.RegisterOwnerCommands(client)

	// Dev guild only (/dev eval)
	dev.Register(client)
}

// Package setup provides the /set configuration commands and the
// language picker buttons.
package setup

import (
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// RegisterSetupCommands registers the /set command group and its
// component handlers
func RegisterSetupCommands(client *discord.ExtendedClient) {
	welcomeGroup := client.CommandHandler.BuildSubcommandGroup(
		"set",
		"welcome",
		"Configure the welcome flow",
		createWelcomeChannelCommand(),
		createWelcomeOffCommand(),
		createWelcomeMessageCommand(),
	)

	setGroup := client.CommandHandler.BuildCommandGroup(
		"set",
		"Configure the bot for this server",
		createLanguageCommand(),
		createModlogCommand(),
		createPrefixCommand(),
	)
	setGroup.Options = append(setGroup.Options, welcomeGroup)

	// Visible only to members who could plausibly run setup
	perms := int64(discordgo.PermissionAdministrator | discordgo.PermissionKickMembers)
	setGroup.DefaultMemberPermissions = &perms

	client.CommandHandler.AddGlobalCommand(setGroup)

	registerLanguageComponents(client)
}

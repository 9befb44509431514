// Package setup - /set prefix command
package setup

import (
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/database"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createPrefixCommand creates the /set prefix subcommand
func createPrefixCommand() *discord.Command {
	return discord.NewCommand(
		"prefix",
		"Set the prefix for text commands",
		"setup",
		prefixHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "prefix",
			Description: "New prefix, for example ! or ?",
			Required:    true,
			MaxLength:   5,
		},
	).AsStaff()
}

// prefixHandler handles /set prefix
func prefixHandler(ctx *discord.CommandContext) error {
	prefix := ctx.GetStringOption("prefix")
	if prefix == "" {
		return ctx.ReplyEphemeral("❌ The prefix cannot be empty.")
	}

	if _, err := database.SetGuildSetting(ctx.Interaction.GuildID, "prefix", prefix); err != nil {
		logger.Error("Failed to store the guild prefix: "+err.Error(), "Setup")
		return ctx.ReplyEphemeral("❌ The prefix could not be saved.")
	}

	return ctx.ReplyEphemeral("✅ Text commands now use the prefix `" + prefix + "`.")
}

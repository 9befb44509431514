// Package owner - /leave command
package owner

import (
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
)

// createLeaveCommand creates the /leave command
func createLeaveCommand() *discord.Command {
	return discord.NewCommand(
		"leave",
		"Leave this server",
		"owner",
		leaveHandler,
	).AsOwner()
}

// leaveHandler handles the /leave command
func leaveHandler(ctx *discord.CommandContext) error {
	guildName := ctx.GuildName()

	if err := ctx.ReplyEphemeral("Leaving **" + guildName + "**. Goodbye!"); err != nil {
		logger.Warn("Could not confirm leaving: "+err.Error(), "CMD-Leave")
	}

	if err := ctx.Session.GuildLeave(ctx.Interaction.GuildID); err != nil {
		logger.Error("Failed to leave guild "+ctx.Interaction.GuildID+": "+err.Error(), "CMD-Leave")
		return err
	}

	logger.Info("Left "+guildName, "CMD-Leave")
	return nil
}

// Package mod - /warnings subcommands
package mod

import (
	"fmt"
	"strings"
	"time"

	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/database"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createWarningsAllCommand creates the /warnings all subcommand
func createWarningsAllCommand() *discord.Command {
	return discord.NewCommand(
		"all",
		"Show every warning in this server",
		"mod",
		warningsAllHandler,
	).AsStaff()
}

// createWarningsUserCommand creates the /warnings user subcommand
func createWarningsUserCommand() *discord.Command {
	return discord.NewCommand(
		"user",
		"Show the warnings of a member",
		"mod",
		warningsUserHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to look up",
			Required:    true,
		},
	).AsStaff()
}

// createWarningsClearCommand creates the /warnings clear subcommand
func createWarningsClearCommand() *discord.Command {
	return discord.NewCommand(
		"clear",
		"Remove every warning of a member",
		"mod",
		warningsClearHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member whose warnings will be cleared",
			Required:    true,
		},
	).AsStaff()
}

// formatWarningLine renders one warning for an embed listing
func formatWarningLine(w *models.Warning) string {
	line := fmt.Sprintf("**%s** — %s (%s)", w.Username, w.Reason, w.Created.Format("2006-01-02"))
	if w.Expires != nil {
		if w.Expires.Before(time.Now()) {
			line += " *(expired)*"
		} else {
			line += fmt.Sprintf(" *(expires %s)*", w.Expires.Format("2006-01-02"))
		}
	}
	return line
}

// warningsAllHandler handles /warnings all
func warningsAllHandler(ctx *discord.CommandContext) error {
	warnings, err := database.GetGuildWarnings(ctx.Interaction.GuildID)
	if err != nil {
		logger.Error("Failed to read guild warnings: "+err.Error(), "CMD-Warnings")
		return ctx.ReplyEphemeral("❌ The warnings could not be loaded.")
	}

	if len(warnings) == 0 {
		return ctx.ReplyEphemeral("This server has no warnings. 🎉")
	}

	var sb strings.Builder
	for _, w := range warnings {
		sb.WriteString(formatWarningLine(w))
		sb.WriteString("\n")
	}

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Warnings in %s", ctx.GuildName()),
		Description: sb.String(),
		Color:       0xFFA500,
	})
}

// warningsUserHandler handles /warnings user
func warningsUserHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	warnings, err := database.GetUserWarnings(ctx.Interaction.GuildID, user.ID)
	if err != nil {
		logger.Error("Failed to read user warnings: "+err.Error(), "CMD-Warnings")
		return ctx.ReplyEphemeral("❌ The warnings could not be loaded.")
	}

	if len(warnings) == 0 {
		return ctx.ReplyEphemeral(fmt.Sprintf("**%s** has no warnings.", user.Username))
	}

	var sb strings.Builder
	for _, w := range warnings {
		sb.WriteString(formatWarningLine(w))
		sb.WriteString("\n")
	}

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Warnings of %s", user.Username),
		Description: sb.String(),
		Color:       0xFFA500,
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: user.AvatarURL("")},
	})
}

// warningsClearHandler handles /warnings clear
func warningsClearHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	removed, err := database.ClearWarnings(ctx.Interaction.GuildID, user.ID)
	if err != nil {
		logger.Error("Failed to clear warnings: "+err.Error(), "CMD-Warnings")
		return ctx.ReplyEphemeral("❌ The warnings could not be cleared.")
	}

	return ctx.ReplyEphemeral(fmt.Sprintf("🧹 Removed %d warning(s) from **%s**.", removed, user.Username))
}

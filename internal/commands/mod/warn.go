// Package mod - /mod warn command
package mod

import (
	"fmt"

	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/database"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/modlog"
	"github.com/bwmarrin/discordgo"
)

// createWarnCommand creates the /mod warn subcommand
func createWarnCommand() *discord.Command {
	return discord.NewCommand(
		"warn",
		"Warn a member",
		"mod",
		warnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to warn",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the warning",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "days",
			Description: "Days until the warning expires (0 = never)",
			Required:    false,
			MinValue:    func() *float64 { v := 0.0; return &v }(),
		},
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionChannel,
			Name:         "channel",
			Description:  "Channel to post the warning in. Leave blank to only DM the member.",
			Required:     false,
			ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
		},
	).AsStaff()
}

// warnHandler handles the /mod warn command
func warnHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	reason := ctx.GetStringOption("reason")
	days := int(ctx.GetIntOption("days"))

	warning, err := database.CreateWarning(
		user.ID,
		user.Username,
		ctx.Interaction.GuildID,
		ctx.GuildName(),
		reason,
		days,
	)
	if err != nil {
		logger.Error("Failed to store a warning: "+err.Error(), "CMD-Warn")
		return ctx.ReplyEphemeral("❌ The warning could not be saved.")
	}

	// Count includes the warning just created
	count := 1
	if all, err := database.GetUserWarnings(ctx.Interaction.GuildID, user.ID); err == nil {
		count = len(all)
	}

	notice := &discordgo.MessageEmbed{
		Title: "Warning",
		Description: fmt.Sprintf(
			"You have received a warning from the %s moderation team.\n\n**Reason:**\n%s\n\nYou now have %d active warning(s).",
			ctx.GuildName(), warning.Reason, count,
		),
		Color: modlog.ColorAction,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: user.AvatarURL(""),
		},
	}

	// Best-effort DM, the warning stands either way
	if dm, err := ctx.Session.UserChannelCreate(user.ID); err == nil {
		ctx.Session.ChannelMessageSendEmbed(dm.ID, notice)
	}

	// Optionally post the warning publicly
	if channel := ctx.GetChannelOption("channel"); channel != nil {
		ctx.Session.ChannelMessageSendComplex(channel.ID, &discordgo.MessageSend{
			Content: user.Mention(),
			Embed:   notice,
		})
	}

	modlog.Send(ctx.Session, ctx.Interaction.GuildID, modlog.Entry{
		Author:      ctx.User().Username,
		AuthorIcon:  ctx.User().AvatarURL(""),
		Thumbnail:   user.AvatarURL(""),
		Title:       "Member warned",
		Description: fmt.Sprintf("**%s** was warned.\n**Reason:** %s", user.Username, warning.Reason),
		Color:       modlog.ColorAction,
	})

	return ctx.ReplyEphemeral(fmt.Sprintf(
		"⚠️ **%s** has been warned.\n**Reason:** %s\nThey now have %d warning(s).",
		user.Username, warning.Reason, count,
	))
}

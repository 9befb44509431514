// Package admin - /embed command
package admin

import (
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// embedColors maps the color choice names to embed color values
var embedColors = map[string]int{
	"default": 0x2F3136,
	"blue":    0x3498DB,
	"red":     0xE74C3C,
	"green":   0x2ECC71,
	"orange":  0xE67E22,
	"gold":    0xF1C40F,
}

// embedColorChoices builds the option choices from embedColors
func embedColorChoices() []*discordgo.ApplicationCommandOptionChoice {
	names := []string{"default", "blue", "red", "green", "orange", "gold"}
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(names))
	for _, name := range names {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  name,
			Value: name,
		})
	}
	return choices
}

// createEmbedCommand creates the /embed command
func createEmbedCommand() *discord.Command {
	return discord.NewCommand(
		"embed",
		"Post an embed as the bot",
		"admin",
		embedHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "Text channel to post in",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "title",
			Description: "Embed title",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "description",
			Description: "Embed body",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "color",
			Description: "Embed color",
			Required:    false,
			Choices:     embedColorChoices(),
		},
	).AsStaff()
}

// embedHandler handles the /embed command
func embedHandler(ctx *discord.CommandContext) error {
	channel := ctx.GetChannelOption("channel")
	if channel == nil {
		return ctx.ReplyEphemeral("❌ You must specify a channel.")
	}
	if channel.Type != discordgo.ChannelTypeGuildText {
		return ctx.ReplyEphemeral("❌ Embeds can only go to a text channel.")
	}

	title := ctx.GetStringOption("title")
	description := ctx.GetStringOption("description")
	if title == "" || description == "" {
		return ctx.ReplyEphemeral("❌ The embed needs a title and a description.")
	}

	color, ok := embedColors[ctx.GetStringOption("color")]
	if !ok {
		color = embedColors["default"]
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
	}

	if _, err := ctx.Session.ChannelMessageSendEmbed(channel.ID, embed); err != nil {
		logger.Error("Failed to post an embed: "+err.Error(), "CMD-Embed")
		return ctx.ReplyEphemeral("❌ The embed could not be posted.")
	}

	return ctx.ReplyEphemeral("✅ Embed posted in <#" + channel.ID + ">.")
}

// Package setup - /set language command and its buttons
package setup

import (
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/database"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/lang"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// Custom ids of the language picker buttons
const (
	buttonLangEN = "setup_lang_en"
	buttonLangES = "setup_lang_es"
	buttonLangFR = "setup_lang_fr"
	buttonFinish = "setup_finish"
)

// pickerOption pairs a button with the language it stores and the
// confirmation shown in that language
type pickerOption struct {
	language     string
	confirmation string
}

var pickerOptions = map[string]pickerOption{
	buttonLangEN: {"en", "Your preferred language has been set to English✅"},
	buttonLangES: {"es", "Su idioma preferido se ha establecido en Español✅"},
	buttonLangFR: {"fr", "Votre langue préférée a été définie sur le Français✅"},
}

// createLanguageCommand creates the /set language subcommand
func createLanguageCommand() *discord.Command {
	return discord.NewCommand(
		"language",
		"Pick the bot language for this server",
		"setup",
		languageHandler,
	).AsStaff()
}

// languageHandler posts the language picker
func languageHandler(ctx *discord.CommandContext) error {
	desc := "Please select a language for this server.\n\n" +
		"Por favor seleccionar un idioma para este servidor.\n\n" +
		"Veuillez choisir une langue pour ce serveur."

	embed := &discordgo.MessageEmbed{
		Title:       "SleepDeprivedBot Setup",
		Description: desc,
		Color:       0x3498DB,
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "English", Style: discordgo.PrimaryButton, CustomID: buttonLangEN, Emoji: &discordgo.ComponentEmoji{Name: "🇬🇧"}},
				discordgo.Button{Label: "Español", Style: discordgo.PrimaryButton, CustomID: buttonLangES, Emoji: &discordgo.ComponentEmoji{Name: "🇪🇸"}},
				discordgo.Button{Label: "Français", Style: discordgo.PrimaryButton, CustomID: buttonLangFR, Emoji: &discordgo.ComponentEmoji{Name: "🇫🇷"}},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "Finish Setup", Style: discordgo.SuccessButton, CustomID: buttonFinish, Emoji: &discordgo.ComponentEmoji{Name: "✅"}},
			},
		},
	}

	return ctx.Session.InteractionRespond(ctx.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
}

// registerLanguageComponents wires the picker buttons into the client
func registerLanguageComponents(client *discord.ExtendedClient) {
	for customID, option := range pickerOptions {
		opt := option
		client.Components.Set(customID, func(ctx *discord.ComponentContext) error {
			return applyLanguage(ctx, opt)
		})
	}

	client.Components.Set(buttonFinish, func(ctx *discord.ComponentContext) error {
		settings, err := database.GetGuildSettings(ctx.Interaction.GuildID)
		language := lang.DefaultLanguage
		if err == nil && settings != nil {
			language = settings.Language
		}
		return ctx.Reply(lang.Get().GetString("setup_followup", language))
	})
}

// applyLanguage stores the picked language. Pressing the same button
// twice just rewrites the same value.
func applyLanguage(ctx *discord.ComponentContext, opt pickerOption) error {
	if _, err := database.SetGuildSetting(ctx.Interaction.GuildID, "language", opt.language); err != nil {
		logger.Error("Failed to store the guild language: "+err.Error(), "Setup")
		return ctx.ReplyEphemeral("❌ The language could not be saved.")
	}

	return ctx.ReplyEphemeral(opt.confirmation)
}

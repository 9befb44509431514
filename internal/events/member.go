// Package events provides event handlers for member events
package events

import (
	"fmt"
	"strings"

	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/database"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterMemberEvents registers all member-related event handlers
func RegisterMemberEvents(client *discord.ExtendedClient) {
	client.EventHandler.OnGuildMemberAdd(onGuildMemberAdd)
	client.EventHandler.OnGuildMemberRemove(onGuildMemberRemove)
}

// substituteWelcome expands the @u placeholder in a welcome template
// with the new member's mention.
func substituteWelcome(template, mention string) string {
	return strings.ReplaceAll(template, "@u", mention)
}

// onGuildMemberAdd is called when a new member joins the server
func onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	logger.Info(fmt.Sprintf("👋 New member: %s in server %s", m.User.Username, m.GuildID), "Member")

	guildName := m.GuildID
	if guild, err := s.State.Guild(m.GuildID); err == nil {
		guildName = guild.Name
	}

	if _, err := database.CreateGuildUser(m.User.ID, m.User.Username, m.GuildID, guildName); err != nil {
		logger.Error(fmt.Sprintf("Failed to create the user record: %v", err), "Member")
	}

	settings, err := database.GetGuildSettings(m.GuildID)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to load guild settings: %v", err), "Member")
		return
	}

	// Welcomes are off unless both a channel and a message are configured
	if settings.WelcomeChannel == "" || settings.WelcomeMessage == "" {
		return
	}

	welcome := substituteWelcome(settings.WelcomeMessage, m.User.Mention())
	if _, err := s.ChannelMessageSend(settings.WelcomeChannel, welcome); err != nil {
		logger.Error(fmt.Sprintf("Failed to send the welcome message: %v", err), "Member")
	}
}

// onGuildMemberRemove is called when a member leaves the server
func onGuildMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	logger.Info(fmt.Sprintf("👋 Member left: %s from server %s", m.User.Username, m.GuildID), "Member")

	if err := database.DeleteGuildUser(m.GuildID, m.User.ID); err != nil {
		logger.Error(fmt.Sprintf("Failed to delete the user record: %v", err), "Member")
	}
}

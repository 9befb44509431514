// Package events provides event handlers for guild (server) events
package events

import (
	"fmt"
	"time"

	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/database"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterGuildEvents registers all guild-related event handlers
func RegisterGuildEvents(client *discord.ExtendedClient) {
	client.EventHandler.OnGuildCreate(onGuildCreate)
}

// onGuildCreate is called when the bot joins a server. GuildCreate also
// fires once per guild on connect, those are filtered by join time.
func onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	// Make sure the guild has a settings document
	if _, err := database.GetGuildSettings(g.ID); err != nil {
		logger.Error(fmt.Sprintf("Failed to initialize settings for guild %s: %v", g.ID, err), "Guild")
	}

	if g.JoinedAt.Compare(time.Now().Add(-10*time.Second)) < 0 {
		return
	}

	logger.Info(fmt.Sprintf("➕ Bot added to server: %s (ID: %s)", g.Name, g.ID), "Guild")
	logger.Debug(fmt.Sprintf("   Members: %d | Channels: %d", g.MemberCount, len(g.Channels)), "Guild")

	if g.SystemChannelID == "" {
		return
	}

	helloEmbed := &discordgo.MessageEmbed{
		Title:       "Thanks for adding me! 🎉",
		Description: "Hi, I am **SleepDeprivedBot**. Run `/set` to configure me and `/help` to see all my commands.",
		Color:       0x2ECC71,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "🔧 Moderation",
				Value:  "Warn, mute, kick and ban with `/mod`",
				Inline: true,
			},
			{
				Name:   "⚙️ Setup",
				Value:  "Language, modlog and welcomes with `/set`",
				Inline: true,
			},
			{
				Name:   "❓ Help",
				Value:  "Use `/help` for more information",
				Inline: true,
			},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if _, err := s.ChannelMessageSendEmbed(g.SystemChannelID, helloEmbed); err != nil {
		logger.Error(fmt.Sprintf("Failed to send the hello message: %v", err), "Guild")
	}
}

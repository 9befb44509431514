// Package events provides event handlers for message events
package events

import (
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// RegisterMessageEvents registers all message-related event handlers
func RegisterMessageEvents(client *discord.ExtendedClient) {
	client.EventHandler.OnMessageCreate(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		onMessageCreate(client, s, m)
	})
}

// onMessageCreate dispatches prefix commands
func onMessageCreate(client *discord.ExtendedClient, s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore bots and DMs
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	client.HandleMessage(s, m)
}

// Package events provides event handlers for the bot
package events

import (
	"fmt"

	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterReadyEvent registers the ready event handler
func RegisterReadyEvent(client *discord.ExtendedClient) {
	client.EventHandler.OnReady(onReady)
}

// onReady is called when the bot successfully connects to Discord.
// Command registration happens in the client itself, this handler only
// deals with presence and logging.
func onReady(s *discordgo.Session, r *discordgo.Ready) {
	logger.Info(fmt.Sprintf("📊 Connected to %d servers", len(r.Guilds)), "Ready")

	if err := s.UpdateWatchStatus(0, "over sleepy servers | /help"); err != nil {
		logger.Error(fmt.Sprintf("Failed to set the presence: %v", err), "Ready")
	}
}

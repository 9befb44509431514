// Package modlog posts moderation audit entries to each guild's
// configured modlog channel. Guilds without a modlog channel simply
// skip the audit, moderation actions never fail because of it.
package modlog

import (
	"fmt"
	"time"

	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/database"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
)

// Common embed colors for audit entries
const (
	ColorAction = 0xFFA500 // Orange, default for moderation actions
	ColorAdd    = 0x00FF00 // Green, something was granted or created
	ColorRemove = 0xFF0000 // Red, something was revoked or deleted
)

// Entry describes a single audit event
type Entry struct {
	Author      string
	AuthorIcon  string
	Thumbnail   string
	Title       string
	Description string
	Color       int
}

// mirrorMessage is the payload published to the MQTT modlog topic
type mirrorMessage struct {
	GuildID     string `json:"guildId"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

// buildEmbed turns an Entry into the Discord embed that gets posted
func buildEmbed(e Entry, now time.Time) *discordgo.MessageEmbed {
	color := e.Color
	if color == 0 {
		color = ColorAction
	}

	embed := &discordgo.MessageEmbed{
		Title:       e.Title,
		Description: e.Description,
		Color:       color,
		Timestamp:   now.Format(time.RFC3339),
	}

	if e.Author != "" {
		embed.Author = &discordgo.MessageEmbedAuthor{
			Name:    e.Author,
			IconURL: e.AuthorIcon,
		}
	}
	if e.Thumbnail != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: e.Thumbnail}
	}

	return embed
}

// Send posts an audit entry to the guild's modlog channel, if one is
// configured. Failures are logged and swallowed.
func Send(s *discordgo.Session, guildID string, e Entry) {
	settings, err := database.GetGuildSettings(guildID)
	if err != nil {
		logger.Warn(fmt.Sprintf("Could not load settings for guild %s: %v", guildID, err), "Modlog")
		return
	}

	if settings.Modlog != "" {
		embed := buildEmbed(e, time.Now())
		if _, err := s.ChannelMessageSendEmbed(settings.Modlog, embed); err != nil {
			logger.Warn(fmt.Sprintf("Could not post to the modlog channel of guild %s: %v", guildID, err), "Modlog")
		}
	}

	mirror(guildID, e)
}

// mirror publishes the entry to the MQTT modlog topic when a broker is
// connected.
func mirror(guildID string, e Entry) {
	c := mqtt.Get()
	if c == nil || !c.IsConnected() {
		return
	}

	msg := mirrorMessage{
		GuildID:     guildID,
		Author:      e.Author,
		Title:       e.Title,
		Description: e.Description,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	if err := c.Publish(mqtt.TopicModlog, msg); err != nil {
		logger.Error(fmt.Sprintf("Failed to mirror a modlog entry: %v", err), "Modlog")
	}
}

// Package textcmds provides the legacy prefix commands.
package textcmds

import (
	"strings"

	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
)

// RegisterAll registers all text commands with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	client.TextCommands.Set(createAnnounceCommand())
	client.TextCommands.Set(createSendMessageCommand())
	client.TextCommands.Set(createSendEmbedCommand())
	client.TextCommands.Set(createEchoCommand())
	client.TextCommands.Set(createHelpCommand())
	client.TextCommands.Set(createKalekCommand())
}

// splitChannelMention extracts a leading <#id> channel mention from the
// args, returning the channel id and the remaining text. Returns ok
// false when the args do not start with a channel mention.
func splitChannelMention(args string) (channelID, rest string, ok bool) {
	if !strings.HasPrefix(args, "<#") {
		return "", "", false
	}

	end := strings.Index(args, ">")
	if end < 3 {
		return "", "", false
	}

	channelID = args[2:end]
	for _, r := range channelID {
		if r < '0' || r > '9' {
			return "", "", false
		}
	}

	rest = strings.TrimSpace(args[end+1:])
	return channelID, rest, true
}

// Package discord provides dispatch for legacy prefix commands.
package discord

import (
	"strings"
	"sync"

	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// DefaultPrefix is used when a guild has no stored prefix
const DefaultPrefix = "!"

// TextCommandContext provides context for a prefix command
type TextCommandContext struct {
	Session *discordgo.Session
	Message *discordgo.MessageCreate
	Client  *ExtendedClient
	Args    string
}

// TextCommand represents a prefix command such as "!announce"
type TextCommand struct {
	Name          string
	Description   string
	RequiresStaff bool
	Run           TextCommandRunFunc
}

// TextCommandRunFunc is the function type for prefix command execution
type TextCommandRunFunc func(ctx *TextCommandContext) error

// TextCommandCollection holds registered prefix commands
type TextCommandCollection struct {
	commands map[string]*TextCommand
	mu       sync.RWMutex
}

// NewTextCommandCollection creates a new TextCommandCollection
func NewTextCommandCollection() *TextCommandCollection {
	return &TextCommandCollection{
		commands: make(map[string]*TextCommand),
	}
}

// Set adds or updates a prefix command
func (tc *TextCommandCollection) Set(cmd *TextCommand) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.commands[strings.ToLower(cmd.Name)] = cmd
}

// Get retrieves a prefix command by name
func (tc *TextCommandCollection) Get(name string) (*TextCommand, bool) {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	cmd, ok := tc.commands[strings.ToLower(name)]
	return cmd, ok
}

// Size returns the number of registered prefix commands
func (tc *TextCommandCollection) Size() int {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return len(tc.commands)
}

// parseTextCommand splits a message into command name and the remainder.
// Returns ok=false when the message does not start with the prefix or
// has nothing after it.
func parseTextCommand(content, prefix string) (name, args string, ok bool) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", "", false
	}

	rest := strings.TrimSpace(content[len(prefix):])
	if rest == "" {
		return "", "", false
	}

	parts := strings.SplitN(rest, " ", 2)
	name = strings.ToLower(parts[0])
	if len(parts) > 1 {
		args = strings.TrimSpace(parts[1])
	}
	return name, args, true
}

// HandleMessage dispatches a message to a prefix command, if any. Bot
// authors and DMs are ignored by the caller.
func (c *ExtendedClient) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	prefix := DefaultPrefix
	if settings, err := c.GuildSettings(m.GuildID); err == nil && settings != nil && settings.Prefix != "" {
		prefix = settings.Prefix
	}

	name, args, ok := parseTextCommand(m.Content, prefix)
	if !ok {
		return
	}

	cmd, found := c.TextCommands.Get(name)
	if !found {
		return
	}

	if cmd.RequiresStaff {
		// Member permissions are not populated on message events, resolve
		// them from state instead.
		perms, err := s.State.UserChannelPermissions(m.Author.ID, m.ChannelID)
		if err != nil {
			perms = 0
		}
		if !isStaff(perms, m.Author.ID, c.OwnerID()) {
			s.ChannelMessageSend(m.ChannelID, StaffRejectionMessage)
			return
		}
	}

	ctx := &TextCommandContext{
		Session: s,
		Message: m,
		Client:  c,
		Args:    args,
	}

	if err := cmd.Run(ctx); err != nil {
		logger.Error("Error executing text command "+name+": "+err.Error(), "Client")
	}
}

// Reply sends a message to the channel the command came from
func (ctx *TextCommandContext) Reply(content string) error {
	_, err := ctx.Session.ChannelMessageSend(ctx.Message.ChannelID, content)
	return err
}

// ReplyEmbed sends an embed to the channel the command came from
func (ctx *TextCommandContext) ReplyEmbed(embed *discordgo.MessageEmbed) error {
	_, err := ctx.Session.ChannelMessageSendEmbed(ctx.Message.ChannelID, embed)
	return err
}

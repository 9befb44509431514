// Package discord provides the Discord bot client and related structures.
// It wraps discordgo with additional functionality for command and event handling.
package discord

import (
	"fmt"
	"sync"
	"time"

	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/config"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/database"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/errors"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// StaffRejectionMessage is sent when a non-staff user runs a staff command
const StaffRejectionMessage = "You must be an admin or the bot owner."

// DiscordGoLogger wraps the custom logger to implement discordgo.Logger interface
// Note: discordgo.Logger is a function, not an interface
func init() {
	discordgo.Logger = func(msgL int, caller int, format string, a ...interface{}) {
		logger.Info(fmt.Sprintf(format, a...), "DiscordGo")
	}
}

// ExtendedClient wraps discordgo.Session with additional functionality
type ExtendedClient struct {
	Session        *discordgo.Session
	Commands       *CommandCollection
	CommandHandler *CommandHandler
	EventHandler   *EventHandler
	Components     *ComponentCollection
	TextCommands   *TextCommandCollection
	StartTime      time.Time
	ownerID        string
	mu             sync.RWMutex
	isReady        bool
}

// CommandCollection holds registered commands
type CommandCollection struct {
	commands map[string]*Command
	mu       sync.RWMutex
}

// NewCommandCollection creates a new CommandCollection
func NewCommandCollection() *CommandCollection {
	return &CommandCollection{
		commands: make(map[string]*Command),
	}
}

// Set adds or updates a command
func (cc *CommandCollection) Set(name string, cmd *Command) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.commands[name] = cmd
}

// Get retrieves a command by name
func (cc *CommandCollection) Get(name string) (*Command, bool) {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	cmd, ok := cc.commands[name]
	return cmd, ok
}

// Size returns the number of commands
func (cc *CommandCollection) Size() int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return len(cc.commands)
}

// All returns all commands
func (cc *CommandCollection) All() map[string]*Command {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	result := make(map[string]*Command)
	for k, v := range cc.commands {
		result[k] = v
	}
	return result
}

var (
	client *ExtendedClient
	once   sync.Once
)

// Init initializes the global Discord client
func Init(token string) (*ExtendedClient, error) {
	var err error
	once.Do(func() {
		client, err = NewClient(token)
	})
	return client, err
}

// Get returns the global Discord client
func Get() *ExtendedClient {
	return client
}

// NewClient creates a new ExtendedClient
func NewClient(token string) (*ExtendedClient, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}

	// Set intents. MessageContent is required for prefix commands.
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentMessageContent

	// Configure session
	session.SyncEvents = false
	session.StateEnabled = true
	session.LogLevel = discordgo.LogWarning

	c := &ExtendedClient{
		Session:      session,
		Commands:     NewCommandCollection(),
		Components:   NewComponentCollection(),
		TextCommands: NewTextCommandCollection(),
		isReady:      false,
	}

	// Initialize handlers
	c.CommandHandler = NewCommandHandler(c)
	c.EventHandler = NewEventHandler(c)

	return c, nil
}

// Start initializes and starts the bot
func (c *ExtendedClient) Start() error {
	// Add ready handler
	c.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		c.mu.Lock()
		c.isReady = true
		c.mu.Unlock()

		logger.Success("Bot connected as: "+r.User.Username, "Client")

		c.fetchOwner()

		// Register commands with Discord
		c.CommandHandler.RegisterCommands()
	})

	// Add interaction handler
	c.Session.AddHandler(c.handleInteraction)

	// Set start time
	c.StartTime = time.Now()

	// Open connection
	return c.Session.Open()
}

// fetchOwner resolves the application owner, used for owner-only commands
func (c *ExtendedClient) fetchOwner() {
	app, err := c.Session.Application("@me")
	if err != nil {
		logger.Warn("Could not fetch the application owner: "+err.Error(), "Client")
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if app.Team != nil && app.Team.OwnerID != "" {
		c.ownerID = app.Team.OwnerID
	} else if app.Owner != nil {
		c.ownerID = app.Owner.ID
	}
}

// OwnerID returns the application owner's user id, empty until ready
func (c *ExtendedClient) OwnerID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ownerID
}

// IsOwner reports whether the given user owns the bot application
func (c *ExtendedClient) IsOwner(userID string) bool {
	ownerID := c.OwnerID()
	return ownerID != "" && userID == ownerID
}

// isStaff decides whether a member may use moderation commands. Staff
// means Administrator, Moderate Members, or the application owner.
func isStaff(permissions int64, userID, ownerID string) bool {
	if permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}
	if permissions&discordgo.PermissionModerateMembers != 0 {
		return true
	}
	return ownerID != "" && userID == ownerID
}

// handleInteraction handles incoming Discord interactions
func (c *ExtendedClient) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	defer errors.RecoverMiddleware()()

	switch i.Type {
	case discordgo.InteractionMessageComponent:
		c.handleComponent(s, i)
		return
	case discordgo.InteractionApplicationCommand:
	default:
		return
	}

	data := i.ApplicationCommandData()
	commandName := resolveCommandName(data)

	cmd, ok := c.Commands.Get(commandName)
	if !ok {
		logger.Warn("Command not found: "+commandName, "Client")
		return
	}

	ctx := &CommandContext{
		Session:     s,
		Interaction: i,
		Client:      c,
	}

	// Preconditions
	if cmd.OwnerOnly && !c.IsOwner(ctx.User().ID) {
		ctx.ReplyEphemeral("Only the bot owner can use this command.")
		return
	}

	if cmd.RequiresStaff {
		member := ctx.Member()
		var perms int64
		if member != nil {
			perms = member.Permissions
		}
		if !isStaff(perms, ctx.User().ID, c.OwnerID()) {
			ctx.ReplyEphemeral(StaffRejectionMessage)
			return
		}
	}

	if cmd.UserPermissions != 0 {
		member := ctx.Member()
		if member == nil || member.Permissions&cmd.UserPermissions != cmd.UserPermissions {
			ctx.ReplyEphemeral("You do not have permission to use this command.")
			return
		}
	}

	c.runCommand(commandName, cmd, ctx)
}

// runCommand executes a handler and cleans up after a failure. A
// handler that deferred before failing leaves a provisional "thinking"
// response behind; deleting it is best effort.
func (c *ExtendedClient) runCommand(commandName string, cmd *Command, ctx *CommandContext) {
	if err := cmd.Run(ctx); err != nil {
		logger.Error("Error executing command "+commandName+": "+err.Error(), "Client")
		if h := errors.Get(); h != nil {
			h.IncrementError()
		}
		_ = ctx.DeleteReply()
	}
}

// resolveCommandName builds the dotted lookup name for an interaction,
// descending into subcommand groups: "set", "mod.warn", "role.member.add"
func resolveCommandName(data discordgo.ApplicationCommandInteractionData) string {
	commandName := data.Name

	if len(data.Options) > 0 {
		opt := data.Options[0]
		if opt.Type == discordgo.ApplicationCommandOptionSubCommandGroup {
			if len(opt.Options) > 0 {
				commandName = data.Name + "." + opt.Name + "." + opt.Options[0].Name
			}
		} else if opt.Type == discordgo.ApplicationCommandOptionSubCommand {
			commandName = data.Name + "." + opt.Name
		}
	}

	return commandName
}

// Stop stops the bot and closes the session
func (c *ExtendedClient) Stop() error {
	c.mu.Lock()
	c.isReady = false
	c.mu.Unlock()

	if c.Session != nil {
		return c.Session.Close()
	}
	return nil
}

// IsReady returns true if the bot is ready
func (c *ExtendedClient) IsReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isReady
}

// GuildCount returns the number of guilds the bot is in
func (c *ExtendedClient) GuildCount() int {
	if c.Session == nil || c.Session.State == nil {
		return 0
	}
	c.Session.State.RLock()
	defer c.Session.State.RUnlock()
	return len(c.Session.State.Guilds)
}

// GetConfig returns the bot configuration
func (c *ExtendedClient) GetConfig() *config.Config {
	return config.Get()
}

// GuildSettings returns the stored settings for a guild, creating the
// defaults on first access.
func (c *ExtendedClient) GuildSettings(guildID string) (*models.GuildSettings, error) {
	return database.GetGuildSettings(guildID)
}

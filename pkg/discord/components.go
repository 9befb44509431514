// Package discord provides dispatch for message component interactions.
package discord

import (
	"sync"

	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// ComponentContext provides context for a component interaction
type ComponentContext struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	Client      *ExtendedClient
	CustomID    string
}

// ComponentRunFunc handles a button or select menu interaction
type ComponentRunFunc func(ctx *ComponentContext) error

// ComponentCollection maps component custom ids to their handlers
type ComponentCollection struct {
	handlers map[string]ComponentRunFunc
	mu       sync.RWMutex
}

// NewComponentCollection creates a new ComponentCollection
func NewComponentCollection() *ComponentCollection {
	return &ComponentCollection{
		handlers: make(map[string]ComponentRunFunc),
	}
}

// Set registers a handler for a component custom id
func (cc *ComponentCollection) Set(customID string, fn ComponentRunFunc) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.handlers[customID] = fn
}

// Get retrieves the handler for a custom id
func (cc *ComponentCollection) Get(customID string) (ComponentRunFunc, bool) {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	fn, ok := cc.handlers[customID]
	return fn, ok
}

// handleComponent dispatches a component interaction by its custom id
func (c *ExtendedClient) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	fn, ok := c.Components.Get(customID)
	if !ok {
		logger.Warn("Component handler not found: "+customID, "Client")
		return
	}

	ctx := &ComponentContext{
		Session:     s,
		Interaction: i,
		Client:      c,
		CustomID:    customID,
	}

	if err := fn(ctx); err != nil {
		logger.Error("Error handling component "+customID+": "+err.Error(), "Client")
	}
}

// Update edits the message the component is attached to
func (ctx *ComponentContext) Update(content string) error {
	return ctx.Session.InteractionRespond(ctx.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
}

// UpdateWithComponents edits the message and replaces its components
func (ctx *ComponentContext) UpdateWithComponents(content string, components []discordgo.MessageComponent) error {
	return ctx.Session.InteractionRespond(ctx.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: components,
		},
	})
}

// Reply sends a new message in response to the component
func (ctx *ComponentContext) Reply(content string) error {
	return ctx.Session.InteractionRespond(ctx.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
}

// ReplyEphemeral sends an ephemeral reply visible only to the user
func (ctx *ComponentContext) ReplyEphemeral(content string) error {
	return ctx.Session.InteractionRespond(ctx.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// User returns the user who clicked the component
func (ctx *ComponentContext) User() *discordgo.User {
	if ctx.Interaction.Member != nil {
		return ctx.Interaction.Member.User
	}
	return ctx.Interaction.User
}

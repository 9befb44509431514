// Package owner - /shutdown command
package owner

import (
	"os"
	"time"

	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
)

// createShutdownCommand creates the /shutdown command
func createShutdownCommand() *discord.Command {
	return discord.NewCommand(
		"shutdown",
		"Shut down this bot",
		"owner",
		shutdownHandler,
	).AsOwner()
}

// shutdownHandler handles the /shutdown command
func shutdownHandler(ctx *discord.CommandContext) error {
	logger.Warn("Shutting down by owner command...", "CMD-Shutdown")

	if err := ctx.Reply("Shutting down..."); err != nil {
		logger.Warn("Could not confirm the shutdown: "+err.Error(), "CMD-Shutdown")
	}

	// Give the reply a moment to reach Discord before closing
	go func() {
		time.Sleep(time.Second)
		ctx.Client.Stop()
		os.Exit(0)
	}()

	return nil
}

// Package main is the entry point for the SleepDeprivedBot Go application.
// It initializes all systems and starts the Discord bot.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/KalekStudios/SleepDeprivedBotGo/internal/commands"
	"github.com/KalekStudios/SleepDeprivedBotGo/internal/events"
	"github.com/KalekStudios/SleepDeprivedBotGo/internal/textcmds"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/config"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/database"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/errors"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/lang"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/mqtt"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/scheduler"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Starting SleepDeprivedBot Go...", "Main")
	logger.Info(fmt.Sprintf("Working directory: %s", getCurrentDir()), "Main")

	if cfg.BotToken == "" {
		logger.Critical("DISCORD_BOT_TOKEN is not set", "Main")
		os.Exit(1)
	}
	if cfg.MongoDBURL == "" {
		logger.Critical("MONGODB_CONNECTION_STRING is not set", "Main")
		os.Exit(1)
	}

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			_ = discordClient.Stop()
		}
	})

	// Initialize database
	db, err := database.Init(cfg.MongoDBURL, cfg.DBName)
	if err != nil {
		logger.Error(fmt.Sprintf("Error connecting to database: %v", err), "Main")
		// Continue without database, it will attempt to reconnect
	}
	defer func() {
		if db != nil {
			_ = db.Disconnect()
		}
	}()

	// Initialize global DataManagers
	if db != nil {
		database.InitGlobalDataManagers(db)
	}

	// Load localization tables
	lang.Init(cfg.LanguagesDir)

	// Initialize the deferred-action scheduler (timed unmutes)
	sched := scheduler.Init()
	defer sched.Stop()

	// Initialize MQTT if a broker is configured
	if cfg.MQTTEnabled() {
		mqttClientID := "sleepdeprivedbot"
		if !cfg.IsProd() {
			mqttClientID = "sleepdeprivedbot_canary"
		}

		mqttClient := mqtt.Init(
			cfg.MQTTHost,
			cfg.MQTTPort,
			cfg.MQTTUser,
			cfg.MQTTPassword,
			mqttClientID,
		)
		defer mqttClient.Destroy()
	}

	// Initialize web server
	webServer := web.Init(cfg.LogsWebhook)
	web.SetupAPIRoutes(webServer)
	webServer.StartAsync(cfg.Port)

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Register slash commands, text commands and events
	commands.RegisterAll(discordClient)
	textcmds.RegisterAll(discordClient)
	events.RegisterAll(discordClient)

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func() {
		_ = discordClient.Stop()
	}()

	if c := mqtt.Get(); c != nil {
		c.PublishStatus("ready")
	}

	logger.Success("SleepDeprivedBot Go started!", "Main")

	// Wait for an interrupt signal, or Q on stdin
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	quit := make(chan struct{})
	go watchStdin(quit)

	select {
	case <-sc:
	case <-quit:
	}

	logger.System("Shutting down SleepDeprivedBot Go...", "Main")
}

// watchStdin closes the quit channel when Q is typed on the console
func watchStdin(quit chan<- struct{}) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "Q" || line == "q" {
			close(quit)
			return
		}
	}
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}

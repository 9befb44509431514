package database

import (
	"errors"
	"fmt"

	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrGuildManagerNotInitialized = errors.New("guild data manager not initialized")
	ErrUnknownSetting             = errors.New("unknown setting key")
)

// settingFields maps the public setting keys to their document fields.
// Any key outside this map is rejected.
var settingFields = map[string]string{
	"prefix":         "prefix",
	"language":       "language",
	"welcomeChannel": "welcomeChannel",
	"welcomeMessage": "welcomeMessage",
	"modlog":         "modlog",
}

// GetGuildSettings returns the settings for a guild, creating the default
// document on first access.
func GetGuildSettings(guildID string) (*models.GuildSettings, error) {
	if GlobalGuildDM == nil {
		return nil, ErrGuildManagerNotInitialized
	}

	settings, err := GlobalGuildDM.Get(bson.M{"guildId": guildID})
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	// First time we see this guild, persist the defaults
	defaults := models.DefaultGuildSettings(guildID)
	created, err := GlobalGuildDM.Set(bson.M{"guildId": guildID}, defaults)
	if err != nil {
		return nil, err
	}
	if created == nil {
		// DB offline, the write was queued. Serve the defaults anyway.
		return &defaults, nil
	}
	return created, nil
}

// buildSettingUpdate translates a public setting key and value into the
// document update to apply. Returns ErrUnknownSetting for keys outside
// the allowed set.
func buildSettingUpdate(key, value string) (bson.M, error) {
	field, ok := settingFields[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSetting, key)
	}
	return bson.M{field: value}, nil
}

// SetGuildSetting updates a single setting for a guild. The settings
// document is created with defaults first if it does not exist yet.
func SetGuildSetting(guildID, key, value string) (*models.GuildSettings, error) {
	if GlobalGuildDM == nil {
		return nil, ErrGuildManagerNotInitialized
	}

	update, err := buildSettingUpdate(key, value)
	if err != nil {
		return nil, err
	}

	// Make sure the document exists so a partial update never produces
	// a settings document without the defaults.
	if _, err := GetGuildSettings(guildID); err != nil {
		return nil, err
	}

	return GlobalGuildDM.Set(bson.M{"guildId": guildID}, update)
}

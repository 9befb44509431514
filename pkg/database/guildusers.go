package database

import (
	"errors"

	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

var ErrUserManagerNotInitialized = errors.New("user data manager not initialized")

// GetGuildUser returns the stored record for a member of a guild, or nil
// if no record exists.
func GetGuildUser(guildID, userID string) (*models.GuildUser, error) {
	if GlobalUserDM == nil {
		return nil, ErrUserManagerNotInitialized
	}
	return GlobalUserDM.Get(bson.M{"guildId": guildID, "userId": userID})
}

// newGuildUser builds the starting profile for a member. New members
// begin at level 1 with no experience or currency.
func newGuildUser(userID, username, guildID, guildName string) models.GuildUser {
	return models.GuildUser{
		UserID:    userID,
		Username:  username,
		GuildID:   guildID,
		GuildName: guildName,
		Level:     1,
	}
}

// CreateGuildUser ensures a record exists for a member of a guild. An
// existing record is returned untouched so progress survives re-joins.
func CreateGuildUser(userID, username, guildID, guildName string) (*models.GuildUser, error) {
	if GlobalUserDM == nil {
		return nil, ErrUserManagerNotInitialized
	}

	if existing, err := GetGuildUser(guildID, userID); err == nil && existing != nil {
		return existing, nil
	}

	return GlobalUserDM.Set(bson.M{"guildId": guildID, "userId": userID}, newGuildUser(userID, username, guildID, guildName))
}

// DeleteGuildUser removes the record for a member that left a guild.
func DeleteGuildUser(guildID, userID string) error {
	if GlobalUserDM == nil {
		return ErrUserManagerNotInitialized
	}
	return GlobalUserDM.Delete(bson.M{"guildId": guildID, "userId": userID})
}

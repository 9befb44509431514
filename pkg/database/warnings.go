package database

import (
	"errors"
	"time"

	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

var ErrWarningManagerNotInitialized = errors.New("warning data manager not initialized")

// DefaultWarningReason is recorded when a moderator gives no reason.
const DefaultWarningReason = "No reason given"

// buildWarning assembles a warning document from its parts. A duration of
// zero or less means the warning never expires.
func buildWarning(userID, username, guildID, guildName, reason string, durationDays int, now time.Time) models.Warning {
	if reason == "" {
		reason = DefaultWarningReason
	}

	w := models.Warning{
		UserID:    userID,
		Username:  username,
		GuildID:   guildID,
		GuildName: guildName,
		Reason:    reason,
		Created:   now,
	}

	if durationDays > 0 {
		expires := now.AddDate(0, 0, durationDays)
		w.Expires = &expires
	}

	return w
}

// CreateWarning records a new warning against a user in a guild.
func CreateWarning(userID, username, guildID, guildName, reason string, durationDays int) (models.Warning, error) {
	w := buildWarning(userID, username, guildID, guildName, reason, durationDays, time.Now().UTC())

	if GlobalWarningDM == nil {
		return w, ErrWarningManagerNotInitialized
	}

	if err := GlobalWarningDM.Insert(w); err != nil {
		return w, err
	}
	return w, nil
}

// GetUserWarnings returns all warnings recorded for a user in a guild.
func GetUserWarnings(guildID, userID string) ([]*models.Warning, error) {
	if GlobalWarningDM == nil {
		return nil, ErrWarningManagerNotInitialized
	}
	return GlobalWarningDM.GetAll(bson.M{"guildId": guildID, "userId": userID})
}

// GetGuildWarnings returns all warnings recorded in a guild.
func GetGuildWarnings(guildID string) ([]*models.Warning, error) {
	if GlobalWarningDM == nil {
		return nil, ErrWarningManagerNotInitialized
	}
	return GlobalWarningDM.GetAll(bson.M{"guildId": guildID})
}

// DeleteWarning removes a single warning by id. Removing a warning that
// no longer exists is not an error.
func DeleteWarning(w *models.Warning) error {
	if GlobalWarningDM == nil {
		return ErrWarningManagerNotInitialized
	}
	return GlobalWarningDM.Delete(bson.M{"_id": w.ID})
}

// ClearWarnings removes every warning a user has in a guild and returns
// how many were removed.
func ClearWarnings(guildID, userID string) (int, error) {
	warnings, err := GetUserWarnings(guildID, userID)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, w := range warnings {
		if err := DeleteWarning(w); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// Package models contains the document types stored in MongoDB.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// GuildSettings is the per-guild configuration document in the "guilds"
// collection. A guild without a document behaves as if it held all the
// default values below; the settings store creates the document lazily
// on first read.
type GuildSettings struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	GuildID        string             `bson:"guildId" json:"guildId"`
	Prefix         string             `bson:"prefix" json:"prefix"`
	Language       string             `bson:"language" json:"language"`
	WelcomeChannel string             `bson:"welcomeChannel,omitempty" json:"welcomeChannel,omitempty"`
	WelcomeMessage string             `bson:"welcomeMessage,omitempty" json:"welcomeMessage,omitempty"`
	Modlog         string             `bson:"modlog,omitempty" json:"modlog,omitempty"`
}

// DefaultGuildSettings returns a settings document with default values
// for the given guild.
func DefaultGuildSettings(guildID string) GuildSettings {
	return GuildSettings{
		GuildID:  guildID,
		Prefix:   "!",
		Language: "en",
	}
}

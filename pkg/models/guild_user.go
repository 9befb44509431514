package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// GuildUser is the per-member profile document in the "users"
// collection. Level, experience and currency are reserved for a future
// leveling system; no command mutates them yet.
type GuildUser struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID     string             `bson:"userId" json:"userId"`
	Username   string             `bson:"username" json:"username"`
	GuildID    string             `bson:"guildId" json:"guildId"`
	GuildName  string             `bson:"guildName" json:"guildName"`
	Level      int                `bson:"level" json:"level"`
	Experience int                `bson:"experience" json:"experience"`
	Currency   int                `bson:"currency" json:"currency"`
}

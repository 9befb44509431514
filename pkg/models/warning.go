package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Warning is one moderation warning in the "warnings" collection. The
// username and guild name are denormalized snapshots taken when the
// warning was issued. Expires is only set when the warning was issued
// with a duration; there is no automatic expiry sweep, deletion is the
// only lifecycle terminus.
type Warning struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string             `bson:"userId" json:"userId"`
	Username  string             `bson:"username" json:"username"`
	GuildID   string             `bson:"guildId" json:"guildId"`
	GuildName string             `bson:"guildName" json:"guildName"`
	Reason    string             `bson:"reason" json:"reason"`
	Created   time.Time          `bson:"created" json:"created"`
	Expires   *time.Time         `bson:"expires,omitempty" json:"expires,omitempty"`
}

package database

import (
	"testing"

	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

func queuedOps(db *Database) []QueuedOperation {
	db.queueMu.Lock()
	defer db.queueMu.Unlock()
	ops := make([]QueuedOperation, len(db.writeQueue))
	copy(ops, db.writeQueue)
	return ops
}

func TestSetQueuesWhenOffline(t *testing.T) {
	db := NewDatabase()
	dm := NewDataManager[models.GuildSettings]("guilds", db)

	result, err := dm.Set(bson.M{"guildId": "g1"}, models.DefaultGuildSettings("g1"))
	if err != nil {
		t.Fatalf("Set with the DB offline returned an error: %v", err)
	}
	if result != nil {
		t.Errorf("Set with the DB offline returned %v, want nil", result)
	}

	ops := queuedOps(db)
	if len(ops) != 1 {
		t.Fatalf("write queue holds %d operations, want 1", len(ops))
	}
	if ops[0].CollectionName != "guilds" {
		t.Errorf("queued operation targets collection %q, want %q", ops[0].CollectionName, "guilds")
	}
	if ops[0].Operation != "set" {
		t.Errorf("queued operation is %q, want %q", ops[0].Operation, "set")
	}
}

func TestDeleteQueuesWhenOffline(t *testing.T) {
	db := NewDatabase()
	dm := NewDataManager[models.GuildUser]("users", db)

	if err := dm.Delete(bson.M{"guildId": "g1", "userId": "u1"}); err != nil {
		t.Fatalf("Delete with the DB offline returned an error: %v", err)
	}

	ops := queuedOps(db)
	if len(ops) != 1 {
		t.Fatalf("write queue holds %d operations, want 1", len(ops))
	}
	if ops[0].CollectionName != "users" || ops[0].Operation != "delete" {
		t.Errorf("queued operation = (%q, %q), want (%q, %q)",
			ops[0].CollectionName, ops[0].Operation, "users", "delete")
	}
}

func TestGenerateCacheKeyCarriesCollectionName(t *testing.T) {
	db := NewDatabase()
	dm := NewDataManager[models.Warning]("warnings", db)

	key := dm.generateCacheKey(bson.M{"userId": "u1", "guildId": "g1"})
	want := "warnings:{guildId=g1,userId=u1}"
	if key != want {
		t.Errorf("generateCacheKey = %q, want %q", key, want)
	}
}

package database

import "testing"

func TestNewGuildUserDefaults(t *testing.T) {
	user := newGuildUser("u1", "sleepy", "g1", "Sleepy Server")

	if user.UserID != "u1" || user.Username != "sleepy" {
		t.Errorf("user identity = (%q, %q), want (%q, %q)", user.UserID, user.Username, "u1", "sleepy")
	}
	if user.GuildID != "g1" || user.GuildName != "Sleepy Server" {
		t.Errorf("guild identity = (%q, %q), want (%q, %q)", user.GuildID, user.GuildName, "g1", "Sleepy Server")
	}
	if user.Level != 1 {
		t.Errorf("new members start at level %d, want 1", user.Level)
	}
	if user.Experience != 0 || user.Currency != 0 {
		t.Errorf("new members start with experience %d and currency %d, want 0 and 0", user.Experience, user.Currency)
	}
}

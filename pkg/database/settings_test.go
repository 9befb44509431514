package database

import (
	"errors"
	"testing"
)

func TestBuildSettingUpdate(t *testing.T) {
	tests := []struct {
		key   string
		value string
		field string
	}{
		{"prefix", "?", "prefix"},
		{"language", "es", "language"},
		{"welcomeChannel", "123456789", "welcomeChannel"},
		{"welcomeMessage", "Welcome @u!", "welcomeMessage"},
		{"modlog", "987654321", "modlog"},
	}

	for _, tt := range tests {
		update, err := buildSettingUpdate(tt.key, tt.value)
		if err != nil {
			t.Errorf("buildSettingUpdate(%q) returned error: %v", tt.key, err)
			continue
		}
		if got, ok := update[tt.field]; !ok || got != tt.value {
			t.Errorf("buildSettingUpdate(%q) = %v, want field %q = %q", tt.key, update, tt.field, tt.value)
		}
		if len(update) != 1 {
			t.Errorf("buildSettingUpdate(%q) should touch exactly one field, got %d", tt.key, len(update))
		}
	}
}

func TestBuildSettingUpdateUnknownKey(t *testing.T) {
	for _, key := range []string{"guildId", "_id", "Prefix", "nickname", ""} {
		_, err := buildSettingUpdate(key, "value")
		if !errors.Is(err, ErrUnknownSetting) {
			t.Errorf("buildSettingUpdate(%q) error = %v, want ErrUnknownSetting", key, err)
		}
	}
}

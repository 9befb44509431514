package database

import (
	"testing"
	"time"
)

func TestBuildWarning(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	w := buildWarning("111", "someone", "222", "Some Guild", "spamming", 7, now)

	if w.UserID != "111" || w.GuildID != "222" {
		t.Errorf("buildWarning ids = %s/%s, want 111/222", w.UserID, w.GuildID)
	}
	if w.Reason != "spamming" {
		t.Errorf("Reason = %q, want %q", w.Reason, "spamming")
	}
	if !w.Created.Equal(now) {
		t.Errorf("Created = %v, want %v", w.Created, now)
	}
	if w.Expires == nil {
		t.Fatal("Expires should be set for a 7 day warning")
	}
	if want := now.AddDate(0, 0, 7); !w.Expires.Equal(want) {
		t.Errorf("Expires = %v, want %v", w.Expires, want)
	}
}

func TestBuildWarningDefaultReason(t *testing.T) {
	w := buildWarning("111", "someone", "222", "Some Guild", "", 0, time.Now())
	if w.Reason != DefaultWarningReason {
		t.Errorf("Reason = %q, want %q", w.Reason, DefaultWarningReason)
	}
}

func TestBuildWarningPermanent(t *testing.T) {
	for _, days := range []int{0, -1} {
		w := buildWarning("111", "someone", "222", "Some Guild", "x", days, time.Now())
		if w.Expires != nil {
			t.Errorf("Expires should be nil for duration %d, got %v", days, w.Expires)
		}
	}
}

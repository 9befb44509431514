package modlog

import (
	"testing"
	"time"
)

func TestBuildEmbed(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	e := Entry{
		Author:      "Moderator#0001",
		AuthorIcon:  "https://cdn.example/avatar.png",
		Thumbnail:   "https://cdn.example/target.png",
		Title:       "Member muted",
		Description: "someone was muted for 10m",
		Color:       ColorRemove,
	}

	embed := buildEmbed(e, now)

	if embed.Title != "Member muted" {
		t.Errorf("Title = %q, want %q", embed.Title, "Member muted")
	}
	if embed.Color != ColorRemove {
		t.Errorf("Color = %#x, want %#x", embed.Color, ColorRemove)
	}
	if embed.Author == nil || embed.Author.Name != "Moderator#0001" {
		t.Error("embed author not set from entry")
	}
	if embed.Author.IconURL != "https://cdn.example/avatar.png" {
		t.Errorf("Author.IconURL = %q", embed.Author.IconURL)
	}
	if embed.Thumbnail == nil || embed.Thumbnail.URL != "https://cdn.example/target.png" {
		t.Error("embed thumbnail not set from entry")
	}
	if embed.Timestamp != now.Format(time.RFC3339) {
		t.Errorf("Timestamp = %q, want %q", embed.Timestamp, now.Format(time.RFC3339))
	}
}

func TestBuildEmbedDefaultColor(t *testing.T) {
	embed := buildEmbed(Entry{Title: "x"}, time.Now())
	if embed.Color != ColorAction {
		t.Errorf("Color = %#x, want default %#x", embed.Color, ColorAction)
	}
}

func TestBuildEmbedOmitsEmptyParts(t *testing.T) {
	embed := buildEmbed(Entry{Title: "x", Description: "y"}, time.Now())
	if embed.Author != nil {
		t.Error("Author should be nil when the entry has no author")
	}
	if embed.Thumbnail != nil {
		t.Error("Thumbnail should be nil when the entry has no thumbnail")
	}
}

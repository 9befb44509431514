package discord

import "testing"

func TestParseTextCommand(t *testing.T) {
	tests := []struct {
		content  string
		prefix   string
		wantName string
		wantArgs string
		wantOK   bool
	}{
		{"!announce hello there", "!", "announce", "hello there", true},
		{"!help", "!", "help", "", true},
		{"!ECHO loud", "!", "echo", "loud", true},
		{"?kalek", "?", "kalek", "", true},
		{"!announce hello", "?", "", "", false},
		{"just a message", "!", "", "", false},
		{"!", "!", "", "", false},
		{"!   ", "!", "", "", false},
		{"!!double bang", "!", "!double", "bang", true},
	}

	for _, tt := range tests {
		name, args, ok := parseTextCommand(tt.content, tt.prefix)
		if ok != tt.wantOK {
			t.Errorf("parseTextCommand(%q, %q) ok = %v, want %v", tt.content, tt.prefix, ok, tt.wantOK)
			continue
		}
		if name != tt.wantName || args != tt.wantArgs {
			t.Errorf("parseTextCommand(%q, %q) = (%q, %q), want (%q, %q)",
				tt.content, tt.prefix, name, args, tt.wantName, tt.wantArgs)
		}
	}
}

func TestParseTextCommandEmptyPrefix(t *testing.T) {
	if _, _, ok := parseTextCommand("anything", ""); ok {
		t.Error("an empty prefix should never match")
	}
}

func TestTextCommandCollection(t *testing.T) {
	tc := NewTextCommandCollection()

	tc.Set(&TextCommand{Name: "Announce"})
	tc.Set(&TextCommand{Name: "help"})

	if tc.Size() != 2 {
		t.Errorf("Size() = %d, want 2", tc.Size())
	}

	// Lookup is case-insensitive
	if _, ok := tc.Get("announce"); !ok {
		t.Error("Get(announce) should find the command registered as Announce")
	}
	if _, ok := tc.Get("ANNOUNCE"); !ok {
		t.Error("Get(ANNOUNCE) should find the command")
	}
	if _, ok := tc.Get("nope"); ok {
		t.Error("Get(nope) should report not found")
	}
}

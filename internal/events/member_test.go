package events

import "testing"

func TestSubstituteWelcome(t *testing.T) {
	tests := []struct {
		template string
		mention  string
		want     string
	}{
		{"Welcome @u!", "<@123>", "Welcome <@123>!"},
		{"@u joined the server", "<@123>", "<@123> joined the server"},
		{"No placeholder here", "<@123>", "No placeholder here"},
		{"@u and @u again", "<@123>", "<@123> and <@123> again"},
		{"", "<@123>", ""},
	}

	for _, tt := range tests {
		if got := substituteWelcome(tt.template, tt.mention); got != tt.want {
			t.Errorf("substituteWelcome(%q, %q) = %q, want %q", tt.template, tt.mention, got, tt.want)
		}
	}
}

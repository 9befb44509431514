package textcmds

import "testing"

func TestSplitChannelMention(t *testing.T) {
	tests := []struct {
		args        string
		wantChannel string
		wantRest    string
		wantOK      bool
	}{
		{"<#123456789> hello everyone", "123456789", "hello everyone", true},
		{"<#42>", "42", "", true},
		{"<#42>   spaced out", "42", "spaced out", true},
		{"no mention here", "", "", false},
		{"<#> empty", "", "", false},
		{"<#12a34> letters", "", "", false},
		{"<@123> user mention", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		channelID, rest, ok := splitChannelMention(tt.args)
		if ok != tt.wantOK {
			t.Errorf("splitChannelMention(%q) ok = %v, want %v", tt.args, ok, tt.wantOK)
			continue
		}
		if channelID != tt.wantChannel || rest != tt.wantRest {
			t.Errorf("splitChannelMention(%q) = (%q, %q), want (%q, %q)",
				tt.args, channelID, rest, tt.wantChannel, tt.wantRest)
		}
	}
}

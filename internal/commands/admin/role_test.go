package admin

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestParseRoleColor(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"15158332", 15158332, false},
		{"0", 0, false},
		{"16777215", 0xFFFFFF, false},
		{"16777216", 0, true},
		{"-1", 0, true},
		{"0xFF0000", 0, true},
		{"red", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := parseRoleColor(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseRoleColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseRoleColor(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestRoleMemberMentions(t *testing.T) {
	members := []*discordgo.Member{
		{User: &discordgo.User{ID: "1"}, Roles: []string{"a", "b"}},
		{User: &discordgo.User{ID: "2"}, Roles: []string{"b"}},
		{User: &discordgo.User{ID: "3"}, Roles: nil},
	}

	mentions := roleMemberMentions(members, "b")
	if len(mentions) != 2 {
		t.Fatalf("roleMemberMentions found %d members, want 2", len(mentions))
	}
	if mentions[0] != "<@1>" || mentions[1] != "<@2>" {
		t.Errorf("roleMemberMentions = %v, want [<@1> <@2>]", mentions)
	}

	if got := roleMemberMentions(members, "z"); len(got) != 0 {
		t.Errorf("roleMemberMentions for an unused role = %v, want empty", got)
	}

	if got := roleMemberMentions(nil, "b"); len(got) != 0 {
		t.Errorf("roleMemberMentions with no members = %v, want empty", got)
	}
}

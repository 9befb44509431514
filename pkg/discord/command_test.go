package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestNewCommandBuilder(t *testing.T) {
	run := func(ctx *CommandContext) error { return nil }

	cmd := NewCommand("warn", "Warn a member", "Moderation", run).
		WithOptions(&discordgo.ApplicationCommandOption{
			Type: discordgo.ApplicationCommandOptionUser,
			Name: "user",
		}).
		WithUserPermissions(discordgo.PermissionKickMembers).
		AsStaff()

	if cmd.Name != "warn" || cmd.Category != "Moderation" {
		t.Errorf("builder lost basic fields: %+v", cmd)
	}
	if len(cmd.Options) != 1 || cmd.Options[0].Name != "user" {
		t.Error("WithOptions did not set options")
	}
	if cmd.UserPermissions != discordgo.PermissionKickMembers {
		t.Error("WithUserPermissions did not set permissions")
	}
	if !cmd.RequiresStaff {
		t.Error("AsStaff did not set RequiresStaff")
	}
	if cmd.IsDev || cmd.OwnerOnly {
		t.Error("unset flags should stay false")
	}
}

func TestToApplicationCommand(t *testing.T) {
	cmd := NewCommand("ping", "Check latency", "Misc", nil)
	appCmd := cmd.ToApplicationCommand()

	if appCmd.Name != "ping" || appCmd.Description != "Check latency" {
		t.Errorf("ToApplicationCommand() = %+v", appCmd)
	}
}

func TestResolveCommandName(t *testing.T) {
	tests := []struct {
		name string
		data discordgo.ApplicationCommandInteractionData
		want string
	}{
		{
			name: "top level",
			data: discordgo.ApplicationCommandInteractionData{Name: "ping"},
			want: "ping",
		},
		{
			name: "subcommand",
			data: discordgo.ApplicationCommandInteractionData{
				Name: "mod",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{Name: "warn", Type: discordgo.ApplicationCommandOptionSubCommand},
				},
			},
			want: "mod.warn",
		},
		{
			name: "subcommand group",
			data: discordgo.ApplicationCommandInteractionData{
				Name: "role",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{
						Name: "member",
						Type: discordgo.ApplicationCommandOptionSubCommandGroup,
						Options: []*discordgo.ApplicationCommandInteractionDataOption{
							{Name: "add", Type: discordgo.ApplicationCommandOptionSubCommand},
						},
					},
				},
			},
			want: "role.member.add",
		},
		{
			name: "plain option is not a subcommand",
			data: discordgo.ApplicationCommandInteractionData{
				Name: "echo",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{Name: "text", Type: discordgo.ApplicationCommandOptionString},
				},
			},
			want: "echo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveCommandName(tt.data); got != tt.want {
				t.Errorf("resolveCommandName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsStaff(t *testing.T) {
	const owner = "100"

	tests := []struct {
		name   string
		perms  int64
		userID string
		want   bool
	}{
		{"administrator", discordgo.PermissionAdministrator, "1", true},
		{"moderate members", discordgo.PermissionModerateMembers, "2", true},
		{"owner without perms", 0, owner, true},
		{"regular member", discordgo.PermissionSendMessages, "3", false},
		{"kick alone is not staff", discordgo.PermissionKickMembers, "4", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isStaff(tt.perms, tt.userID, owner); got != tt.want {
				t.Errorf("isStaff(%#x, %s) = %v, want %v", tt.perms, tt.userID, got, tt.want)
			}
		})
	}

	if isStaff(0, "anyone", "") {
		t.Error("isStaff should not match when no owner is known")
	}
}

func TestCommandCollection(t *testing.T) {
	cc := NewCommandCollection()

	cmd := NewCommand("ping", "Check latency", "Misc", nil)
	cc.Set("ping", cmd)
	cc.Set("mod.warn", NewCommand("warn", "Warn a member", "Moderation", nil))

	if cc.Size() != 2 {
		t.Errorf("Size() = %d, want 2", cc.Size())
	}

	got, ok := cc.Get("ping")
	if !ok || got != cmd {
		t.Error("Get(ping) did not return the stored command")
	}

	if _, ok := cc.Get("missing"); ok {
		t.Error("Get(missing) should report not found")
	}
}

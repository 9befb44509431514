// Package admin - /role subcommands
package admin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/discord"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/logger"
	"github.com/KalekStudios/SleepDeprivedBotGo/pkg/modlog"
	"github.com/bwmarrin/discordgo"
)

// createRoleCreateCommand creates the /role create subcommand
func createRoleCreateCommand() *discord.Command {
	return discord.NewCommand(
		"create",
		"Create a new role",
		"admin",
		roleCreateHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "name",
			Description: "Name of the new role",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "color",
			Description: "Role color as a decimal number, e.g. 15158332",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "hoist",
			Description: "Set to true if the role should be displayed separately in the member list",
			Required:    false,
		},
	).AsStaff().WithBotPermissions(discordgo.PermissionManageRoles)
}

// createRoleDeleteCommand creates the /role delete subcommand
func createRoleDeleteCommand() *discord.Command {
	return discord.NewCommand(
		"delete",
		"Delete a role",
		"admin",
		roleDeleteHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role",
			Description: "Role to delete",
			Required:    true,
		},
	).AsStaff().WithBotPermissions(discordgo.PermissionManageRoles)
}

// createRoleAssignCommand creates the /role assign subcommand
func createRoleAssignCommand() *discord.Command {
	return discord.NewCommand(
		"assign",
		"Give a role to a member",
		"admin",
		roleAssignHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role",
			Description: "Role to give",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to receive the role",
			Required:    true,
		},
	).AsStaff().WithBotPermissions(discordgo.PermissionManageRoles)
}

// createRoleUnassignCommand creates the /role unassign subcommand
func createRoleUnassignCommand() *discord.Command {
	return discord.NewCommand(
		"unassign",
		"Take a role from a member",
		"admin",
		roleUnassignHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role",
			Description: "Role to take",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to lose the role",
			Required:    true,
		},
	).AsStaff().WithBotPermissions(discordgo.PermissionManageRoles)
}

// createRoleListCommand creates the /role list subcommand
func createRoleListCommand() *discord.Command {
	return discord.NewCommand(
		"list",
		"List the roles of this server",
		"admin",
		roleListHandler,
	).AsStaff()
}

// createRoleInfoCommand creates the /role info subcommand
func createRoleInfoCommand() *discord.Command {
	return discord.NewCommand(
		"info",
		"View a role and its members",
		"admin",
		roleInfoHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role",
			Description: "Role to inspect",
			Required:    true,
		},
	).AsStaff()
}

// parseRoleColor parses a decimal color value in the 24-bit RGB range
func parseRoleColor(s string) (int, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	if v > 0xFFFFFF {
		return 0, fmt.Errorf("color %d out of range", v)
	}
	return int(v), nil
}

// roleCreateHandler handles /role create
func roleCreateHandler(ctx *discord.CommandContext) error {
	name := ctx.GetStringOption("name")
	if name == "" {
		return ctx.ReplyEphemeral("❌ You must give the role a name.")
	}

	params := &discordgo.RoleParams{Name: name}

	if colorStr := ctx.GetStringOption("color"); colorStr != "" {
		color, err := parseRoleColor(colorStr)
		if err != nil {
			return ctx.ReplyEphemeral("❌ The color must be a decimal number, e.g. 15158332.")
		}
		params.Color = &color
	}

	if ctx.GetBoolOption("hoist") {
		hoist := true
		params.Hoist = &hoist
	}

	role, err := ctx.Session.GuildRoleCreate(ctx.Interaction.GuildID, params)
	if err != nil {
		logger.Error("Failed to create a role: "+err.Error(), "CMD-Role")
		return ctx.ReplyEphemeral("❌ The role could not be created.")
	}

	modlog.Send(ctx.Session, ctx.Interaction.GuildID, modlog.Entry{
		Author:      ctx.User().Username,
		AuthorIcon:  ctx.User().AvatarURL(""),
		Title:       "Role created",
		Description: fmt.Sprintf("Role **%s** was created.\n**Hoisted:** %t", role.Name, role.Hoist),
		Color:       modlog.ColorAdd,
	})

	return ctx.ReplyEphemeral(fmt.Sprintf("✅ Role **%s** created.", role.Name))
}

// roleDeleteHandler handles /role delete
func roleDeleteHandler(ctx *discord.CommandContext) error {
	role := ctx.GetRoleOption("role")
	if role == nil {
		return ctx.ReplyEphemeral("❌ You must specify a role.")
	}

	if err := ctx.Session.GuildRoleDelete(ctx.Interaction.GuildID, role.ID); err != nil {
		logger.Error("Failed to delete a role: "+err.Error(), "CMD-Role")
		return ctx.ReplyEphemeral("❌ The role could not be deleted.")
	}

	modlog.Send(ctx.Session, ctx.Interaction.GuildID, modlog.Entry{
		Author:      ctx.User().Username,
		AuthorIcon:  ctx.User().AvatarURL(""),
		Title:       "Role deleted",
		Description: fmt.Sprintf("Role **%s** was deleted.", role.Name),
		Color:       modlog.ColorRemove,
	})

	return ctx.ReplyEphemeral(fmt.Sprintf("🗑️ Role **%s** deleted.", role.Name))
}

// roleAssignHandler handles /role assign
func roleAssignHandler(ctx *discord.CommandContext) error {
	role := ctx.GetRoleOption("role")
	user := ctx.GetUserOption("user")
	if role == nil || user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a role and a user.")
	}

	if err := ctx.Session.GuildMemberRoleAdd(ctx.Interaction.GuildID, user.ID, role.ID); err != nil {
		logger.Error("Failed to assign a role: "+err.Error(), "CMD-Role")
		return ctx.ReplyEphemeral("❌ The role could not be assigned.")
	}

	modlog.Send(ctx.Session, ctx.Interaction.GuildID, modlog.Entry{
		Author:      ctx.User().Username,
		AuthorIcon:  ctx.User().AvatarURL(""),
		Thumbnail:   user.AvatarURL(""),
		Title:       "Role assigned",
		Description: fmt.Sprintf("**%s** received the role **%s**.", user.Username, role.Name),
		Color:       modlog.ColorAdd,
	})

	return ctx.ReplyEphemeral(fmt.Sprintf("✅ **%s** now has the role **%s**.", user.Username, role.Name))
}

// roleUnassignHandler handles /role unassign
func roleUnassignHandler(ctx *discord.CommandContext) error {
	role := ctx.GetRoleOption("role")
	user := ctx.GetUserOption("user")
	if role == nil || user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a role and a user.")
	}

	if err := ctx.Session.GuildMemberRoleRemove(ctx.Interaction.GuildID, user.ID, role.ID); err != nil {
		logger.Error("Failed to unassign a role: "+err.Error(), "CMD-Role")
		return ctx.ReplyEphemeral("❌ The role could not be removed.")
	}

	modlog.Send(ctx.Session, ctx.Interaction.GuildID, modlog.Entry{
		Author:      ctx.User().Username,
		AuthorIcon:  ctx.User().AvatarURL(""),
		Thumbnail:   user.AvatarURL(""),
		Title:       "Role unassigned",
		Description: fmt.Sprintf("**%s** lost the role **%s**.", user.Username, role.Name),
		Color:       modlog.ColorRemove,
	})

	return ctx.ReplyEphemeral(fmt.Sprintf("✅ **%s** no longer has the role **%s**.", user.Username, role.Name))
}

// roleListHandler handles /role list
func roleListHandler(ctx *discord.CommandContext) error {
	roles, err := ctx.Session.GuildRoles(ctx.Interaction.GuildID)
	if err != nil {
		logger.Error("Failed to list roles: "+err.Error(), "CMD-Role")
		return ctx.ReplyEphemeral("❌ The roles could not be loaded.")
	}

	names := make([]string, 0, len(roles))
	for _, role := range roles {
		if role.Name == "@everyone" {
			continue
		}
		names = append(names, role.Name)
	}

	if len(names) == 0 {
		return ctx.ReplyEphemeral("This server has no roles besides @everyone.")
	}

	return ctx.ReplyEphemeralEmbed(&discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Roles in %s", ctx.GuildName()),
		Description: strings.Join(names, ", "),
		Color:       embedColors["blue"],
	})
}

// maxListedMembers bounds the member listing so the embed stays under
// the description limit.
const maxListedMembers = 40

// roleMemberMentions returns the mentions of the members carrying a role
func roleMemberMentions(members []*discordgo.Member, roleID string) []string {
	var mentions []string
	for _, member := range members {
		if member.User == nil {
			continue
		}
		for _, id := range member.Roles {
			if id == roleID {
				mentions = append(mentions, member.User.Mention())
				break
			}
		}
	}
	return mentions
}

// roleInfoHandler handles /role info
func roleInfoHandler(ctx *discord.CommandContext) error {
	role := ctx.GetRoleOption("role")
	if role == nil {
		return ctx.ReplyEphemeral("❌ You must specify a role.")
	}

	var mentions []string
	if guild, err := ctx.Session.State.Guild(ctx.Interaction.GuildID); err == nil {
		mentions = roleMemberMentions(guild.Members, role.ID)
	}

	memberCount := len(mentions)
	listed := mentions
	if len(listed) > maxListedMembers {
		listed = listed[:maxListedMembers]
	}

	description := fmt.Sprintf("**Mention:** %s\n\n**Members**\n%s", role.Mention(), strings.Join(listed, "\n"))
	if memberCount > len(listed) {
		description += fmt.Sprintf("\n… and %d more", memberCount-len(listed))
	}

	return ctx.ReplyEphemeralEmbed(&discordgo.MessageEmbed{
		Title:       "Role " + role.Name,
		Color:       role.Color,
		Description: description,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "ID", Value: role.ID, Inline: true},
			{Name: "Color", Value: fmt.Sprintf("#%06X", role.Color), Inline: true},
			{Name: "Position", Value: fmt.Sprintf("%d", role.Position), Inline: true},
			{Name: "Mentionable", Value: fmt.Sprintf("%t", role.Mentionable), Inline: true},
			{Name: "Hoisted", Value: fmt.Sprintf("%t", role.Hoist), Inline: true},
			{Name: "Members", Value: fmt.Sprintf("%d member(s)", memberCount), Inline: true},
		},
	})
}

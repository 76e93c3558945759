package bot

import (
	"fmt"
	"strconv"

	"indexbot/domain/entities"
	"indexbot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
)

// roleManager implements the RoleManager interface over a discordgo session.
// Reads prefer the session state cache and fall back to the REST API.
type roleManager struct {
	session *discordgo.Session
}

// NewRoleManager creates a RoleManager backed by the Discord session
func NewRoleManager(session *discordgo.Session) interfaces.RoleManager {
	return &roleManager{session: session}
}

// FindRoleByName returns the guild role with the given name, or nil if no
// such role exists. Game roles are created lowercase, so the match is exact.
func (r *roleManager) FindRoleByName(guildID int64, name string) (*entities.GameRole, error) {
	roles, err := r.guildRoles(guildID)
	if err != nil {
		return nil, err
	}

	for _, role := range roles {
		if role.Name == name {
			return toGameRole(role, guildID)
		}
	}
	return nil, nil
}

// CreateRole creates a new mentionable guild role with the given name
func (r *roleManager) CreateRole(guildID int64, name string) (*entities.GameRole, error) {
	mentionable := true
	role, err := r.session.GuildRoleCreate(formatID(guildID), &discordgo.RoleParams{
		Name:        name,
		Mentionable: &mentionable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create role %q in guild %d: %w", name, guildID, err)
	}
	return toGameRole(role, guildID)
}

// DeleteRole deletes the guild role
func (r *roleManager) DeleteRole(guildID, roleID int64, reason string) error {
	err := r.session.GuildRoleDelete(formatID(guildID), formatID(roleID), discordgo.WithAuditLogReason(reason))
	if err != nil {
		return fmt.Errorf("failed to delete role %d in guild %d: %w", roleID, guildID, err)
	}
	return nil
}

// Role resolves a role ID against the live guild role catalog
func (r *roleManager) Role(guildID, roleID int64) (*entities.GameRole, error) {
	roles, err := r.guildRoles(guildID)
	if err != nil {
		return nil, err
	}

	id := formatID(roleID)
	for _, role := range roles {
		if role.ID == id {
			return toGameRole(role, guildID)
		}
	}
	return nil, interfaces.ErrRoleNotFound
}

// RoleMemberCount returns how many guild members currently hold the role
func (r *roleManager) RoleMemberCount(guildID, roleID int64) (int, error) {
	members, err := r.guildMembers(guildID)
	if err != nil {
		return 0, err
	}

	id := formatID(roleID)
	count := 0
	for _, member := range members {
		for _, memberRole := range member.Roles {
			if memberRole == id {
				count++
				break
			}
		}
	}
	return count, nil
}

// guildRoles reads the guild role catalog from state, falling back to the API
func (r *roleManager) guildRoles(guildID int64) ([]*discordgo.Role, error) {
	id := formatID(guildID)
	if guild, err := r.session.State.Guild(id); err == nil && len(guild.Roles) > 0 {
		return guild.Roles, nil
	}

	roles, err := r.session.GuildRoles(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roles for guild %d: %w", guildID, err)
	}
	return roles, nil
}

// guildMembers reads the full member list, paginating the API when the state
// cache is incomplete
func (r *roleManager) guildMembers(guildID int64) ([]*discordgo.Member, error) {
	id := formatID(guildID)
	if guild, err := r.session.State.Guild(id); err == nil &&
		guild.MemberCount > 0 && len(guild.Members) >= guild.MemberCount {
		return guild.Members, nil
	}

	var all []*discordgo.Member
	after := ""
	for {
		members, err := r.session.GuildMembers(id, after, 1000)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch members for guild %d: %w", guildID, err)
		}
		all = append(all, members...)
		if len(members) < 1000 {
			break
		}
		after = members[len(members)-1].User.ID
	}
	return all, nil
}

func toGameRole(role *discordgo.Role, guildID int64) (*entities.GameRole, error) {
	id, err := strconv.ParseInt(role.ID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse role ID %s: %w", role.ID, err)
	}
	return &entities.GameRole{ID: id, GuildID: guildID, Name: role.Name}, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

package common

import (
	"github.com/bwmarrin/discordgo"
)

// HasManageRoles reports whether the invoking member holds the Manage Roles
// permission in the channel the interaction came from. Interactions outside a
// guild never carry member permissions and are rejected.
func HasManageRoles(i *discordgo.InteractionCreate) bool {
	if i.Member == nil {
		return false
	}
	return i.Member.Permissions&discordgo.PermissionManageRoles != 0
}

package common

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestHasManageRoles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		member   *discordgo.Member
		expected bool
	}{
		{
			name:     "no member means no guild context",
			member:   nil,
			expected: false,
		},
		{
			name:     "member without manage roles",
			member:   &discordgo.Member{Permissions: discordgo.PermissionSendMessages},
			expected: false,
		},
		{
			name:     "member with manage roles",
			member:   &discordgo.Member{Permissions: discordgo.PermissionManageRoles},
			expected: true,
		},
		{
			name: "administrator permissions include manage roles",
			member: &discordgo.Member{
				Permissions: discordgo.PermissionManageRoles | discordgo.PermissionAdministrator,
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			i := &discordgo.InteractionCreate{
				Interaction: &discordgo.Interaction{Member: tt.member},
			}
			assert.Equal(t, tt.expected, HasManageRoles(i))
		})
	}
}

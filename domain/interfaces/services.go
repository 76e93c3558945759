package interfaces

import (
	"context"

	"indexbot/domain/entities"
)

// RoleManager abstracts the Discord side of role management. The bot package
// implements it over a discordgo session; unit tests supply mocks. All name
// matching is against the lowercased role name.
type RoleManager interface {
	// FindRoleByName returns the guild role with the given (lowercase) name,
	// or nil if no such role exists
	FindRoleByName(guildID int64, name string) (*entities.GameRole, error)

	// CreateRole creates a new mentionable guild role with the given name
	CreateRole(guildID int64, name string) (*entities.GameRole, error)

	// DeleteRole deletes the guild role
	DeleteRole(guildID, roleID int64, reason string) error

	// Role resolves a role ID against the live guild role catalog.
	// Returns ErrRoleNotFound if the role no longer exists.
	Role(guildID, roleID int64) (*entities.GameRole, error)

	// RoleMemberCount returns how many guild members currently hold the role
	RoleMemberCount(guildID, roleID int64) (int, error)
}

// JoinResult reports the outcome of a join operation
type JoinResult struct {
	Role        *entities.GameRole
	RoleCreated bool // a new role was created for a free-text game name
}

// LeaveResult reports the outcome of a leave operation
type LeaveResult struct {
	Role        *entities.GameRole
	RoleDeleted bool // the role lost its last subscriber and was deleted
}

// RemoveRoleResult reports the outcome of a bulk role removal
type RemoveRoleResult struct {
	SubscriberIDs []int64 // users whose subscriptions were removed
	RoleDeleted   bool
}

// SubscriptionService implements the business rules for joining, leaving and
// deleting game notification roles
type SubscriptionService interface {
	// JoinByName subscribes the user to the game with the given free-text
	// name, creating the Discord role if no role with that lowercase name
	// exists. Returns ErrAlreadySubscribed as a non-fatal outcome.
	JoinByName(ctx context.Context, guildID int64, name string, userID int64) (*JoinResult, error)

	// Join subscribes the user to an existing role
	Join(ctx context.Context, guildID, roleID, userID int64) (*JoinResult, error)

	// Leave unsubscribes the user. If the role is left with no live Discord
	// members it is deleted. Returns ErrNotSubscribed as a non-fatal outcome.
	Leave(ctx context.Context, guildID, roleID, userID int64) (*LeaveResult, error)

	// RemoveRole deletes every subscription for the role and, when no live
	// members remain, the Discord role itself
	RemoveRole(ctx context.Context, guildID, roleID int64) (*RemoveRoleResult, error)

	// UserRoles returns the live roles the user is subscribed to.
	// Stored roles that no longer resolve are filtered out.
	UserRoles(ctx context.Context, guildID, userID int64) ([]*entities.GameRole, error)

	// GuildRoles returns every live role with at least one subscriber
	GuildRoles(ctx context.Context, guildID int64) ([]*entities.GameRole, error)

	// SubscribedRoleIDs returns the raw stored role IDs for the guild,
	// used by the mention scanner to test membership cheaply
	SubscribedRoleIDs(ctx context.Context, guildID int64) ([]int64, error)

	// Subscribers returns the stored subscriber IDs for a role
	Subscribers(ctx context.Context, guildID, roleID int64) ([]int64, error)

	// EnsureGuild lazily initializes the guild's namespace
	EnsureGuild(ctx context.Context, guildID int64) error
}

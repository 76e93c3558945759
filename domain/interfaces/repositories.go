package interfaces

import (
	"context"
)

// SubscriptionRepository defines guild-scoped access to subscription rows.
// Implementations are constructed for a single guild and run inside the
// transaction owned by the surrounding UnitOfWork.
type SubscriptionRepository interface {
	// Add persists a subscription. Returns ErrAlreadySubscribed if the
	// (role, user) pair already exists; the store is left unchanged.
	Add(ctx context.Context, roleID, userID int64) error

	// Remove deletes a subscription. Returns ErrNotSubscribed if the pair
	// does not exist. The remaining flag reports whether the role still has
	// any subscribers, so the caller can decide whether to delete the role.
	Remove(ctx context.Context, roleID, userID int64) (remaining bool, err error)

	// ListByUser returns the IDs of all roles the user is subscribed to
	ListByUser(ctx context.Context, userID int64) ([]int64, error)

	// ListSubscribers returns the IDs of all users subscribed to the role
	ListSubscribers(ctx context.Context, roleID int64) ([]int64, error)

	// ListRoles returns every role ID with at least one subscription row
	ListRoles(ctx context.Context) ([]int64, error)

	// DeleteRole removes all subscription rows for the role. Idempotent.
	DeleteRole(ctx context.Context, roleID int64) error
}

// GuildRepository manages per-guild namespace rows
type GuildRepository interface {
	// EnsureGuild creates the guild's namespace row if absent.
	// Safe to call redundantly on every reconnect.
	EnsureGuild(ctx context.Context, guildID int64) error
}

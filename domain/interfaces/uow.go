package interfaces

import (
	"context"
)

// UnitOfWork provides transactional access to guild-scoped repositories.
// Every command handler runs begin, mutate, commit with a deferred rollback,
// so a batch of store calls is applied atomically or not at all.
type UnitOfWork interface {
	// Begin starts the transaction and binds the repositories to it
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback aborts the transaction. Calling it after a successful
	// commit is a no-op, so it is safe to defer.
	Rollback() error

	// SubscriptionRepository returns the guild-scoped subscription repository
	SubscriptionRepository() SubscriptionRepository

	// GuildRepository returns the guild namespace repository
	GuildRepository() GuildRepository
}

// UnitOfWorkFactory creates units of work scoped to a single guild
type UnitOfWorkFactory interface {
	CreateForGuild(guildID int64) UnitOfWork
}

package repository

import (
	"context"
	"fmt"

	"indexbot/database"
)

// GuildRepository implements the GuildRepository interface
type GuildRepository struct {
	q Queryable
}

// NewGuildRepository creates a new guild repository
func NewGuildRepository(db *database.DB) *GuildRepository {
	return &GuildRepository{q: db.Pool}
}

// NewGuildRepositoryWithTx creates a new guild repository bound to a transaction
func NewGuildRepositoryWithTx(tx Queryable) *GuildRepository {
	return &GuildRepository{q: tx}
}

// EnsureGuild creates the guild's namespace row if absent. Idempotent, so it
// is safe to run for every joined guild on each reconnect.
func (r *GuildRepository) EnsureGuild(ctx context.Context, guildID int64) error {
	query := `
		INSERT INTO guilds (guild_id)
		VALUES ($1)
		ON CONFLICT (guild_id) DO NOTHING
	`

	if _, err := r.q.Exec(ctx, query, guildID); err != nil {
		return fmt.Errorf("failed to ensure guild %d: %w", guildID, err)
	}

	return nil
}

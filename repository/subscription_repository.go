package repository

import (
	"context"
	"fmt"

	"indexbot/database"
	"indexbot/domain/interfaces"
)

// SubscriptionRepository implements the SubscriptionRepository interface.
// All queries are scoped to a single guild.
type SubscriptionRepository struct {
	q       Queryable
	guildID int64
}

// NewSubscriptionRepository creates a new guild-scoped subscription repository
func NewSubscriptionRepository(db *database.DB, guildID int64) *SubscriptionRepository {
	return &SubscriptionRepository{q: db.Pool, guildID: guildID}
}

// NewSubscriptionRepositoryScoped creates a new subscription repository with a
// transaction and guild scope
func NewSubscriptionRepositoryScoped(tx Queryable, guildID int64) *SubscriptionRepository {
	return &SubscriptionRepository{
		q:       tx,
		guildID: guildID,
	}
}

// Add persists a subscription row
func (r *SubscriptionRepository) Add(ctx context.Context, roleID, userID int64) error {
	query := `
		INSERT INTO subscriptions (guild_id, role_id, user_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (guild_id, role_id, user_id) DO NOTHING
	`

	result, err := r.q.Exec(ctx, query, r.guildID, roleID, userID)
	if err != nil {
		return fmt.Errorf("failed to add subscription for role %d, user %d: %w", roleID, userID, err)
	}

	if result.RowsAffected() == 0 {
		return interfaces.ErrAlreadySubscribed
	}

	return nil
}

// Remove deletes a subscription row and reports whether the role still has
// any subscribers left
func (r *SubscriptionRepository) Remove(ctx context.Context, roleID, userID int64) (bool, error) {
	query := `
		DELETE FROM subscriptions
		WHERE guild_id = $1 AND role_id = $2 AND user_id = $3
	`

	result, err := r.q.Exec(ctx, query, r.guildID, roleID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to remove subscription for role %d, user %d: %w", roleID, userID, err)
	}

	if result.RowsAffected() == 0 {
		return false, interfaces.ErrNotSubscribed
	}

	var remaining bool
	existsQuery := `
		SELECT EXISTS (
			SELECT 1 FROM subscriptions
			WHERE guild_id = $1 AND role_id = $2
		)
	`
	if err := r.q.QueryRow(ctx, existsQuery, r.guildID, roleID).Scan(&remaining); err != nil {
		return false, fmt.Errorf("failed to check remaining subscribers for role %d: %w", roleID, err)
	}

	return remaining, nil
}

// ListByUser returns the IDs of all roles the user is subscribed to
func (r *SubscriptionRepository) ListByUser(ctx context.Context, userID int64) ([]int64, error) {
	query := `
		SELECT role_id FROM subscriptions
		WHERE guild_id = $1 AND user_id = $2
		ORDER BY created_at
	`

	rows, err := r.q.Query(ctx, query, r.guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions for user %d: %w", userID, err)
	}
	defer rows.Close()

	roleIDs := make([]int64, 0)
	for rows.Next() {
		var roleID int64
		if err := rows.Scan(&roleID); err != nil {
			return nil, fmt.Errorf("failed to scan role id: %w", err)
		}
		roleIDs = append(roleIDs, roleID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over subscription rows: %w", err)
	}

	return roleIDs, nil
}

// ListSubscribers returns the IDs of all users subscribed to the role
func (r *SubscriptionRepository) ListSubscribers(ctx context.Context, roleID int64) ([]int64, error) {
	query := `
		SELECT user_id FROM subscriptions
		WHERE guild_id = $1 AND role_id = $2
		ORDER BY created_at
	`

	rows, err := r.q.Query(ctx, query, r.guildID, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers for role %d: %w", roleID, err)
	}
	defer rows.Close()

	userIDs := make([]int64, 0)
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		userIDs = append(userIDs, userID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over subscriber rows: %w", err)
	}

	return userIDs, nil
}

// ListRoles returns every role ID with at least one subscription row
func (r *SubscriptionRepository) ListRoles(ctx context.Context) ([]int64, error) {
	query := `
		SELECT DISTINCT role_id FROM subscriptions
		WHERE guild_id = $1
	`

	rows, err := r.q.Query(ctx, query, r.guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles for guild %d: %w", r.guildID, err)
	}
	defer rows.Close()

	roleIDs := make([]int64, 0)
	for rows.Next() {
		var roleID int64
		if err := rows.Scan(&roleID); err != nil {
			return nil, fmt.Errorf("failed to scan role id: %w", err)
		}
		roleIDs = append(roleIDs, roleID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over role rows: %w", err)
	}

	return roleIDs, nil
}

// DeleteRole removes all subscription rows for the role. Idempotent.
func (r *SubscriptionRepository) DeleteRole(ctx context.Context, roleID int64) error {
	query := `
		DELETE FROM subscriptions
		WHERE guild_id = $1 AND role_id = $2
	`

	if _, err := r.q.Exec(ctx, query, r.guildID, roleID); err != nil {
		return fmt.Errorf("failed to delete subscriptions for role %d: %w", roleID, err)
	}

	return nil
}

package entities

import (
	"time"
)

// Subscription represents a user's membership in a game notification role.
// Existence of the row is the subscription; there is no further state.
type Subscription struct {
	GuildID   int64     `db:"guild_id"`
	RoleID    int64     `db:"role_id"`
	UserID    int64     `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

// IsValid checks that the subscription references real identifiers
func (s *Subscription) IsValid() bool {
	return s.GuildID > 0 && s.RoleID > 0 && s.UserID > 0
}

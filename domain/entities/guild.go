package entities

import (
	"time"
)

// Guild marks a server whose subscription namespace has been initialized
type Guild struct {
	GuildID   int64     `db:"guild_id"`
	CreatedAt time.Time `db:"created_at"`
}

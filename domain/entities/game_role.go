package entities

import "fmt"

// GameRole is a Discord role used as a notification topic. It mirrors the
// platform's live role object, not a stored row; the store only keeps IDs.
type GameRole struct {
	ID      int64
	GuildID int64
	Name    string
}

// Mention returns the Discord mention string for the role
func (r *GameRole) Mention() string {
	return fmt.Sprintf("<@&%d>", r.ID)
}

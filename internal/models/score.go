package models

import (
	"time"
)

// Score represents the cumulative point total for one player within one group.
// Points are only ever added, never subtracted.
type Score struct {
	// PlayerID is the chat user ID of the player
	PlayerID string

	// PlayerName is the display name of the player at the time of their
	// last award
	PlayerName string

	// Points is the number of rounds the player has won in this group
	Points int

	// UpdatedAt is when the score was last changed
	UpdatedAt time.Time
}

package models

import (
	"time"
)

// GameResult represents one player's outcome of a finished game
type GameResult struct {
	// ID is the unique identifier for the result record
	ID string

	// GameID is the ID of the game the result belongs to
	GameID string

	// PlayerID is the ID of the player the result belongs to
	PlayerID string

	// PlayerName is the display name at the time the game ended
	PlayerName string

	// FinalMoney is the player's balance when the game ended
	FinalMoney int

	// Won indicates whether this player won the game
	Won bool

	// DurationSeconds is how long the game ran
	DurationSeconds int

	// RecordedAt is when the result was persisted
	RecordedAt time.Time
}

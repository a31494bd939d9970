package leaderboard

import (
	"github.com/aau-serg/monopoly-core/internal/models"
)

// RecordResultInput holds parameters for recording a game result
type RecordResultInput struct {
	// Result is the outcome to persist; a missing ID is generated
	Result *models.GameResult
}

// GetTopPlayersInput holds parameters for querying the leaderboard
type GetTopPlayersInput struct {
	// Limit caps the number of entries; defaults to DefaultTopPlayers
	Limit int
}

// GetTopPlayersOutput holds the ranked leaderboard entries
type GetTopPlayersOutput struct {
	Entries []*Entry
}

// Entry is one row of the leaderboard
type Entry struct {
	// Rank is the position on the leaderboard, starting at 1
	Rank int

	// PlayerID identifies the player
	PlayerID string

	// PlayerName is the most recently recorded display name
	PlayerName string

	// Wins is the number of games the player won
	Wins int

	// GamesPlayed is the number of recorded games for the player
	GamesPlayed int
}

// GetResultsForPlayerInput holds parameters for querying a player's results
type GetResultsForPlayerInput struct {
	PlayerID string
}

// GetResultsForPlayerOutput holds a player's recorded results
type GetResultsForPlayerOutput struct {
	Results []*models.GameResult
}

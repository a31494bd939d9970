package leaderboard

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/aau-serg/monopoly-core/internal/repositories/leaderboard Repository

import (
	"context"
)

// Repository defines the interface for leaderboard data persistence
type Repository interface {
	// RecordResult persists one player's outcome of a finished game
	RecordResult(ctx context.Context, input *RecordResultInput) error

	// GetTopPlayers retrieves the leaderboard ranked by wins
	GetTopPlayers(ctx context.Context, input *GetTopPlayersInput) (*GetTopPlayersOutput, error)

	// GetResultsForPlayer retrieves all recorded results for a player
	GetResultsForPlayer(ctx context.Context, input *GetResultsForPlayerInput) (*GetResultsForPlayerOutput, error)
}

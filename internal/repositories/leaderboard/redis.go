package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/aau-serg/monopoly-core/internal/models"
)

const (
	// Key prefixes for Redis
	resultKeyPrefix        = "result:"
	playerResultsKeyPrefix = "player_results:"

	// Aggregate keys
	winsKey        = "leaderboard:wins"
	gamesKey       = "leaderboard:games"
	playerNamesKey = "leaderboard:names"

	// DefaultTopPlayers is the leaderboard size when no limit is given
	DefaultTopPlayers = 10
)

// ErrResultNotFound is returned when a result record is not found
var ErrResultNotFound = errors.New("result record not found")

// Config holds configuration for the Redis leaderboard repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed leaderboard repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// RecordResult persists one player's outcome and updates the aggregates
func (r *redisRepository) RecordResult(ctx context.Context, input *RecordResultInput) error {
	if input == nil || input.Result == nil {
		return errors.New("input and result cannot be nil")
	}

	result := input.Result

	if result.PlayerID == "" {
		return errors.New("result player ID cannot be empty")
	}

	if result.ID == "" {
		result.ID = uuid.New().String()
	}

	if result.RecordedAt.IsZero() {
		result.RecordedAt = time.Now()
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result record: %w", err)
	}

	pipe := r.client.Pipeline()

	// Store the result record
	resultKey := fmt.Sprintf("%s%s", resultKeyPrefix, result.ID)
	pipe.Set(ctx, resultKey, resultJSON, 0)

	// Add to the player's result history sorted set
	playerKey := fmt.Sprintf("%s%s", playerResultsKeyPrefix, result.PlayerID)
	pipe.ZAdd(ctx, playerKey, redis.Z{
		Score:  float64(result.RecordedAt.Unix()),
		Member: result.ID,
	})

	// Update the aggregates the leaderboard is ranked by
	pipe.HIncrBy(ctx, gamesKey, result.PlayerID, 1)
	pipe.HSet(ctx, playerNamesKey, result.PlayerID, result.PlayerName)
	if result.Won {
		pipe.ZIncrBy(ctx, winsKey, 1, result.PlayerID)
	} else {
		// Keep losers on the board with their zero score.
		pipe.ZAddNX(ctx, winsKey, redis.Z{Score: 0, Member: result.PlayerID})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

// GetTopPlayers retrieves the leaderboard ranked by wins, best first
func (r *redisRepository) GetTopPlayers(ctx context.Context, input *GetTopPlayersInput) (*GetTopPlayersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultTopPlayers
	}

	ranked, err := r.client.ZRevRangeWithScores(ctx, winsKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get ranked players: %w", err)
	}

	if len(ranked) == 0 {
		return &GetTopPlayersOutput{Entries: []*Entry{}}, nil
	}

	// Fetch names and game counts for the ranked players in one pipeline
	pipe := r.client.Pipeline()
	nameCmds := make([]*redis.StringCmd, len(ranked))
	gamesCmds := make([]*redis.StringCmd, len(ranked))

	for i, z := range ranked {
		playerID := z.Member.(string)
		nameCmds[i] = pipe.HGet(ctx, playerNamesKey, playerID)
		gamesCmds[i] = pipe.HGet(ctx, gamesKey, playerID)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get player details: %w", err)
	}

	entries := make([]*Entry, 0, len(ranked))
	for i, z := range ranked {
		playerID := z.Member.(string)

		name, err := nameCmds[i].Result()
		if err != nil && err != redis.Nil {
			return nil, fmt.Errorf("failed to get name for player %s: %w", playerID, err)
		}

		games, err := gamesCmds[i].Int()
		if err != nil && err != redis.Nil {
			return nil, fmt.Errorf("failed to get game count for player %s: %w", playerID, err)
		}

		entries = append(entries, &Entry{
			Rank:        i + 1,
			PlayerID:    playerID,
			PlayerName:  name,
			Wins:        int(z.Score),
			GamesPlayed: games,
		})
	}

	return &GetTopPlayersOutput{Entries: entries}, nil
}

// GetResultsForPlayer retrieves all recorded results for a player, oldest first
func (r *redisRepository) GetResultsForPlayer(ctx context.Context, input *GetResultsForPlayerInput) (*GetResultsForPlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	playerKey := fmt.Sprintf("%s%s", playerResultsKeyPrefix, input.PlayerID)
	resultIDs, err := r.client.ZRange(ctx, playerKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get result IDs for player: %w", err)
	}

	if len(resultIDs) == 0 {
		return &GetResultsForPlayerOutput{Results: []*models.GameResult{}}, nil
	}

	pipe := r.client.Pipeline()
	resultCmds := make([]*redis.StringCmd, len(resultIDs))

	for i, resultID := range resultIDs {
		resultKey := fmt.Sprintf("%s%s", resultKeyPrefix, resultID)
		resultCmds[i] = pipe.Get(ctx, resultKey)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get result records: %w", err)
	}

	results := make([]*models.GameResult, 0, len(resultIDs))
	for i, resultID := range resultIDs {
		resultJSON, err := resultCmds[i].Result()
		if err != nil {
			if err == redis.Nil {
				// Record deleted between listing the IDs and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get result record %s: %w", resultID, err)
		}

		var result models.GameResult
		if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result record %s: %w", resultID, err)
		}

		results = append(results, &result)
	}

	return &GetResultsForPlayerOutput{Results: results}, nil
}

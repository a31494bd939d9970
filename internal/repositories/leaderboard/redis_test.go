package leaderboard

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/aau-serg/monopoly-core/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) recordResult(playerID, playerName string, won bool, at time.Time) {
	err := s.repo.RecordResult(context.Background(), &RecordResultInput{
		Result: &models.GameResult{
			GameID:          "game-1",
			PlayerID:        playerID,
			PlayerName:      playerName,
			FinalMoney:      1500,
			Won:             won,
			DurationSeconds: 600,
			RecordedAt:      at,
		},
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestRecordResultGeneratesID() {
	result := &models.GameResult{
		GameID:     "game-1",
		PlayerID:   "player-1",
		PlayerName: "Alice",
		Won:        true,
	}

	err := s.repo.RecordResult(context.Background(), &RecordResultInput{Result: result})
	s.Require().NoError(err)

	s.NotEmpty(result.ID)
	s.False(result.RecordedAt.IsZero())
}

func (s *RedisRepositoryTestSuite) TestRecordResultWithNilInput() {
	s.Error(s.repo.RecordResult(context.Background(), nil))
	s.Error(s.repo.RecordResult(context.Background(), &RecordResultInput{}))
}

func (s *RedisRepositoryTestSuite) TestRecordResultWithoutPlayerID() {
	err := s.repo.RecordResult(context.Background(), &RecordResultInput{
		Result: &models.GameResult{GameID: "game-1"},
	})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestGetTopPlayersRanksByWins() {
	s.recordResult("player-1", "Alice", true, s.testNow)
	s.recordResult("player-1", "Alice", true, s.testNow.Add(time.Hour))
	s.recordResult("player-2", "Bob", true, s.testNow)
	s.recordResult("player-3", "Carol", false, s.testNow)

	output, err := s.repo.GetTopPlayers(context.Background(), &GetTopPlayersInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 3)

	s.Equal(&Entry{
		Rank:        1,
		PlayerID:    "player-1",
		PlayerName:  "Alice",
		Wins:        2,
		GamesPlayed: 2,
	}, output.Entries[0])

	s.Equal(&Entry{
		Rank:        2,
		PlayerID:    "player-2",
		PlayerName:  "Bob",
		Wins:        1,
		GamesPlayed: 1,
	}, output.Entries[1])

	s.Equal(&Entry{
		Rank:        3,
		PlayerID:    "player-3",
		PlayerName:  "Carol",
		Wins:        0,
		GamesPlayed: 1,
	}, output.Entries[2])
}

func (s *RedisRepositoryTestSuite) TestGetTopPlayersAppliesLimit() {
	s.recordResult("player-1", "Alice", true, s.testNow)
	s.recordResult("player-2", "Bob", false, s.testNow)

	output, err := s.repo.GetTopPlayers(context.Background(), &GetTopPlayersInput{Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 1)
	s.Equal("player-1", output.Entries[0].PlayerID)
}

func (s *RedisRepositoryTestSuite) TestGetTopPlayersWithEmptyBoard() {
	output, err := s.repo.GetTopPlayers(context.Background(), &GetTopPlayersInput{})
	s.Require().NoError(err)
	s.Empty(output.Entries)
}

func (s *RedisRepositoryTestSuite) TestGetResultsForPlayer() {
	s.recordResult("player-1", "Alice", false, s.testNow)
	s.recordResult("player-1", "Alice", true, s.testNow.Add(time.Hour))
	s.recordResult("player-2", "Bob", true, s.testNow)

	output, err := s.repo.GetResultsForPlayer(context.Background(), &GetResultsForPlayerInput{
		PlayerID: "player-1",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Results, 2)

	// Oldest first
	s.False(output.Results[0].Won)
	s.True(output.Results[1].Won)
	s.Equal("player-1", output.Results[0].PlayerID)
}

func (s *RedisRepositoryTestSuite) TestGetResultsForUnknownPlayer() {
	output, err := s.repo.GetResultsForPlayer(context.Background(), &GetResultsForPlayerInput{
		PlayerID: "nobody",
	})
	s.Require().NoError(err)
	s.Empty(output.Results)
}

func (s *RedisRepositoryTestSuite) TestGetResultsForPlayerWithEmptyID() {
	_, err := s.repo.GetResultsForPlayer(context.Background(), &GetResultsForPlayerInput{})
	s.Error(err)
}

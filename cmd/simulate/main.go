package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/aau-serg/monopoly-core/internal/bot"
	"github.com/aau-serg/monopoly-core/internal/dice"
	"github.com/aau-serg/monopoly-core/internal/game"
	"github.com/aau-serg/monopoly-core/internal/models"
	"github.com/aau-serg/monopoly-core/internal/property"
	"github.com/aau-serg/monopoly-core/internal/repositories/leaderboard"
)

// consoleCallback prints everything a session transport would push to
// clients and keeps the bot manager armed between turns.
type consoleCallback struct {
	game    *game.Game
	manager *bot.Manager
}

func (c *consoleCallback) Broadcast(msg string) {
	fmt.Println(msg)
}

func (c *consoleCallback) UpdateGameState() {
	for _, info := range c.game.PlayerInfo() {
		log.Printf("  %s: €%d at field %d (jailed=%t)", info.Name, info.Money, info.Position, info.InJail)
	}
}

func (c *consoleCallback) AdvanceToNextPlayer() {
	next := c.game.NextPlayer()
	if next == nil {
		return
	}
	log.Printf("Turn passes to %s", next.Name)
	c.manager.Start()
}

func (c *consoleCallback) CheckBankruptcy() {
	// Collect first; removal mutates the player list.
	var broke []*models.Player
	for _, p := range c.game.Players() {
		if p.Money < 0 {
			broke = append(broke, p)
		}
	}

	for _, p := range broke {
		fmt.Printf("SYSTEM: %s is bankrupt and leaves the game\n", p.Name)
		c.game.RemovePlayer(p.ID)
	}
}

func main() {
	// Load .env if present; environment variables win otherwise
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	boardFile := getEnv("BOARD_FILE", "internal/property/testdata/board.json")
	numBots := getEnvInt("NUM_BOTS", 3)
	seed := int64(getEnvInt("DICE_SEED", 0))
	gameSeconds := getEnvInt("GAME_DURATION_SECONDS", 30)
	turnDelayMs := getEnvInt("BOT_TURN_DELAY_MS", 0)
	chainDelayMs := getEnvInt("BOT_CHAIN_DELAY_MS", 0)

	// Initialize the board catalog and property service
	catalog, err := property.LoadCatalog(boardFile)
	if err != nil {
		log.Fatalf("Failed to load board catalog: %v", err)
	}

	propertySvc, err := property.NewService(&property.Config{
		Catalog: catalog,
	})
	if err != nil {
		log.Fatalf("Failed to create property service: %v", err)
	}

	// Initialize the game with an optionally seeded dice source
	g := game.New(&game.Config{
		Dice:       dice.New(&dice.Config{Seed: seed}),
		Properties: propertySvc,
	})

	for i := 1; i <= numBots; i++ {
		g.AddBot(fmt.Sprintf("bot-%d", i), fmt.Sprintf("Bot %d", i))
	}

	// Initialize the bot manager with the console callback
	cb := &consoleCallback{game: g}

	botMgr, err := bot.New(&bot.Config{
		Game:         g,
		Transactions: propertySvc,
		Callback:     cb,
		TurnDelay:    time.Duration(turnDelayMs) * time.Millisecond,
		ChainDelay:   time.Duration(chainDelayMs) * time.Millisecond,
	})
	if err != nil {
		log.Fatalf("Failed to create bot manager: %v", err)
	}
	cb.manager = botMgr

	// Initialize the optional leaderboard repository
	var board leaderboard.Repository
	if redisAddr := getEnv("REDIS_ADDR", ""); redisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		})

		board, err = leaderboard.NewRedis(&leaderboard.Config{
			RedisClient: redisClient,
		})
		if err != nil {
			log.Fatalf("Failed to create leaderboard repository: %v", err)
		}
	}

	log.Printf("Starting game %s with %d bots", g.ID(), numBots)
	g.Start()
	botMgr.Start()

	// Run until the duration elapses or an interrupt arrives
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	select {
	case <-time.After(time.Duration(gameSeconds) * time.Second):
	case <-sc:
		log.Println("Interrupted, ending game early")
	}

	botMgr.Shutdown()

	winnerID := g.DetermineWinner()
	duration := g.EndGame(winnerID)

	if winner, ok := g.PlayerByID(winnerID); ok {
		fmt.Printf("SYSTEM: %s wins with €%d!\n", winner.Name, winner.Money)
	}

	if board != nil {
		recordResults(board, g, winnerID, duration)
		printLeaderboard(board)
	}
}

// recordResults persists every surviving player's outcome
func recordResults(board leaderboard.Repository, g *game.Game, winnerID string, duration int) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, p := range g.Players() {
		err := board.RecordResult(ctx, &leaderboard.RecordResultInput{
			Result: &models.GameResult{
				GameID:          g.ID(),
				PlayerID:        p.ID,
				PlayerName:      p.Name,
				FinalMoney:      p.Money,
				Won:             p.ID == winnerID,
				DurationSeconds: duration,
			},
		})
		if err != nil {
			log.Printf("Failed to record result for %s: %v", p.Name, err)
		}
	}
}

// printLeaderboard prints the all-time standings
func printLeaderboard(board leaderboard.Repository) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	output, err := board.GetTopPlayers(ctx, &leaderboard.GetTopPlayersInput{})
	if err != nil {
		log.Printf("Failed to load leaderboard: %v", err)
		return
	}

	fmt.Println("All-time leaderboard:")
	for _, entry := range output.Entries {
		fmt.Printf("  %d. %s - %d win(s) in %d game(s)\n",
			entry.Rank, entry.PlayerName, entry.Wins, entry.GamesPlayed)
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return parsed
}

package bot

//go:generate mockgen -package=mocks -destination=mocks/mock_bot.go github.com/aau-serg/monopoly-core/internal/bot Callback,Game,Transactions

import (
	"sync"

	"github.com/aau-serg/monopoly-core/internal/game"
	"github.com/aau-serg/monopoly-core/internal/models"
)

// Callback is the set of handler-provided operations a bot turn may
// invoke. All outward notifications flow through it; the manager never
// talks to a transport directly.
type Callback interface {
	// Broadcast sends a chat or system message to all participants
	Broadcast(msg string)

	// UpdateGameState pushes a full state snapshot to all participants
	UpdateGameState()

	// AdvanceToNextPlayer hands the turn to the next player
	AdvanceToNextPlayer()

	// CheckBankruptcy triggers bankruptcy evaluation
	CheckBankruptcy()
}

// Game is the slice of the turn engine the bot manager drives
type Game interface {
	CurrentPlayer() *models.Player
	PeekNextPlayer() *models.Player
	PlayerByID(id string) (*models.Player, bool)
	HandleDiceRoll(playerID string) game.DiceRollResult
	UpdatePlayerPosition(roll int, playerID string) bool
	UpdatePlayerMoney(id string, delta int)
	TurnLock() *sync.Mutex
}

// Transactions is the slice of the property service a bot turn uses
type Transactions interface {
	FindPropertyByPosition(position int) *models.Property
	CanBuyProperty(player *models.Player, propertyID int) bool
	BuyProperty(player *models.Player, propertyID int) bool
}

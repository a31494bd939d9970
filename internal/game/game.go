package game

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aau-serg/monopoly-core/internal/common/clock"
	"github.com/aau-serg/monopoly-core/internal/dice"
	"github.com/aau-serg/monopoly-core/internal/models"
)

// PassedGoBonus is credited for every completed lap past the start field
const PassedGoBonus = 200

// Game is the turn engine: it owns the player list, turn order, board
// positions, money and the pending-rent bookkeeping of one running game.
//
// Game methods do not lock internally. The two call paths that mutate
// turn state (the human handler and the bot manager) serialize entire
// move sequences through TurnLock; single-threaded callers such as tests
// may call methods directly.
type Game struct {
	id string

	// turnLock serializes turn-mutating sequences across the human
	// and bot call paths
	turnLock sync.Mutex

	players []*models.Player
	current int

	// rentOpen maps a debtor player ID to the property ID they owe
	// rent on; at most one open entry per player
	rentOpen map[string]int

	dice  dice.Manager
	clk   clock.Clock
	props PropertyFinder

	startedAt time.Time
}

// Config holds configuration for a game
type Config struct {
	// Dice is the dice source; defaults to two six-sided dice
	Dice dice.Manager

	// Clock defaults to the system clock
	Clock clock.Clock

	// Properties is consulted for landing evaluation and rent. It may
	// be nil, in which case landings are not evaluated.
	Properties PropertyFinder
}

// New creates an empty game
func New(cfg *Config) *Game {
	if cfg == nil {
		cfg = &Config{}
	}

	d := cfg.Dice
	if d == nil {
		d = dice.New(nil)
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	return &Game{
		id:       uuid.New().String(),
		rentOpen: make(map[string]int),
		dice:     d,
		clk:      clk,
		props:    cfg.Properties,
	}
}

// ID returns the unique identifier of this game session
func (g *Game) ID() string {
	return g.id
}

// TurnLock exposes the mutual-exclusion primitive callers use to
// serialize turn-mutating sequences.
func (g *Game) TurnLock() *sync.Mutex {
	return &g.turnLock
}

// DiceManager returns the dice source of this game
func (g *Game) DiceManager() dice.Manager {
	return g.dice
}

// Start records the start time used for the game-duration calculation
func (g *Game) Start() {
	g.startedAt = g.clk.Now()
}

// AddPlayer appends a player in join order. Duplicate IDs are the
// upstream session layer's concern.
func (g *Game) AddPlayer(id, name string) {
	g.players = append(g.players, models.NewPlayer(id, name))
}

// AddBot appends a bot player in join order
func (g *Game) AddBot(id, name string) {
	bot := models.NewPlayer(id, name)
	bot.IsBot = true
	g.players = append(g.players, bot)
}

// RemovePlayer removes the player and keeps the turn pointer coherent:
// removing a player ordered before the current one shifts the pointer
// down; removing the current player leaves the pointer naming the next
// player in order.
func (g *Game) RemovePlayer(id string) {
	for i, p := range g.players {
		if p.ID != id {
			continue
		}

		g.players = append(g.players[:i], g.players[i+1:]...)
		delete(g.rentOpen, id)

		if len(g.players) == 0 {
			g.current = 0
			return
		}
		if i < g.current {
			g.current--
		}
		g.current %= len(g.players)
		return
	}
}

// Players returns the player list in join order
func (g *Game) Players() []*models.Player {
	return g.players
}

// PlayerByID finds a player by ID
func (g *Game) PlayerByID(id string) (*models.Player, bool) {
	for _, p := range g.players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// CurrentPlayer returns the player whose turn it is, or nil when the
// turn pointer does not resolve to a player.
func (g *Game) CurrentPlayer() *models.Player {
	if g.current < 0 || g.current >= len(g.players) {
		return nil
	}
	return g.players[g.current]
}

// NextPlayer advances the turn pointer, wrapping around the player list,
// and returns the new current player.
func (g *Game) NextPlayer() *models.Player {
	if len(g.players) == 0 {
		return nil
	}
	g.current = (g.current + 1) % len(g.players)
	return g.players[g.current]
}

// PeekNextPlayer returns the player that would be up next without
// advancing the turn pointer.
func (g *Game) PeekNextPlayer() *models.Player {
	if len(g.players) == 0 {
		return nil
	}
	return g.players[(g.current+1)%len(g.players)]
}

// IsPlayerTurn reports whether it is the given player's turn. An invalid
// turn pointer or empty list yields false, never a fault.
func (g *Game) IsPlayerTurn(id string) bool {
	current := g.CurrentPlayer()
	return current != nil && current.ID == id
}

// UpdatePlayerPosition advances the player by roll fields, wrapping at
// the start field. It reports whether the move crossed or landed on
// start; the bonus is credited once per lap completed in this call.
func (g *Game) UpdatePlayerPosition(roll int, playerID string) bool {
	p, ok := g.PlayerByID(playerID)
	if !ok {
		return false
	}

	total := p.Position + roll
	laps := total / models.BoardSize
	p.Position = total % models.BoardSize

	if laps > 0 {
		for i := 0; i < laps; i++ {
			p.AddMoney(PassedGoBonus)
		}
		return true
	}
	return false
}

// HandleDiceRoll is the single place a roll becomes a state change: it
// rolls the dice, moves the player and packages the outcome. A jailed
// player does not move on the roll itself; the caller moves them with
// the roll value once the jail state is resolved.
func (g *Game) HandleDiceRoll(playerID string) DiceRollResult {
	roll := g.dice.RollDices()
	pasch := g.dice.IsPasch()

	passedGo := false
	if p, ok := g.PlayerByID(playerID); ok && !p.InJail {
		passedGo = g.UpdatePlayerPosition(roll, playerID)
	}

	return DiceRollResult{
		Roll:     roll,
		Pasch:    pasch,
		PassedGo: passedGo,
	}
}

// UpdatePlayerMoney adds delta to the player's balance. Unknown IDs are
// a silent no-op.
func (g *Game) UpdatePlayerMoney(id string, delta int) {
	if p, ok := g.PlayerByID(id); ok {
		p.AddMoney(delta)
	}
}

// EvaluateLanding opens a pending-rent entry when the player landed on a
// property owned by someone else. Landing on an already-pending field is
// idempotent. Bots never hold an open entry; their rent is settled
// immediately by the caller.
func (g *Game) EvaluateLanding(p *models.Player) {
	if g.props == nil {
		return
	}

	field := g.props.FindPropertyByPosition(p.Position)
	if field == nil || !field.Owned() || field.OwnerID == p.ID {
		return
	}

	if p.IsBot {
		return
	}

	if _, open := g.rentOpen[p.ID]; open {
		return
	}
	g.rentOpen[p.ID] = field.ID
}

// PendingRent returns the property ID the player owes rent on
func (g *Game) PendingRent(playerID string) (int, bool) {
	propertyID, ok := g.rentOpen[playerID]
	return propertyID, ok
}

// SettleRent closes the player's open rent entry by transferring the
// computed rent to the property owner. It reports whether a transfer
// happened; a stale entry (property vanished or lost its owner) is
// dropped without a transfer.
func (g *Game) SettleRent(debtorID string) bool {
	propertyID, ok := g.rentOpen[debtorID]
	if !ok {
		return false
	}
	delete(g.rentOpen, debtorID)

	debtor, ok := g.PlayerByID(debtorID)
	if !ok || g.props == nil {
		return false
	}

	field := g.props.FindPropertyByID(propertyID)
	if field == nil || !field.Owned() {
		return false
	}

	rent := g.props.RentFor(field, g.lastRoll())
	debtor.SubtractMoney(rent)
	g.UpdatePlayerMoney(field.OwnerID, rent)
	return true
}

// lastRoll returns the most recent dice sum, 0 before the first roll
func (g *Game) lastRoll() int {
	history := g.dice.RollHistory()
	if len(history) == 0 {
		return 0
	}
	return history[len(history)-1]
}

// PlayerInfo returns the snapshot pushed to clients in state updates
func (g *Game) PlayerInfo() []models.PlayerInfo {
	info := make([]models.PlayerInfo, 0, len(g.players))
	for _, p := range g.players {
		info = append(info, models.PlayerInfo{
			ID:       p.ID,
			Name:     p.Name,
			Money:    p.Money,
			Position: p.Position,
			IsBot:    p.IsBot,
			InJail:   p.InJail,
		})
	}
	return info
}

// DetermineWinner returns the ID of the player with the strictly
// greatest money; ties resolve to the first tied player in turn order.
func (g *Game) DetermineWinner() string {
	var winner *models.Player
	for _, p := range g.players {
		if winner == nil || p.Money > winner.Money {
			winner = p
		}
	}
	if winner == nil {
		return ""
	}
	return winner.ID
}

// EndGame finishes the game and returns its duration in seconds
func (g *Game) EndGame(winnerID string) int {
	duration := 0
	if !g.startedAt.IsZero() {
		duration = int(g.clk.Now().Sub(g.startedAt).Seconds())
	}

	log.Printf("Game %s ended after %ds, winner %s", g.id, duration, winnerID)
	return duration
}

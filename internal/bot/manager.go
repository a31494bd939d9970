package bot

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/aau-serg/monopoly-core/internal/common/clock"
	"github.com/aau-serg/monopoly-core/internal/game"
	"github.com/aau-serg/monopoly-core/internal/models"
)

const (
	// DefaultTurnDelay is the pause before a queued bot turn runs, so
	// bot moves stay readable for the humans at the table
	DefaultTurnDelay = 3 * time.Second

	// DefaultChainDelay is the pause before the turn is handed to a
	// directly following bot
	DefaultChainDelay = 1 * time.Second

	// BailFee is deducted when a bot's jail turns run out without a double
	BailFee = 50
)

// Manager drives complete turns for bot players on a delayed schedule.
// One manager instance belongs to one game session.
//
// All bot tasks run on a single worker goroutine, so bot turns never
// race each other. Against the human call path the manager serializes
// through the game's turn lock; a contended lock drops the attempt (the
// human path re-arms the bot via Start or QueueBotTurn when its own
// turn completes).
type Manager struct {
	game         Game
	transactions Transactions
	cb           Callback
	clk          clock.Clock

	turnDelay  time.Duration
	chainDelay time.Duration

	tasks chan func()
	done  chan struct{}

	mu      sync.Mutex
	timers  []clock.Timer
	stopped bool
}

// Config holds configuration for the bot manager
type Config struct {
	Game         Game
	Transactions Transactions
	Callback     Callback

	// Clock defaults to the system clock
	Clock clock.Clock

	// TurnDelay overrides DefaultTurnDelay when > 0
	TurnDelay time.Duration

	// ChainDelay overrides DefaultChainDelay when > 0
	ChainDelay time.Duration
}

// New creates a bot manager and starts its worker
func New(cfg *Config) (*Manager, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Game == nil || cfg.Transactions == nil || cfg.Callback == nil {
		return nil, errors.New("game, transactions and callback cannot be nil")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	turnDelay := cfg.TurnDelay
	if turnDelay <= 0 {
		turnDelay = DefaultTurnDelay
	}

	chainDelay := cfg.ChainDelay
	if chainDelay <= 0 {
		chainDelay = DefaultChainDelay
	}

	m := &Manager{
		game:         cfg.Game,
		transactions: cfg.Transactions,
		cb:           cfg.Callback,
		clk:          clk,
		turnDelay:    turnDelay,
		chainDelay:   chainDelay,
		tasks:        make(chan func()),
		done:         make(chan struct{}),
	}

	go m.run()
	return m, nil
}

// run executes scheduled tasks one at a time until shutdown
func (m *Manager) run() {
	for {
		select {
		case task := <-m.tasks:
			task()
		case <-m.done:
			return
		}
	}
}

// Start queues a turn if the current player is a bot. Call once after
// the game starts; the manager keeps itself running from there as long
// as bots follow each other.
func (m *Manager) Start() {
	current := m.game.CurrentPlayer()
	if current == nil {
		return
	}
	if current.IsBot {
		m.QueueBotTurn(current.ID)
	}
}

// QueueBotTurn schedules a delayed attempt to process exactly this
// bot's turn. The handler calls this whenever its own turn processing
// leaves a bot as the current player.
func (m *Manager) QueueBotTurn(botID string) {
	m.schedule(m.turnDelay, func() {
		m.processBot(botID)
	})
}

// Shutdown cancels all pending bot tasks and stops the worker. A task
// already holding the turn lock finishes normally.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return
	}
	m.stopped = true
	timers := m.timers
	m.timers = nil
	m.mu.Unlock()

	close(m.done)
	for _, t := range timers {
		t.Stop()
	}
}

// schedule arms a timer that enqueues the task on the worker
func (m *Manager) schedule(d time.Duration, task func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped {
		return
	}

	timer := m.clk.AfterFunc(d, func() {
		select {
		case m.tasks <- task:
		case <-m.done:
		}
	})
	m.timers = append(m.timers, timer)
}

// processBot runs one bot turn under the turn lock. A held lock means a
// human action is in progress: the attempt is dropped, not retried.
func (m *Manager) processBot(botID string) {
	lock := m.game.TurnLock()
	if !lock.TryLock() {
		return
	}
	defer lock.Unlock()

	bot, ok := m.game.PlayerByID(botID)
	if !ok || !bot.IsBot {
		return
	}
	m.doFullMove(bot)
}

// doFullMove performs one complete turn: roll, move, buy, end or re-roll
func (m *Manager) doFullMove(bot *models.Player) {
	if bot.InJail {
		m.handleJailTurn(bot)
		return
	}

	log.Printf("Bot turn for %s", bot.Name)

	res := m.game.HandleDiceRoll(bot.ID)
	m.broadcastRoll(bot, res)

	if res.PassedGo {
		m.cb.Broadcast(fmt.Sprintf("SYSTEM: %s passed GO and collected €%d",
			bot.Name, game.PassedGoBonus))
	}

	m.tryBuyCurrentField(bot)

	bot.HasRolledThisTurn = true
	m.cb.UpdateGameState()
	m.cb.CheckBankruptcy()

	// A pasch keeps the turn: reset the roll flag and queue the same
	// bot again.
	if res.Pasch {
		bot.HasRolledThisTurn = false
		m.cb.UpdateGameState()
		m.QueueBotTurn(bot.ID)
		return
	}

	next := m.game.PeekNextPlayer()
	if next != nil && next.IsBot {
		// A short pause so chained bot turns do not look like a stall.
		m.schedule(m.chainDelay, func() {
			m.cb.AdvanceToNextPlayer()
			// The following bot queues itself via the handler's Start.
		})
	} else {
		m.cb.AdvanceToNextPlayer()
		m.cb.UpdateGameState()
	}
}

// handleJailTurn is the bot turn while sitting in jail
func (m *Manager) handleJailTurn(bot *models.Player) {
	res := m.game.HandleDiceRoll(bot.ID)
	m.broadcastRoll(bot, res)

	// A double frees the bot immediately and keeps the turn.
	if res.Pasch {
		bot.InJail = false
		bot.JailTurns = 0

		m.cb.Broadcast(fmt.Sprintf("SYSTEM: %s 🤖 rolled a double and is free!", bot.Name))
		m.game.UpdatePlayerPosition(res.Roll, bot.ID)
		m.tryBuyCurrentField(bot)

		m.cb.UpdateGameState()
		m.cb.CheckBankruptcy()

		m.QueueBotTurn(bot.ID)
		return
	}

	bot.ReduceJailTurns()

	if bot.InJail {
		m.cb.Broadcast(fmt.Sprintf("SYSTEM: %s 🤖 sits in jail (%d round(s) left)",
			bot.Name, bot.JailTurns))
		m.cb.UpdateGameState()

		m.cb.AdvanceToNextPlayer()
		m.queueNextBotIfNeeded()
		return
	}

	// Jail turns ran out: mandatory bail, then a normal move.
	bot.InJail = false
	m.game.UpdatePlayerMoney(bot.ID, -BailFee)

	m.cb.Broadcast(fmt.Sprintf("SYSTEM: %s 🤖 pays €%d bail and is free!",
		bot.Name, BailFee))

	m.game.UpdatePlayerPosition(res.Roll, bot.ID)
	m.tryBuyCurrentField(bot)

	m.cb.UpdateGameState()
	m.cb.CheckBankruptcy()

	m.cb.AdvanceToNextPlayer()
	m.queueNextBotIfNeeded()
}

// tryBuyCurrentField buys the property under the bot if eligible
func (m *Manager) tryBuyCurrentField(bot *models.Player) {
	field := m.transactions.FindPropertyByPosition(bot.Position)
	if field == nil || field.Owned() {
		return
	}

	if !m.transactions.CanBuyProperty(bot, field.ID) {
		return
	}

	if !m.transactions.BuyProperty(bot, field.ID) {
		return
	}

	msg := PropertyBoughtMessage{
		Type:    TypePropertyBought,
		Message: fmt.Sprintf("Player %s 🤖 bought property %s", bot.Name, field.Name),
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Could not broadcast bot purchase: %v", err)
	} else {
		m.cb.Broadcast(string(payload))
	}

	m.cb.UpdateGameState()
}

// broadcastRoll sends the structured dice-roll notification. A marshal
// failure loses only the broadcast, never the move.
func (m *Manager) broadcastRoll(bot *models.Player, res game.DiceRollResult) {
	msg := DiceRollMessage{
		Type:     TypeDiceRoll,
		PlayerID: bot.ID,
		Value:    res.Roll,
		Manual:   false,
		IsPasch:  res.Pasch,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Could not broadcast dice roll for %s: %v", bot.ID, err)
		return
	}
	m.cb.Broadcast(string(payload))
}

// queueNextBotIfNeeded queues the new current player if it is a bot
func (m *Manager) queueNextBotIfNeeded() {
	next := m.game.CurrentPlayer()
	if next != nil && next.IsBot {
		m.QueueBotTurn(next.ID)
	}
}

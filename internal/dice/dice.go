package dice

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_manager.go github.com/aau-serg/monopoly-core/internal/dice Manager

// Manager rolls the game's dice and remembers the outcome of the most
// recent roll.
type Manager interface {
	// RollDices rolls all dice and returns their sum
	RollDices() int

	// IsPasch reports whether the most recent roll was a double
	// (every die showing the same value)
	IsPasch() bool

	// RollHistory returns the sums of all rolls so far, oldest first
	RollHistory() []int
}

// Config for the dice manager
type Config struct {
	// NumDice is the number of dice rolled per turn; defaults to 2
	NumDice int

	// Sides per die; defaults to 6
	Sides int

	// Optional seed for testing
	Seed int64
}

// manager implements Manager with a seeded random source
type manager struct {
	random  *rand.Rand
	numDice int
	sides   int

	lastDice []int
	history  []int
}

// New creates a dice manager
func New(cfg *Config) Manager {
	if cfg == nil {
		cfg = &Config{}
	}

	numDice := cfg.NumDice
	if numDice < 1 {
		numDice = 2
	}

	sides := cfg.Sides
	if sides < 1 {
		sides = 6
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &manager{
		random:  rand.New(rand.NewSource(seed)),
		numDice: numDice,
		sides:   sides,
	}
}

func (m *manager) RollDices() int {
	m.lastDice = m.lastDice[:0]

	sum := 0
	for i := 0; i < m.numDice; i++ {
		value := m.random.Intn(m.sides) + 1
		m.lastDice = append(m.lastDice, value)
		sum += value
	}

	m.history = append(m.history, sum)
	return sum
}

func (m *manager) IsPasch() bool {
	if len(m.lastDice) < 2 {
		return false
	}
	for _, value := range m.lastDice[1:] {
		if value != m.lastDice[0] {
			return false
		}
	}
	return true
}

func (m *manager) RollHistory() []int {
	history := make([]int, len(m.history))
	copy(history, m.history)
	return history
}

package models

// StartingMoney is the amount every player begins the game with
const StartingMoney = 1500

// BoardSize is the number of fields on the board
const BoardSize = 40

// Player represents a participant in a game
type Player struct {
	// ID is the stable identifier assigned by the session layer
	ID string

	// Name is the display name of the player
	Name string

	// Money is the player's current balance; it can go negative until
	// bankruptcy resolution runs
	Money int

	// Position is the player's field on the board, 0 to BoardSize-1
	Position int

	// IsBot marks players whose turns are driven by the bot manager
	IsBot bool

	// InJail marks a player currently sitting in jail
	InJail bool

	// JailTurns is the number of jailed rounds remaining
	JailTurns int

	// HasRolledThisTurn is set once the player rolled in the current turn
	HasRolledThisTurn bool
}

// NewPlayer creates a player at the start field with the standard balance
func NewPlayer(id, name string) *Player {
	return &Player{
		ID:    id,
		Name:  name,
		Money: StartingMoney,
	}
}

// AddMoney credits the given amount
func (p *Player) AddMoney(amount int) {
	p.Money += amount
}

// SubtractMoney debits the given amount
func (p *Player) SubtractMoney(amount int) {
	p.Money -= amount
}

// ReduceJailTurns decrements the jail counter and releases the player
// once it reaches zero
func (p *Player) ReduceJailTurns() {
	if p.JailTurns > 0 {
		p.JailTurns--
	}
	if p.JailTurns == 0 {
		p.InJail = false
	}
}

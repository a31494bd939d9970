package cards

//go:generate mockgen -package=mocks -destination=mocks/mock_game.go github.com/aau-serg/monopoly-core/internal/cards Game

import (
	"github.com/aau-serg/monopoly-core/internal/models"
)

// Game is the slice of the turn engine a card needs to apply its effect
type Game interface {
	// Players returns all players in turn order
	Players() []*models.Player

	// UpdatePlayerMoney adds delta to the player's balance
	UpdatePlayerMoney(id string, delta int)
}

// Effect names the financial effect of a money card. The four variants
// replace the older pair of independent flags whose combination was
// undefined.
type Effect string

const (
	// EffectGetMoney credits the acting player the amount once
	EffectGetMoney Effect = "GET_MONEY"

	// EffectPay debits the acting player the amount once
	EffectPay Effect = "PAY"

	// EffectOthersPayActor debits every other player the amount and
	// credits the acting player once per other player
	EffectOthersPayActor Effect = "OTHERS_PAY"

	// EffectActorPaysOthers credits every other player the amount and
	// debits the acting player once per other player
	EffectActorPaysOthers Effect = "OTHERS_GET"
)

// MoneyCard applies a parameterized money effect across the player set
type MoneyCard struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount int    `json:"amount"`
	Effect Effect `json:"effect"`
}

// Apply executes the card's effect for the acting player. Transfers
// involving the other players are delivered as individual money updates,
// one per affected player, so each leg shows up in the game log.
func (c *MoneyCard) Apply(g Game, actorID string) {
	players := g.Players()

	switch c.Effect {
	case EffectOthersPayActor:
		for _, p := range players {
			if p.ID == actorID {
				continue
			}
			g.UpdatePlayerMoney(p.ID, -c.Amount)
			g.UpdatePlayerMoney(actorID, c.Amount)
		}

	case EffectActorPaysOthers:
		for _, p := range players {
			if p.ID == actorID {
				continue
			}
			g.UpdatePlayerMoney(p.ID, c.Amount)
			g.UpdatePlayerMoney(actorID, -c.Amount)
		}

	case EffectGetMoney:
		g.UpdatePlayerMoney(actorID, c.Amount)

	case EffectPay:
		g.UpdatePlayerMoney(actorID, -c.Amount)
	}
}

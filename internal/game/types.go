package game

//go:generate mockgen -package=mocks -destination=mocks/mock_property_finder.go github.com/aau-serg/monopoly-core/internal/game PropertyFinder

import (
	"github.com/aau-serg/monopoly-core/internal/models"
)

// PropertyFinder is the slice of the property layer the turn engine needs
// for landing evaluation and rent settlement.
type PropertyFinder interface {
	// FindPropertyByID resolves a property by its ID, or nil
	FindPropertyByID(id int) *models.Property

	// FindPropertyByPosition resolves a property by board field, or nil
	FindPropertyByPosition(position int) *models.Property

	// RentFor returns the rent due for landing on the property with
	// the given dice roll
	RentFor(p *models.Property, roll int) int
}

// DiceRollResult packages the outcome of one authoritative dice roll. It
// is produced by HandleDiceRoll and not stored beyond the consuming call.
type DiceRollResult struct {
	// Roll is the total of the dice
	Roll int

	// Pasch indicates a double, entitling the roller to another move
	Pasch bool

	// PassedGo indicates the move crossed or landed on the start field
	PassedGo bool
}

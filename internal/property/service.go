package property

import (
	"errors"

	"github.com/aau-serg/monopoly-core/internal/models"
)

// Service validates and executes property transactions against the board
// catalog. Every operation returns a boolean and leaves all state
// untouched on a failed precondition; game-rule violations are not
// errors.
type Service struct {
	catalog Catalog
}

// Config holds configuration for the transaction service
type Config struct {
	Catalog Catalog
}

// NewService creates a property transaction service
func NewService(cfg *Config) (*Service, error) {
	if cfg == nil || cfg.Catalog == nil {
		return nil, errors.New("catalog cannot be nil")
	}

	return &Service{
		catalog: cfg.Catalog,
	}, nil
}

// FindPropertyByID resolves a property by ID, checking houseable
// properties first, then train stations, then utilities. Categories are
// mutually exclusive by ID, so the search stops at the first match.
func (s *Service) FindPropertyByID(id int) *models.Property {
	if p := s.catalog.HouseablePropertyByID(id); p != nil {
		return p
	}

	for _, p := range s.catalog.TrainStations() {
		if p.ID == id {
			return p
		}
	}

	for _, p := range s.catalog.Utilities() {
		if p.ID == id {
			return p
		}
	}

	return nil
}

// FindPropertyByPosition resolves a property by board position, with the
// same category order as FindPropertyByID.
func (s *Service) FindPropertyByPosition(position int) *models.Property {
	for _, p := range s.catalog.HouseableProperties() {
		if p.Position == position {
			return p
		}
	}

	for _, p := range s.catalog.TrainStations() {
		if p.Position == position {
			return p
		}
	}

	for _, p := range s.catalog.Utilities() {
		if p.Position == position {
			return p
		}
	}

	return nil
}

// CanBuyProperty reports whether the player may buy the property: it
// exists, is unowned, the player stands on its field, and the player can
// afford it.
func (s *Service) CanBuyProperty(player *models.Player, propertyID int) bool {
	p := s.FindPropertyByID(propertyID)
	if p == nil || p.Owned() {
		return false
	}

	if player.Position != p.Position {
		return false
	}

	return player.Money >= p.PurchasePrice
}

// BuyProperty executes the purchase. The preconditions are re-validated
// here; a prior CanBuyProperty is not assumed to still hold.
func (s *Service) BuyProperty(player *models.Player, propertyID int) bool {
	if !s.CanBuyProperty(player, propertyID) {
		return false
	}

	p := s.FindPropertyByID(propertyID)
	player.SubtractMoney(p.PurchasePrice)
	p.OwnerID = player.ID
	return true
}

// SellProperty sells a property back to the bank for half its purchase
// price and clears the ownership.
func (s *Service) SellProperty(player *models.Player, propertyID int) bool {
	p := s.FindPropertyByID(propertyID)
	if p == nil || p.OwnerID != player.ID {
		return false
	}

	player.AddMoney(p.PurchasePrice / 2)
	p.OwnerID = ""
	return true
}

// RentFor returns the rent due for landing on the property, scaling
// station and utility rent with the owner's holdings in that category.
// roll is the dice value of the landing move.
func (s *Service) RentFor(p *models.Property, roll int) int {
	if p == nil || !p.Owned() {
		return 0
	}

	return p.Rent(s.countOwnedInKind(p), roll)
}

// countOwnedInKind counts how many properties of p's kind p's owner holds
func (s *Service) countOwnedInKind(p *models.Property) int {
	var category []*models.Property
	switch p.Kind {
	case models.KindTrainStation:
		category = s.catalog.TrainStations()
	case models.KindUtility:
		category = s.catalog.Utilities()
	default:
		category = s.catalog.HouseableProperties()
	}

	owned := 0
	for _, other := range category {
		if other.OwnerID == p.OwnerID {
			owned++
		}
	}
	return owned
}

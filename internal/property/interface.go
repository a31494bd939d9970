package property

//go:generate mockgen -package=mocks -destination=mocks/mock_catalog.go github.com/aau-serg/monopoly-core/internal/property Catalog

import (
	"github.com/aau-serg/monopoly-core/internal/models"
)

// Catalog is the read-only view of the static board this core consumes.
// Categories are mutually exclusive by property ID. Implementations own
// the property values; callers mutate only ownership and mortgage state.
type Catalog interface {
	// HouseablePropertyByID returns the houseable property with the
	// given ID, or nil
	HouseablePropertyByID(id int) *models.Property

	// HouseableProperties returns all houseable properties
	HouseableProperties() []*models.Property

	// TrainStations returns all train stations
	TrainStations() []*models.Property

	// Utilities returns all utilities
	Utilities() []*models.Property
}

package property

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/aau-serg/monopoly-core/internal/models"
)

// jsonCatalog serves the static board from a JSON file loaded once at
// startup. It implements Catalog.
type jsonCatalog struct {
	houseable []*models.Property
	stations  []*models.Property
	utilities []*models.Property

	houseableByID map[int]*models.Property
}

// LoadCatalog reads the board definition from the given JSON file. The
// file holds a flat list of properties; the kind tag assigns each entry
// to its category.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read board file: %w", err)
	}

	var properties []*models.Property
	if err := json.Unmarshal(data, &properties); err != nil {
		return nil, fmt.Errorf("failed to parse board file: %w", err)
	}

	catalog := &jsonCatalog{
		houseableByID: make(map[int]*models.Property),
	}

	for _, p := range properties {
		switch p.Kind {
		case models.KindHouseable:
			catalog.houseable = append(catalog.houseable, p)
			catalog.houseableByID[p.ID] = p
		case models.KindTrainStation:
			catalog.stations = append(catalog.stations, p)
		case models.KindUtility:
			catalog.utilities = append(catalog.utilities, p)
		default:
			return nil, errors.New("unknown property kind: " + string(p.Kind))
		}
	}

	return catalog, nil
}

func (c *jsonCatalog) HouseablePropertyByID(id int) *models.Property {
	return c.houseableByID[id]
}

func (c *jsonCatalog) HouseableProperties() []*models.Property {
	return c.houseable
}

func (c *jsonCatalog) TrainStations() []*models.Property {
	return c.stations
}

func (c *jsonCatalog) Utilities() []*models.Property {
	return c.utilities
}

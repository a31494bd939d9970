package models

// PropertyKind discriminates the property variants on the board
type PropertyKind string

const (
	// KindHouseable is a street that can carry houses and a hotel
	KindHouseable PropertyKind = "houseable"

	// KindTrainStation is a station whose rent scales with the number
	// of stations the owner holds
	KindTrainStation PropertyKind = "train_station"

	// KindUtility is a utility whose rent is a multiple of the dice roll
	KindUtility PropertyKind = "utility"
)

// Property represents a purchasable field on the board. The shared base
// fields apply to every kind; the rent parameters that apply depend on
// Kind. An empty OwnerID means the property is unowned.
type Property struct {
	// ID is the unique identifier of the property
	ID int `json:"id"`

	// Kind selects the rent rules for this property
	Kind PropertyKind `json:"kind"`

	// OwnerID is the ID of the owning player, empty when unowned
	OwnerID string `json:"ownerId,omitempty"`

	// Name is the display name of the property
	Name string `json:"name"`

	// Position is the board field the property sits on
	Position int `json:"position"`

	// PurchasePrice is the price paid to buy the property
	PurchasePrice int `json:"purchasePrice"`

	// MortgageValue is the amount credited when mortgaging
	MortgageValue int `json:"mortgageValue"`

	// Mortgaged marks a currently mortgaged property
	Mortgaged bool `json:"isMortgaged"`

	// HouseRents holds the houseable rent tiers, index = house count
	// (0 houses up to hotel)
	HouseRents []int `json:"houseRents,omitempty"`

	// StationRents holds the station rent tiers, index = owned stations - 1
	StationRents []int `json:"stationRents,omitempty"`

	// UtilityMultipliers holds the roll multipliers, index = owned utilities - 1
	UtilityMultipliers []int `json:"utilityMultipliers,omitempty"`
}

// Owned reports whether the property has an owner
func (p *Property) Owned() bool {
	return p.OwnerID != ""
}

// Rent returns the rent due for landing on this property. ownedInKind is
// the number of properties of the same kind the owner holds (stations and
// utilities scale with it); roll is the dice value of the landing move
// (only utilities use it). A mortgaged property collects no rent.
func (p *Property) Rent(ownedInKind, roll int) int {
	if p.Mortgaged {
		return 0
	}

	switch p.Kind {
	case KindHouseable:
		// No house building in this core yet: base tier only.
		if len(p.HouseRents) == 0 {
			return 0
		}
		return p.HouseRents[0]

	case KindTrainStation:
		return tierFor(p.StationRents, ownedInKind)

	case KindUtility:
		return tierFor(p.UtilityMultipliers, ownedInKind) * roll

	default:
		return 0
	}
}

// tierFor picks the tier for the given holding count, clamping into the
// valid range so a short table never panics.
func tierFor(tiers []int, owned int) int {
	if len(tiers) == 0 {
		return 0
	}
	idx := owned - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(tiers) {
		idx = len(tiers) - 1
	}
	return tiers[idx]
}

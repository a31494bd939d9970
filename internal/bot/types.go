package bot

// Message type tags; the field names below are part of the wire contract
const (
	TypeDiceRoll       = "DICE_ROLL"
	TypePropertyBought = "PROPERTY_BOUGHT"
)

// DiceRollMessage is broadcast for every roll a bot makes
type DiceRollMessage struct {
	Type     string `json:"type"`
	PlayerID string `json:"playerId"`
	Value    int    `json:"value"`
	Manual   bool   `json:"manual"`
	IsPasch  bool   `json:"isPasch"`
}

// PropertyBoughtMessage is broadcast when a bot buys a property
type PropertyBoughtMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

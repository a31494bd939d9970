package models

// PlayerInfo is the snapshot of a player pushed to clients in full-state
// updates. Field names are part of the wire contract.
type PlayerInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Money    int    `json:"money"`
	Position int    `json:"position"`
	IsBot    bool   `json:"isBot"`
	InJail   bool   `json:"inJail"`
}

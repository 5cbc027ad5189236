package models

// SessionRequest reports one completed game session.
type SessionRequest struct {
	Score    int    `json:"score" validate:"gte=0"`
	GameType string `json:"game_type,omitempty" validate:"omitempty,oneof=drawing gartic memory"`
}

// RenameRequest changes the local player's display name.
type RenameRequest struct {
	PlayerName string `json:"player_name" validate:"required,min=1,max=32"`
}

// ImportResult is the response to a snapshot import.
type ImportResult struct {
	Imported bool `json:"imported"`
}

// CompleteResult is the response to a challenge completion.
type CompleteResult struct {
	Completed bool `json:"completed"`
	Streak    int  `json:"streak"`
}

package model

import "time"

// Result is a finished round, seen from the human player's side
type Result struct {
	PlayerChoice   Choice    `json:"player_choice"`
	ComputerChoice Choice    `json:"computer_choice"`
	Outcome        Outcome   `json:"outcome"`
	PlayedAt       time.Time `json:"played_at"`
}

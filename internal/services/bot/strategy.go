package bot

import "github.com/mcoot/rpsgame/internal/model"

// Strategy defines how the computer player picks its choice
type Strategy interface {
	// Choose selects the computer's choice for a round
	Choose() model.Choice
}

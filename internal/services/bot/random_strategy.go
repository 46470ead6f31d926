package bot

import (
	"github.com/mcoot/rpsgame/internal/dependencies/random"
	"github.com/mcoot/rpsgame/internal/model"
)

// RandomStrategy picks uniformly among rock, paper and scissors
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// Choose returns a random choice. Each call is independent.
func (s *RandomStrategy) Choose() model.Choice {
	return model.AllChoices[s.random.Intn(len(model.AllChoices))]
}
